//go:build !windows

package uia

import (
	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
)

// Desktop reports ErrUnsupportedPlatform: UI Automation exists only on Windows.
type Desktop struct{}

// New creates a Desktop. The pointer is unused outside Windows.
func New(_ ports.Pointer) *Desktop {
	return &Desktop{}
}

// Root always fails with ErrUnsupportedPlatform.
func (*Desktop) Root() (ports.Element, error) {
	return nil, domain.ErrUnsupportedPlatform
}
