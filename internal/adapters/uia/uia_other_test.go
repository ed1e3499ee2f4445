//go:build !windows

package uia_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/stravex/internal/adapters/uia"
	"go.trai.ch/stravex/internal/core/domain"
)

func TestDesktop_RootUnsupported(t *testing.T) {
	_, err := uia.New(nil).Root()

	require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}
