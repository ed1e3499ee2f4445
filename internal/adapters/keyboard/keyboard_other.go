//go:build !windows

package keyboard

import "go.trai.ch/stravex/internal/core/domain"

type unsupportedInjector struct{}

func newInjector() injector {
	return unsupportedInjector{}
}

func (unsupportedInjector) keyEvent(uint8, bool) error {
	return domain.ErrUnsupportedPlatform
}

func (unsupportedInjector) scan(rune) (uint8, bool, error) {
	return 0, false, domain.ErrUnsupportedPlatform
}

func (unsupportedInjector) moveTo(int, int) error {
	return domain.ErrUnsupportedPlatform
}

func (unsupportedInjector) leftClick() error {
	return domain.ErrUnsupportedPlatform
}
