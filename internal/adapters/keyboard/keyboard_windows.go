//go:build windows

package keyboard

import (
	"sync"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows"
)

const (
	keyeventfKeyUp     = 0x0002
	mouseeventfLeftDn  = 0x0002
	mouseeventfLeftUp  = 0x0004
	vkScanShiftState   = 0x01
	vkScanUnmappedChar = -1

	// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2, the handle value -4.
	dpiAwarenessPerMonitorV2 = ^uintptr(3)
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procKeybdEvent   = user32.NewProc("keybd_event")
	procVkKeyScanW   = user32.NewProc("VkKeyScanW")
	procSetCursorPos = user32.NewProc("SetCursorPos")
	procMouseEvent   = user32.NewProc("mouse_event")

	procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")
	procSetProcessDPIAware            = user32.NewProc("SetProcessDPIAware")

	dpiOnce sync.Once
)

// user32Injector sends events through the legacy keybd_event and mouse_event
// calls. They write straight into the input queue, so a held modifier is
// seen by every later key.
type user32Injector struct{}

func newInjector() injector {
	dpiOnce.Do(declareDPIAware)
	return user32Injector{}
}

// declareDPIAware makes UI Automation bounding rectangles and SetCursorPos
// agree on physical pixels. A DPI-unaware process gets scaled coordinates
// from SetCursorPos, so every click misses on a display scaled above 100%.
// Windows before 10 1703 lacks the per-monitor context and falls back to
// system awareness.
func declareDPIAware() {
	if procSetProcessDpiAwarenessContext.Find() == nil {
		if ok, _, _ := procSetProcessDpiAwarenessContext.Call(dpiAwarenessPerMonitorV2); ok != 0 {
			return
		}
	}
	if procSetProcessDPIAware.Find() == nil {
		_, _, _ = procSetProcessDPIAware.Call()
	}
}

func (user32Injector) keyEvent(vk uint8, up bool) error {
	if err := procKeybdEvent.Find(); err != nil {
		return zerr.Wrap(err, domain.ErrInputFailed.Error())
	}
	var flags uintptr
	if up {
		flags = keyeventfKeyUp
	}
	_, _, _ = procKeybdEvent.Call(uintptr(vk), 0, flags, 0)
	return nil
}

func (user32Injector) scan(ch rune) (uint8, bool, error) {
	if ch > 0xFFFF {
		return 0, false, zerr.With(domain.ErrUnsupportedKey, "char", string(ch))
	}
	if err := procVkKeyScanW.Find(); err != nil {
		return 0, false, zerr.Wrap(err, domain.ErrInputFailed.Error())
	}

	ret, _, _ := procVkKeyScanW.Call(uintptr(ch))
	res := int16(ret) //nolint:gosec // VkKeyScanW returns a SHORT
	if res == vkScanUnmappedChar {
		return 0, false, zerr.With(domain.ErrUnsupportedKey, "char", string(ch))
	}

	state := uint8(res >> 8) //nolint:gosec // high byte holds the shift state
	if state&^vkScanShiftState != 0 {
		// Ctrl or Alt would be needed, which the find box does not accept.
		return 0, false, zerr.With(domain.ErrUnsupportedKey, "char", string(ch))
	}
	return uint8(res & 0xFF), state&vkScanShiftState != 0, nil //nolint:gosec // low byte is the key
}

func (user32Injector) moveTo(x, y int) error {
	if err := procSetCursorPos.Find(); err != nil {
		return zerr.Wrap(err, domain.ErrInputFailed.Error())
	}
	ok, _, callErr := procSetCursorPos.Call(uintptr(x), uintptr(y))
	if ok == 0 {
		return zerr.With(zerr.Wrap(callErr, domain.ErrInputFailed.Error()), "point", [2]int{x, y})
	}
	return nil
}

func (user32Injector) leftClick() error {
	if err := procMouseEvent.Find(); err != nil {
		return zerr.Wrap(err, domain.ErrInputFailed.Error())
	}
	_, _, _ = procMouseEvent.Call(mouseeventfLeftDn, 0, 0, 0, 0)
	_, _, _ = procMouseEvent.Call(mouseeventfLeftUp, 0, 0, 0, 0)
	return nil
}
