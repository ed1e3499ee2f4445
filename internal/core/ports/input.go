package ports

import "go.trai.ch/stravex/internal/core/domain"

// Keyboard injects synthetic key events into whichever window owns focus.
//
//go:generate mockgen -source=input.go -destination=mocks/mock_input.go -package=mocks
type Keyboard interface {
	// Press taps a single key.
	Press(key domain.Key) error
	// Hotkey presses keys in order and releases them in reverse order.
	Hotkey(keys ...domain.Key) error
	// Type enters text verbatim.
	Type(text string) error
	// KeyDown presses and holds a key.
	KeyDown(key domain.Key) error
	// KeyUp releases a held key.
	KeyUp(key domain.Key) error
}

// Pointer injects synthetic mouse clicks at screen coordinates.
type Pointer interface {
	// Click performs a left click at (x, y).
	Click(x, y int) error
	// DoubleClick performs two left clicks at (x, y).
	DoubleClick(x, y int) error
}
