// Package keyboard injects synthetic keyboard and mouse input into whichever
// window owns the foreground.
package keyboard

import (
	"sync"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/zerr"
)

// Virtual-key codes of the named keys.
var virtualKeys = map[domain.Key]uint8{
	domain.KeyBackspace: 0x08,
	domain.KeyTab:       0x09,
	domain.KeyEnter:     0x0D,
	domain.KeyShift:     0x10,
	domain.KeyCtrl:      0x11,
	domain.KeyAlt:       0x12,
	domain.KeySpace:     0x20,
	domain.KeyLeft:      0x25,
	domain.KeyUp:        0x26,
	domain.KeyRight:     0x27,
	domain.KeyDown:      0x28,
	domain.KeyA:         0x41,
	domain.KeyF:         0x46,
}

// injector is the raw event sink of the operating system.
type injector interface {
	keyEvent(vk uint8, up bool) error
	// scan maps a character to its virtual key on the active layout and
	// reports whether Shift must be held to produce it.
	scan(ch rune) (vk uint8, shift bool, err error)
	moveTo(x, y int) error
	leftClick() error
}

// Keyboard implements ports.Keyboard and ports.Pointer with raw key and
// mouse events. Shift held through KeyDown stays down across later presses.
type Keyboard struct {
	inj injector
	mu  sync.Mutex
}

// New creates a Keyboard bound to the desktop input queue.
func New() *Keyboard {
	return &Keyboard{inj: newInjector()}
}

func lookup(key domain.Key) (uint8, error) {
	vk, ok := virtualKeys[key]
	if !ok {
		return 0, zerr.With(domain.ErrUnsupportedKey, "key", string(key))
	}
	return vk, nil
}

// Press taps a single key.
func (k *Keyboard) Press(key domain.Key) error {
	vk, err := lookup(key)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	return k.tap(vk)
}

func (k *Keyboard) tap(vk uint8) error {
	if err := k.inj.keyEvent(vk, false); err != nil {
		return err
	}
	return k.inj.keyEvent(vk, true)
}

// Hotkey presses keys in order and releases them in reverse order.
// Keys already pressed are released even when a later press fails.
func (k *Keyboard) Hotkey(keys ...domain.Key) (err error) {
	vks := make([]uint8, len(keys))
	for i, key := range keys {
		if vks[i], err = lookup(key); err != nil {
			return err
		}
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	pressed := 0
	defer func() {
		for i := pressed - 1; i >= 0; i-- {
			if upErr := k.inj.keyEvent(vks[i], true); upErr != nil && err == nil {
				err = upErr
			}
		}
	}()

	for _, vk := range vks {
		if err := k.inj.keyEvent(vk, false); err != nil {
			return err
		}
		pressed++
	}
	return nil
}

// Type enters text verbatim, holding Shift for characters that need it.
func (k *Keyboard) Type(text string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, ch := range text {
		vk, shift, err := k.inj.scan(ch)
		if err != nil {
			return zerr.With(err, "char", string(ch))
		}
		if err := k.typeOne(vk, shift); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keyboard) typeOne(vk uint8, shift bool) (err error) {
	if !shift {
		return k.tap(vk)
	}

	shiftVK := virtualKeys[domain.KeyShift]
	if err := k.inj.keyEvent(shiftVK, false); err != nil {
		return err
	}
	defer func() {
		if upErr := k.inj.keyEvent(shiftVK, true); upErr != nil && err == nil {
			err = upErr
		}
	}()
	return k.tap(vk)
}

// KeyDown presses and holds a key.
func (k *Keyboard) KeyDown(key domain.Key) error {
	vk, err := lookup(key)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	return k.inj.keyEvent(vk, false)
}

// KeyUp releases a held key.
func (k *Keyboard) KeyUp(key domain.Key) error {
	vk, err := lookup(key)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	return k.inj.keyEvent(vk, true)
}

// Click performs a left click at (x, y).
func (k *Keyboard) Click(x, y int) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.inj.moveTo(x, y); err != nil {
		return err
	}
	return k.inj.leftClick()
}

// DoubleClick performs two left clicks at (x, y).
func (k *Keyboard) DoubleClick(x, y int) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.inj.moveTo(x, y); err != nil {
		return err
	}
	if err := k.inj.leftClick(); err != nil {
		return err
	}
	return k.inj.leftClick()
}
