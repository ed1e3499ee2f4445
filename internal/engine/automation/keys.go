package automation

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/zerr"
)

func inputFailed(err error, keys ...domain.Key) error {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return zerr.With(zerr.Wrap(err, domain.ErrInputFailed.Error()), "key", strings.Join(names, "+"))
}

// press taps a navigation key and waits InputSettle for the UI to follow.
func (r *run) press(ctx context.Context, key domain.Key) error {
	if err := r.keys.Press(key); err != nil {
		return inputFailed(err, key)
	}
	return sleep(ctx, r.timing.InputSettle)
}

// hotkey sends a chord, or a single editing key, followed by HotkeyPause.
func (r *run) hotkey(ctx context.Context, keys ...domain.Key) error {
	if err := r.keys.Hotkey(keys...); err != nil {
		return inputFailed(err, keys...)
	}
	return sleep(ctx, r.timing.HotkeyPause)
}

// tap presses key and pauses for interval.
func (r *run) tap(ctx context.Context, key domain.Key, interval time.Duration) error {
	if err := r.press(ctx, key); err != nil {
		return err
	}
	return sleep(ctx, interval)
}

// repeat taps key n times.
func (r *run) repeat(ctx context.Context, key domain.Key, n int, interval time.Duration) error {
	for range n {
		if err := r.tap(ctx, key, interval); err != nil {
			return err
		}
	}
	return nil
}

// typeText enters text one character at a time.
func (r *run) typeText(ctx context.Context, text string) error {
	for _, ch := range text {
		if err := r.keys.Type(string(ch)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInputFailed.Error()), "text", text)
		}
		if err := sleep(ctx, r.timing.TypeInterval); err != nil {
			return err
		}
	}
	return sleep(ctx, r.timing.HotkeyPause)
}

// find opens the in-app find box and searches for text.
func (r *run) find(ctx context.Context, text string) error {
	if err := r.hotkey(ctx, domain.KeyCtrl, domain.KeyF); err != nil {
		return err
	}
	if err := sleep(ctx, r.timing.ClearDelay); err != nil {
		return err
	}
	if err := r.typeText(ctx, text); err != nil {
		return err
	}
	return sleep(ctx, r.timing.SearchDelay)
}

// shiftSelectDown extends the selection n rows down while holding Shift.
// Shift is injected as raw down and up events so it stays held across every
// press, and it is released even when a press fails. The Down presses skip
// InputSettle so the gesture stays as quick as the raw events it replays.
func (r *run) shiftSelectDown(ctx context.Context, n int) (err error) {
	if err := r.keys.KeyDown(domain.KeyShift); err != nil {
		return inputFailed(err, domain.KeyShift)
	}
	defer func() {
		if upErr := r.keys.KeyUp(domain.KeyShift); upErr != nil && err == nil {
			err = inputFailed(upErr, domain.KeyShift)
		}
	}()

	if err := sleep(ctx, r.timing.ModifierSettle); err != nil {
		return err
	}
	for range n {
		if err := r.keys.Press(domain.KeyDown); err != nil {
			return inputFailed(err, domain.KeyShift, domain.KeyDown)
		}
		if err := sleep(ctx, r.timing.SelectInterval); err != nil {
			return err
		}
	}
	return nil
}

// deselectEntity finds code in the entity checklist, toggles it off and
// clears the find box again.
func (r *run) deselectEntity(ctx context.Context, code string) error {
	if err := r.find(ctx, code); err != nil {
		return err
	}
	if err := r.tap(ctx, domain.KeyDown, r.timing.KeyInterval); err != nil {
		return err
	}
	if err := r.press(ctx, domain.KeySpace); err != nil {
		return err
	}

	if err := r.hotkey(ctx, domain.KeyCtrl, domain.KeyF); err != nil {
		return err
	}
	if err := r.hotkey(ctx, domain.KeyCtrl, domain.KeyA); err != nil {
		return err
	}
	if err := sleep(ctx, r.timing.ClearDelay); err != nil {
		return err
	}
	if err := r.hotkey(ctx, domain.KeyBackspace); err != nil {
		return err
	}
	return sleep(ctx, r.timing.KeyInterval)
}

// pressOpen opens the focused result row.
func (r *run) pressOpen(ctx context.Context) error {
	if err := r.repeat(ctx, domain.KeyTab, 3, r.timing.KeyInterval); err != nil {
		return err
	}
	return r.press(ctx, domain.KeyEnter)
}

// changeLanguage walks the report header to the language dropdown and picks
// the entry below the current one.
func (r *run) changeLanguage(ctx context.Context) error {
	if err := r.repeat(ctx, domain.KeyDown, 15, r.timing.KeyInterval); err != nil {
		return err
	}
	if err := r.repeat(ctx, domain.KeyRight, 3, r.timing.KeyInterval); err != nil {
		return err
	}
	for range 2 {
		if err := r.hotkey(ctx, domain.KeyCtrl, domain.KeyUp); err != nil {
			return err
		}
	}

	if err := r.hotkey(ctx, domain.KeyAlt, domain.KeyDown); err != nil {
		return err
	}
	if _, err := r.waitForChange(ctx, r.main, r.timing.MenuChange); err != nil {
		return err
	}

	if err := r.press(ctx, domain.KeyDown); err != nil {
		return err
	}
	if err := r.press(ctx, domain.KeyEnter); err != nil {
		return err
	}
	_, err := r.waitForChange(ctx, r.main, r.timing.MenuChange)
	return err
}
