package domain

import "time"

// Poll bounds a wait: the condition is re-checked every Interval until
// Timeout elapses.
type Poll struct {
	Timeout  time.Duration
	Interval time.Duration
}

// Timing holds every wait and pacing delay of the automation flow.
type Timing struct {
	Attach        Poll // main window must exist
	Navigation    Poll // navigation tree node
	Selector      Poll // entity selector pane
	Display       Poll // Display button
	Retry         Poll // lookups repeated after a transient failure
	Exists        Poll // ribbon and selector controls
	ViewChange    Poll // main window after opening the data input view
	BaseInput     Poll // data input container
	DisplayChange Poll // data input after Display
	MenuChange    Poll // dropdown menus in the export shortcut
	DialogChange  Poll // desktop after Save As Excel and Close
	FolderChange  Poll // Save As dialog after choosing the folder
	TabActive     Poll // ribbon tab activation
	Dialog        Poll // dialog appearance and disappearance

	InputSettle      time.Duration // after every navigation key and control click
	HotkeyPause      time.Duration // after every chord and typed text
	KeyInterval      time.Duration // between repeated navigation keys
	SelectInterval   time.Duration // between Up presses of the select-all gesture
	ModifierSettle   time.Duration // after pressing a held modifier
	TypeInterval     time.Duration // between typed characters
	SearchDelay      time.Duration // after typing into the find box
	ClearDelay       time.Duration // around clearing the find box
	NavigationSettle time.Duration // after double-clicking the navigation node
	RowDwell         time.Duration // after opening a result row
	SaveSettle       time.Duration // after choosing the save folder
	GracePeriod      time.Duration // countdown before the first input
}

// DefaultTiming returns the delays tuned for the STRAVIS client.
func DefaultTiming() Timing {
	return Timing{
		Attach:        Poll{Timeout: 10 * time.Second, Interval: 200 * time.Millisecond},
		Navigation:    Poll{Timeout: 8 * time.Second, Interval: 500 * time.Millisecond},
		Selector:      Poll{Timeout: 8 * time.Second, Interval: 200 * time.Millisecond},
		Display:       Poll{Timeout: 8 * time.Second, Interval: 500 * time.Millisecond},
		Retry:         Poll{Timeout: 8 * time.Second, Interval: 200 * time.Millisecond},
		Exists:        Poll{Timeout: 5 * time.Second, Interval: 200 * time.Millisecond},
		ViewChange:    Poll{Timeout: 10 * time.Second, Interval: 500 * time.Millisecond},
		BaseInput:     Poll{Timeout: 12 * time.Second, Interval: 200 * time.Millisecond},
		DisplayChange: Poll{Timeout: 15 * time.Second, Interval: 500 * time.Millisecond},
		MenuChange:    Poll{Timeout: 5 * time.Second, Interval: 200 * time.Millisecond},
		DialogChange:  Poll{Timeout: 8 * time.Second, Interval: 300 * time.Millisecond},
		FolderChange:  Poll{Timeout: 5 * time.Second, Interval: 200 * time.Millisecond},
		TabActive:     Poll{Timeout: 10 * time.Second, Interval: 200 * time.Millisecond},
		Dialog:        Poll{Timeout: 10 * time.Second, Interval: 200 * time.Millisecond},

		InputSettle:      500 * time.Millisecond,
		HotkeyPause:      100 * time.Millisecond,
		KeyInterval:      100 * time.Millisecond,
		SelectInterval:   50 * time.Millisecond,
		ModifierSettle:   20 * time.Millisecond,
		TypeInterval:     20 * time.Millisecond,
		SearchDelay:      time.Second,
		ClearDelay:       200 * time.Millisecond,
		NavigationSettle: time.Second,
		RowDwell:         20 * time.Second,
		SaveSettle:       time.Second,
		GracePeriod:      3 * time.Second,
	}
}
