package tui

import "time"

// TickMsg builds the refresh message of the elapsed-time loop.
func TickMsg(t time.Time) any {
	return tickMsg(t)
}
