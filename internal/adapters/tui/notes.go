package tui

import (
	"bytes"
	"sync"

	"github.com/vito/midterm"
)

// NotePane holds the progress notes of one step in a virtual terminal and
// exposes a scrollable window onto them.
type NotePane struct {
	vt      *midterm.Terminal
	Offset  int
	Height  int
	Width   int
	viewBuf *bytes.Buffer
	mu      sync.Mutex
}

// NewNotePane creates an empty NotePane.
func NewNotePane() *NotePane {
	return &NotePane{
		vt:      midterm.NewAutoResizingTerminal(),
		viewBuf: new(bytes.Buffer),
	}
}

// Write appends notes. A pane scrolled to the bottom follows new output.
// Notes use bare newlines, so each one is expanded to CR LF for the terminal.
func (n *NotePane) Write(p []byte) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	follow := n.Offset >= n.maxOffset()
	if _, err := n.vt.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	if follow {
		n.Offset = n.maxOffset()
	}
	return len(p), nil
}

// SetSize updates the visible area, keeping a bottom-anchored view anchored.
func (n *NotePane) SetSize(width, height int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	follow := n.Offset >= n.maxOffset()
	n.Width = max(width, 1)
	n.Height = max(height, 1)
	n.vt.ResizeX(n.Width)

	if follow {
		n.Offset = n.maxOffset()
	}
	n.clampLocked()
}

// Lines returns the number of lines written so far.
func (n *NotePane) Lines() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.vt.UsedHeight()
}

// Scroll moves the view by delta lines.
func (n *NotePane) Scroll(delta int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Offset += delta
	n.clampLocked()
}

// ScrollToBottom shows the latest notes.
func (n *NotePane) ScrollToBottom() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Offset = n.maxOffset()
}

// View renders the visible lines.
func (n *NotePane) View() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.clampLocked()
	n.viewBuf.Reset()
	for i := 0; i < n.Height; i++ {
		row := n.Offset + i
		if row >= n.vt.UsedHeight() {
			break
		}
		if i > 0 {
			_ = n.viewBuf.WriteByte('\n')
		}
		_ = n.vt.RenderLine(n.viewBuf, row)
	}
	return n.viewBuf.String()
}

func (n *NotePane) clampLocked() {
	n.Offset = min(max(n.Offset, 0), n.maxOffset())
}

func (n *NotePane) maxOffset() int {
	return max(n.vt.UsedHeight()-n.Height, 0)
}
