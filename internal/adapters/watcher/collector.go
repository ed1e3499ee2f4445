package watcher

import (
	"iter"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/stravex/internal/core/ports"
)

// DefaultSettleWindow is how long a file must stay untouched before it counts
// as exported.
const DefaultSettleWindow = 500 * time.Millisecond

// Temporary names written by Excel and browsers while a save is in flight.
var (
	tempPrefixes = []string{"~$", ".~"}
	tempSuffixes = []string{".tmp", ".crdownload", ".part", ".partial"}
)

func isTemporary(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range tempPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, s := range tempSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// Collector records the files that appear in the export folder during a run.
// A file is reported once no write touched it for the settle window.
type Collector struct {
	mu        sync.Mutex
	window    time.Duration
	pending   map[string]*time.Timer
	seen      map[string]struct{}
	files     []string
	onSettled func(name string)
}

// NewCollector creates a Collector. onSettled, if set, is called with the
// base name of each exported file, in the order the files settle.
func NewCollector(window time.Duration, onSettled func(name string)) *Collector {
	return &Collector{
		window:    window,
		pending:   make(map[string]*time.Timer),
		seen:      make(map[string]struct{}),
		onSettled: onSettled,
	}
}

// Consume records events until the sequence ends.
func (c *Collector) Consume(events iter.Seq[ports.WatchEvent]) {
	for ev := range events {
		c.Add(ev)
	}
}

// Add records a single event.
func (c *Collector) Add(ev ports.WatchEvent) {
	name := filepath.Base(ev.Path)
	if isTemporary(name) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[name]; ok {
		return
	}

	timer, pending := c.pending[name]
	switch ev.Operation {
	case ports.OpRemove, ports.OpRename:
		if pending {
			timer.Stop()
			delete(c.pending, name)
		}
	case ports.OpCreate, ports.OpWrite:
		if pending {
			timer.Reset(c.window)
			return
		}
		c.pending[name] = time.AfterFunc(c.window, func() { c.settle(name) })
	}
}

func (c *Collector) settle(name string) {
	c.mu.Lock()
	if _, ok := c.pending[name]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.pending, name)
	c.seen[name] = struct{}{}
	c.files = append(c.files, name)
	cb := c.onSettled
	c.mu.Unlock()

	if cb != nil {
		cb(name)
	}
}

// Flush settles every pending file immediately, in name order.
func (c *Collector) Flush() {
	c.mu.Lock()
	names := make([]string, 0, len(c.pending))
	for name, timer := range c.pending {
		if timer.Stop() {
			names = append(names, name)
		}
	}
	c.mu.Unlock()

	slices.Sort(names)
	for _, name := range names {
		c.settle(name)
	}
}

// Files returns the exported file names in settle order.
func (c *Collector) Files() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.files)
}
