package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one level of an error chain.
// metadata is nil for errors that cannot carry any.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err from the outermost error inward.
// Levels without a message only contribute metadata to the next level.
func collectErrorEntries(err error) []errorEntry {
	var (
		entries []errorEntry
		pending map[string]any
	)
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}
		if m.Message() == "" {
			if pending == nil {
				pending = map[string]any{}
			}
			maps.Copy(pending, meta)
			current = errors.Unwrap(current)
			continue
		}

		if pending != nil {
			maps.Copy(pending, meta)
			meta = pending
			pending = nil
		}
		entries = append(entries, errorEntry{message: m.Message(), metadata: meta})
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders entries as a headline, its metadata, and an
// indented list of causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, e := range entries {
		msgLines := strings.Split(e.message, "\n")

		var head, indent string
		switch i {
		case 0:
			head, indent = "Error: ", "       "
		case 1:
			lines = append(lines, "", "  Caused by:")
			fallthrough
		default:
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(e.metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, e.metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
