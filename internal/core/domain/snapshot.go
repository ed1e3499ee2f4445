package domain

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// SnapshotEntry identifies one child element at the time a snapshot was taken.
// Missing properties are recorded as empty strings.
type SnapshotEntry struct {
	ID   string
	Role Role
	Name string
}

// Snapshot is the ordered list of a container's direct children.
// Two snapshots taken around an input tell whether the UI reacted to it.
type Snapshot []SnapshotEntry

// Equal reports whether both snapshots list the same children in the same order.
func (s Snapshot) Equal(other Snapshot) bool {
	return slices.Equal(s, other)
}

// Fingerprint returns a stable hash of the snapshot for logging.
func (s Snapshot) Fingerprint() uint64 {
	d := xxhash.New()
	for _, e := range s {
		_, _ = d.WriteString(e.ID)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(string(e.Role))
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(e.Name)
		_, _ = d.Write([]byte{0xff})
	}
	return d.Sum64()
}
