package automation

import (
	"context"
	"time"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
)

// TakeSnapshot records the direct children of root. Children that no longer
// exist are skipped. A root whose children cannot be enumerated yields an
// empty snapshot.
func TakeSnapshot(root ports.Element) domain.Snapshot {
	children, err := root.Children()
	if err != nil {
		return domain.Snapshot{}
	}

	snap := make(domain.Snapshot, 0, len(children))
	for _, child := range children {
		if !child.Exists() {
			continue
		}
		id, _ := child.RuntimeID()
		name, _ := child.Name()
		snap = append(snap, domain.SnapshotEntry{ID: id, Role: child.Role(), Name: name})
	}
	return snap
}

// WaitForChange snapshots the children of root, then re-snapshots every
// p.Interval until the snapshot differs or p.Timeout elapses.
// The first comparison happens one interval after the baseline.
// A timeout reports false without error; callers decide whether it is fatal.
func WaitForChange(ctx context.Context, root ports.Element, p domain.Poll) (bool, error) {
	c, err := awaitChange(ctx, root, p)
	return c.changed, err
}

// change is the outcome of awaitChange. after is the last snapshot taken.
type change struct {
	changed bool
	before  domain.Snapshot
	after   domain.Snapshot
}

func awaitChange(ctx context.Context, root ports.Element, p domain.Poll) (change, error) {
	c := change{before: TakeSnapshot(root)}
	c.after = c.before
	deadline := time.Now().Add(p.Timeout)
	for time.Now().Before(deadline) {
		if err := sleep(ctx, p.Interval); err != nil {
			return c, err
		}
		c.after = TakeSnapshot(root)
		if !c.after.Equal(c.before) {
			c.changed = true
			return c, nil
		}
	}
	return c, nil
}
