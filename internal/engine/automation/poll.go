package automation

import (
	"context"
	"time"

	"go.trai.ch/stravex/internal/core/domain"
)

// sleep pauses for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// poll evaluates cond until it reports true or p.Timeout elapses.
// cond is always evaluated at least once.
func poll(ctx context.Context, p domain.Poll, cond func() bool) (bool, error) {
	deadline := time.Now().Add(p.Timeout)
	for {
		if cond() {
			return true, nil
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}
		if err := sleep(ctx, p.Interval); err != nil {
			return false, err
		}
	}
}
