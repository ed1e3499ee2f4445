package automation

import (
	"context"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/zerr"
)

// FindControl polls beneath root until a control matching q exists or the
// poll times out. A timeout is not an error: found is false.
func FindControl(ctx context.Context, root ports.Element, q domain.Query, p domain.Poll) (ports.Element, bool, error) {
	res, err := findPath(ctx, root, p, q)
	return res.found, res.found != nil, err
}

// RequireControl is FindControl for call sites where absence is fatal.
// The returned error names the control and carries the last lookup failure.
func RequireControl(ctx context.Context, root ports.Element, q domain.Query, p domain.Poll) (ports.Element, error) {
	res, err := findPath(ctx, root, p, q)
	if err != nil {
		return nil, err
	}
	if res.found == nil {
		return nil, controlNotFound(domain.ErrControlNotFound, q, p, res.lastErr)
	}
	return res.found, nil
}

// lookup is the outcome of a polled search.
type lookup struct {
	found   ports.Element
	lastErr error // last enumeration failure seen while polling
}

// findPath polls until every query of path resolves beneath the previous match.
func findPath(ctx context.Context, root ports.Element, p domain.Poll, path ...domain.Query) (lookup, error) {
	var res lookup
	_, err := poll(ctx, p, func() bool {
		el, err := resolvePath(root, path)
		if err != nil {
			res.lastErr = err
		}
		res.found = el
		return el != nil
	})
	if err != nil {
		return lookup{lastErr: res.lastErr}, err
	}
	return res, nil
}

func controlNotFound(sentinel error, q domain.Query, p domain.Poll, lastErr error) error {
	err := sentinel
	if lastErr != nil {
		err = zerr.Wrap(lastErr, sentinel.Error())
	}
	err = zerr.With(err, "control", q.String())
	if q.Role != domain.RoleAny {
		err = zerr.With(err, "role", string(q.Role))
	}
	if q.AutomationID != "" {
		err = zerr.With(err, "automation_id", q.AutomationID)
	}
	err = zerr.With(err, "timeout", p.Timeout.String())
	if lastErr != nil {
		err = zerr.With(err, "last_error", lastErr.Error())
	}
	return err
}
