package automation

import (
	"context"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/zerr"
)

// windowDepth reaches top-level windows and the windows they own.
const windowDepth = 2

func (r *run) desktopRoot() (ports.Element, error) {
	root, err := r.desktop.Root()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAutomationUnavailable.Error())
	}
	return root, nil
}

// requireWindow waits for a window named name beneath the desktop.
func (r *run) requireWindow(ctx context.Context, name string, depth int, p domain.Poll) (ports.Element, error) {
	root, err := r.desktopRoot()
	if err != nil {
		return nil, err
	}
	q := domain.Query{Role: domain.RoleWindow, Name: name, Depth: depth}
	res, err := findPath(ctx, root, p, q)
	if err != nil {
		return nil, err
	}
	if res.found == nil {
		return nil, controlNotFound(domain.ErrWindowNotFound, q, p, res.lastErr)
	}
	return res.found, nil
}

// waitForBaseInput resolves the data input container. The client opens it
// either as its own window or as a pane of the main window, so both are probed
// on every attempt.
func (r *run) waitForBaseInput(ctx context.Context) (ports.Element, error) {
	root, err := r.desktopRoot()
	if err != nil {
		return nil, err
	}

	asWindow := domain.Query{Role: domain.RoleWindow, Name: r.layout.BaseInput, Depth: windowDepth}
	asPane := domain.Query{Role: domain.RolePane, Name: r.layout.BaseInput, Depth: 30}

	var (
		base    ports.Element
		lastErr error
	)
	found, err := poll(ctx, r.timing.BaseInput, func() bool {
		for _, probe := range []struct {
			root ports.Element
			q    domain.Query
		}{{root, asWindow}, {r.main, asPane}} {
			el, err := descend(probe.root, probe.q)
			if err != nil {
				lastErr = err
			}
			if el != nil {
				base = el
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, controlNotFound(domain.ErrWindowNotFound, asWindow, r.timing.BaseInput, lastErr)
	}

	if base.Role() == domain.RoleWindow {
		r.notef("%s opened as a window", r.layout.BaseInput)
	} else {
		r.notef("%s opened as a pane", r.layout.BaseInput)
	}
	return base, nil
}

// selectSaveFolder picks the target folder in the Save As dialog.
func (r *run) selectSaveFolder(ctx context.Context) error {
	dlg, err := r.requireWindow(ctx, r.layout.SaveDialog, windowDepth, r.timing.Dialog)
	if err != nil {
		return err
	}

	// Narrow the search to the folder list when the dialog exposes it.
	searchRoot := dlg
	if side, _ := descend(searchRoot, domain.Query{Role: domain.RolePane, Name: r.layout.SidePanel, Depth: 10}); side != nil {
		searchRoot = side
	}
	if panel, _ := descend(searchRoot, domain.Query{Role: domain.RoleGroup, Name: r.layout.DataPanel, Depth: 10}); panel != nil {
		searchRoot = panel
	}

	item := BreadthFirst(searchRoot, IsFolderItem(r.layout.TargetFolder))
	if item == nil {
		return zerr.With(domain.ErrSaveFolderNotFound, "folder", r.layout.TargetFolder)
	}
	if err := r.act(ctx, "invoke", r.layout.TargetFolder, func() error { return invokeOrClick(item) }); err != nil {
		return err
	}
	r.notef("chose folder %s", r.layout.TargetFolder)

	_, err = r.waitForChange(ctx, dlg, r.timing.FolderChange)
	return err
}

// waitDialogGone waits until no window named name is open.
func (r *run) waitDialogGone(ctx context.Context, name string) error {
	root, err := r.desktopRoot()
	if err != nil {
		return err
	}
	q := domain.Query{Role: domain.RoleWindow, Name: name, Depth: windowDepth}
	gone, err := poll(ctx, r.timing.Dialog, func() bool {
		el, _ := descend(root, q)
		return el == nil
	})
	if err != nil {
		return err
	}
	if !gone {
		return zerr.With(domain.ErrDialogStillOpen, "dialog", name)
	}
	return nil
}
