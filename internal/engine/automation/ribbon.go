package automation

import (
	"context"
	"errors"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
)

func (r *run) ribbonQuery(depth int) domain.Query {
	return domain.Query{Role: domain.RolePane, Name: r.layout.Ribbon, Depth: depth}
}

func (r *run) tabsQuery(depth int) domain.Query {
	return domain.Query{Role: domain.RoleTab, Name: r.layout.RibbonTabs, Depth: depth}
}

func (r *run) lowerRibbonQuery(depth int) domain.Query {
	return domain.Query{Role: domain.RolePane, Name: r.layout.LowerRibbon, Depth: depth}
}

func (r *run) operationPaneQuery(depth int) domain.Query {
	return domain.Query{Role: domain.RolePane, Name: r.layout.OperationPane, Depth: depth}
}

// switchRibbonTab resolves ribbon, tab strip and tab item one after another
// and selects the tab.
func (r *run) switchRibbonTab(ctx context.Context, tabName string) error {
	ribbon, err := RequireControl(ctx, r.main, r.ribbonQuery(6), r.timing.Retry)
	if err != nil {
		return err
	}
	tabs, err := RequireControl(ctx, ribbon, r.tabsQuery(4), r.timing.Retry)
	if err != nil {
		return err
	}
	tab, err := RequireControl(ctx, tabs, domain.Query{Role: domain.RoleTabItem, Name: tabName, Depth: 3}, r.timing.Retry)
	if err != nil {
		return err
	}
	if err := r.act(ctx, "select", tabName, func() error { return clickOrInvoke(tab) }); err != nil {
		return err
	}
	r.notef("switched to the %s tab", tabName)
	return nil
}

// waitUntilTabActive polls until the tab reports being selected or owning
// keyboard focus.
func (r *run) waitUntilTabActive(ctx context.Context, tabName string) error {
	path := []domain.Query{
		r.ribbonQuery(10),
		r.tabsQuery(10),
		{Role: domain.RoleTabItem, Name: tabName, Depth: 5},
	}

	var lastErr error
	active, err := poll(ctx, r.timing.TabActive, func() bool {
		tab, err := resolvePath(r.main, path)
		if err != nil {
			lastErr = err
		}
		if tab == nil || !tab.Exists() {
			return false
		}
		if selected, ok := tab.Selected(); ok && selected {
			return true
		}
		return tab.HasKeyboardFocus()
	})
	if err != nil {
		return err
	}
	if !active {
		return controlNotFound(domain.ErrTabNotActive, path[len(path)-1], r.timing.TabActive, lastErr)
	}
	return nil
}

// clickSaveAsExcel presses Save As Excel in the File toolbar of the
// Operation tab, falling back to any such button in the ribbon.
func (r *run) clickSaveAsExcel(ctx context.Context) error {
	if err := r.waitUntilTabActive(ctx, r.layout.OperationTab); err != nil {
		return err
	}

	button := domain.Query{Role: domain.RoleButton, Name: r.layout.SaveAsExcel}
	btn, err := r.firstOf(ctx, button, r.timing.Exists,
		[]domain.Query{
			r.ribbonQuery(10),
			r.lowerRibbonQuery(6),
			r.operationPaneQuery(6),
			{Role: domain.RoleToolBar, Name: r.layout.FileToolbar, Depth: 6},
			withDepth(button, 3),
		},
		[]domain.Query{r.ribbonQuery(10), withDepth(button, 30)},
	)
	if err != nil {
		return err
	}
	if err := r.act(ctx, "click", r.layout.SaveAsExcel, btn.Click); err != nil {
		return err
	}

	root, err := r.desktopRoot()
	if err != nil {
		return err
	}
	_, err = r.waitForChange(ctx, root, r.timing.DialogChange)
	return err
}

// clickOperationClose presses Close in the Operation pane, falling back to
// the lower ribbon and then to the whole ribbon.
func (r *run) clickOperationClose(ctx context.Context) error {
	if err := r.waitUntilTabActive(ctx, r.layout.OperationTab); err != nil {
		return err
	}

	button := domain.Query{Role: domain.RoleButton, Name: r.layout.CloseButton}
	btn, err := r.firstOf(ctx, button, r.timing.Exists,
		[]domain.Query{r.ribbonQuery(10), r.lowerRibbonQuery(8), r.operationPaneQuery(8), withDepth(button, 20)},
		[]domain.Query{r.ribbonQuery(10), r.lowerRibbonQuery(8), withDepth(button, 30)},
		[]domain.Query{r.ribbonQuery(10), withDepth(button, 40)},
	)
	if err != nil {
		return err
	}
	if err := r.act(ctx, "invoke", r.layout.CloseButton, func() error { return invokeOrClick(btn) }); err != nil {
		return err
	}
	_, err = r.waitForChange(ctx, r.main, r.timing.DialogChange)
	return err
}

// firstOf tries each path beneath the main window in order and returns the
// first control found. Each path gets the full poll budget.
func (r *run) firstOf(ctx context.Context, target domain.Query, p domain.Poll, paths ...[]domain.Query) (ports.Element, error) {
	var lastErr error
	for _, path := range paths {
		res, err := findPath(ctx, r.main, p, path...)
		if err != nil {
			return nil, err
		}
		if res.found != nil {
			return res.found, nil
		}
		if res.lastErr != nil {
			lastErr = res.lastErr
		}
	}
	return nil, controlNotFound(domain.ErrControlNotFound, target, p, lastErr)
}

func withDepth(q domain.Query, depth int) domain.Query {
	q.Depth = depth
	return q
}

// clickOrInvoke clicks el and falls back to its invoke action.
func clickOrInvoke(el ports.Element) error {
	clickErr := el.Click()
	if clickErr == nil {
		return nil
	}
	if invokeErr := el.Invoke(); invokeErr != nil {
		return errors.Join(clickErr, invokeErr)
	}
	return nil
}

// invokeOrClick prefers the invoke action and falls back to a click.
func invokeOrClick(el ports.Element) error {
	if el.CanInvoke() {
		if err := el.Invoke(); err == nil {
			return nil
		}
	}
	return el.Click()
}
