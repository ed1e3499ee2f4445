package automation_test

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
)

// fakeElement is a scripted accessibility node.
type fakeElement struct {
	id        string
	role      domain.Role
	name      string
	noName    bool
	autoID    string
	value     string
	hasValue  bool
	selected  bool
	focused   bool
	canInvoke bool
	hidden    bool
	churn     bool
	childErr  error
	children  []*fakeElement

	onClick func()

	enumerations int
	clicks       int
	doubleClicks int
	invokes      int
	focusCalls   int
}

func el(role domain.Role, name string, children ...*fakeElement) *fakeElement {
	return &fakeElement{id: name, role: role, name: name, children: children}
}

func (e *fakeElement) with(f func(*fakeElement)) *fakeElement {
	f(e)
	return e
}

func (e *fakeElement) add(child *fakeElement) {
	e.children = append(e.children, child)
}

func (e *fakeElement) RuntimeID() (string, bool) { return e.id, e.id != "" }
func (e *fakeElement) Role() domain.Role         { return e.role }
func (e *fakeElement) AutomationID() string      { return e.autoID }
func (e *fakeElement) HasKeyboardFocus() bool    { return e.focused }
func (e *fakeElement) Exists() bool              { return !e.hidden }
func (e *fakeElement) CanInvoke() bool           { return e.canInvoke }

func (e *fakeElement) Name() (string, bool) {
	if e.noName {
		return "", false
	}
	return e.name, true
}

func (e *fakeElement) Value() (string, bool) {
	return e.value, e.hasValue
}

func (e *fakeElement) Selected() (bool, bool) {
	if e.role != domain.RoleTabItem {
		return false, false
	}
	return e.selected, true
}

// Children lists the visible children. Churning elements report a status
// line that changes on every enumeration, so change waits succeed at once.
func (e *fakeElement) Children() ([]ports.Element, error) {
	if e.childErr != nil {
		return nil, e.childErr
	}
	e.enumerations++
	out := make([]ports.Element, 0, len(e.children)+1)
	for _, c := range e.children {
		if !c.hidden {
			out = append(out, c)
		}
	}
	if e.churn {
		status := fmt.Sprintf("status %d", e.enumerations)
		out = append(out, &fakeElement{id: e.id + "/status", role: domain.RoleText, name: status})
	}
	return out, nil
}

func (e *fakeElement) Click() error {
	e.clicks++
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) DoubleClick() error {
	e.doubleClicks++
	return nil
}

func (e *fakeElement) SetFocus() error {
	e.focusCalls++
	return nil
}

func (e *fakeElement) Invoke() error {
	if !e.canInvoke {
		return errors.New("invoke pattern not supported")
	}
	e.invokes++
	return nil
}

// fakeDesktop exposes a fixed root.
type fakeDesktop struct {
	root *fakeElement
}

func (d *fakeDesktop) Root() (ports.Element, error) {
	return d.root, nil
}

// fakeKeyboard records injected input.
type fakeKeyboard struct {
	events  []string
	at      []time.Time
	onPress map[domain.Key]func()
	fail    func(event string) error
}

func (k *fakeKeyboard) record(event string) error {
	if k.fail != nil {
		if err := k.fail(event); err != nil {
			return err
		}
	}
	k.events = append(k.events, event)
	k.at = append(k.at, time.Now())
	return nil
}

func (k *fakeKeyboard) Press(key domain.Key) error {
	if err := k.record("press:" + string(key)); err != nil {
		return err
	}
	if f := k.onPress[key]; f != nil {
		f()
	}
	return nil
}

func (k *fakeKeyboard) Hotkey(keys ...domain.Key) error {
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = string(key)
	}
	return k.record("hotkey:" + strings.Join(names, "+"))
}

func (k *fakeKeyboard) Type(text string) error {
	return k.record("type:" + text)
}

func (k *fakeKeyboard) KeyDown(key domain.Key) error {
	return k.record("keydown:" + string(key))
}

func (k *fakeKeyboard) KeyUp(key domain.Key) error {
	return k.record("keyup:" + string(key))
}

// typed returns every contiguous run of typed characters.
func (k *fakeKeyboard) typed() []string {
	var (
		out     []string
		current strings.Builder
		inRun   bool
	)
	for _, ev := range k.events {
		if text, ok := strings.CutPrefix(ev, "type:"); ok {
			current.WriteString(text)
			inRun = true
			continue
		}
		if inRun {
			out = append(out, current.String())
			current.Reset()
			inRun = false
		}
	}
	if inRun {
		out = append(out, current.String())
	}
	return out
}

func (k *fakeKeyboard) count(event string) int {
	n := 0
	for _, ev := range k.events {
		if ev == event {
			n++
		}
	}
	return n
}

// stravis is a scripted STRAVIS client whose every lookup succeeds at once.
type stravis struct {
	desktop     *fakeDesktop
	main        *fakeElement
	node        *fakeElement
	tab         *fakeElement
	base        *fakeElement
	period      *fakeElement
	open        *fakeElement
	display     *fakeElement
	saveAsExcel *fakeElement
	closeButton *fakeElement
	saveDialog  *fakeElement
	folder      *fakeElement
	keyboard    *fakeKeyboard
}

func newStravis() *stravis {
	s := &stravis{}
	layout := domain.DefaultLayout()

	s.node = el(domain.RoleTreeItem, layout.NavigationNode)
	s.tab = el(domain.RoleTabItem, layout.OperationTab).with(func(e *fakeElement) {
		e.selected = true
	})
	s.saveAsExcel = el(domain.RoleButton, layout.SaveAsExcel)
	s.closeButton = el(domain.RoleButton, layout.CloseButton).with(func(e *fakeElement) {
		e.canInvoke = true
	})
	ribbon := el(domain.RolePane, layout.Ribbon,
		el(domain.RoleTab, layout.RibbonTabs,
			el(domain.RoleTabItem, "Home"),
			s.tab,
		),
		el(domain.RolePane, layout.LowerRibbon,
			el(domain.RolePane, layout.OperationPane,
				el(domain.RoleToolBar, layout.FileToolbar, s.saveAsExcel),
				s.closeButton,
			),
		),
	)

	s.period = el(domain.RoleCustom, "AY2025(YTD)")
	s.open = el(domain.RoleButton, layout.OpenButton)
	s.display = el(domain.RoleButton, layout.DisplayButton).with(func(e *fakeElement) {
		e.autoID = layout.DisplayButtonID
	})
	org := el(domain.RolePane, "Organization", s.open).with(func(e *fakeElement) {
		e.autoID = layout.OrganizationPaneID
	})
	s.base = el(domain.RolePane, layout.BaseInput,
		el(domain.RoleCustom, "AY2025"),
		el(domain.RoleGroup, "Filters", s.period, org),
		s.display,
	).with(func(e *fakeElement) {
		e.churn = true
		e.hidden = true
	})

	s.main = el(domain.RoleWindow, layout.MainWindow, s.node, ribbon, s.base).with(func(e *fakeElement) {
		e.churn = true
	})

	s.folder = el(domain.RoleDataItem, "Name").with(func(e *fakeElement) {
		e.value = layout.TargetFolder
		e.hasValue = true
		e.canInvoke = true
	})
	s.saveDialog = el(domain.RoleWindow, layout.SaveDialog,
		el(domain.RolePane, layout.SidePanel,
			el(domain.RoleGroup, layout.DataPanel,
				el(domain.RoleDataItem, "Desktop"),
				s.folder,
			),
		),
	).with(func(e *fakeElement) {
		e.churn = true
		e.hidden = true
	})

	root := el(domain.RolePane, "Desktop", s.main, s.saveDialog).with(func(e *fakeElement) {
		e.churn = true
	})
	s.desktop = &fakeDesktop{root: root}

	// The data input view opens on Enter after the navigation node; the
	// Save As dialog opens from Save As Excel and closes on Enter.
	s.saveAsExcel.onClick = func() { s.saveDialog.hidden = false }
	s.keyboard = &fakeKeyboard{
		onPress: map[domain.Key]func(){
			domain.KeyEnter: func() {
				if s.node.doubleClicks > 0 {
					s.base.hidden = false
				}
				s.saveDialog.hidden = true
			},
		},
	}
	return s
}
