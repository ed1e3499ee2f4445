//go:build windows

package uia

import (
	"errors"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	clsidCUIAutomation = ole.NewGUID("{FF48DBA4-60EF-4201-AA87-54103EEF594E}")
	iidIUIAutomation   = ole.NewGUID("{30CBE57D-D9D0-452A-AB13-7AC5AC4825EE}")
)

// Vtable slots, counted from the start of IUnknown.
const (
	automationGetRootElement      = 5
	automationCreateTrueCondition = 21

	elementSetFocus                = 3
	elementGetRuntimeID            = 4
	elementFindAll                 = 6
	elementGetCurrentPattern       = 16
	elementCurrentControlType      = 21
	elementCurrentName             = 23
	elementCurrentHasKeyboardFocus = 26
	elementCurrentAutomationID     = 29
	elementCurrentBoundingRect     = 43

	arrayLength     = 3
	arrayGetElement = 4

	invokeInvoke            = 3
	valueCurrentValue       = 4
	selectionItemIsSelected = 6
)

const (
	treeScopeChildren = 0x2

	patternInvoke        = 10000
	patternValue         = 10002
	patternSelectionItem = 10010

	hrSFalse          = 0x00000001
	hrRPCEChangedMode = 0x80010106
)

// comCall invokes vtable slot method of obj with the given arguments.
func comCall(obj *ole.IUnknown, method int, args ...uintptr) error {
	vtbl := (*[128]uintptr)(unsafe.Pointer(obj.RawVTable))
	hr, _, _ := syscall.SyscallN(vtbl[method], append([]uintptr{uintptr(unsafe.Pointer(obj))}, args...)...)
	if hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

// Desktop implements ports.Desktop over IUIAutomation.
type Desktop struct {
	pointer ports.Pointer

	once      sync.Once
	initErr   error
	auto      *ole.IUnknown
	condition *ole.IUnknown
}

// New creates a Desktop whose clicks are delivered through pointer.
// COM is initialized on first use.
func New(pointer ports.Pointer) *Desktop {
	return &Desktop{pointer: pointer}
}

func (d *Desktop) init() error {
	d.once.Do(func() {
		// The multithreaded apartment outlives the initializing thread, so
		// elements may be used from whichever thread runs the caller.
		if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
			var oleErr *ole.OleError
			if !errors.As(err, &oleErr) || (oleErr.Code() != hrSFalse && oleErr.Code() != hrRPCEChangedMode) {
				d.initErr = zerr.Wrap(err, domain.ErrAutomationUnavailable.Error())
				return
			}
		}

		auto, err := ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
		if err != nil {
			d.initErr = zerr.Wrap(err, domain.ErrAutomationUnavailable.Error())
			return
		}

		var cond *ole.IUnknown
		if err := comCall(auto, automationCreateTrueCondition, uintptr(unsafe.Pointer(&cond))); err != nil {
			auto.Release()
			d.initErr = zerr.Wrap(err, domain.ErrAutomationUnavailable.Error())
			return
		}

		d.auto = auto
		d.condition = cond
	})
	return d.initErr
}

// Root returns the desktop element.
func (d *Desktop) Root() (ports.Element, error) {
	if err := d.init(); err != nil {
		return nil, err
	}

	var raw *ole.IUnknown
	if err := comCall(d.auto, automationGetRootElement, uintptr(unsafe.Pointer(&raw))); err != nil {
		return nil, zerr.Wrap(err, domain.ErrAutomationUnavailable.Error())
	}
	return d.wrap(raw), nil
}

func (d *Desktop) wrap(raw *ole.IUnknown) *element {
	el := &element{raw: raw, desktop: d}
	runtime.AddCleanup(el, func(u *ole.IUnknown) { u.Release() }, raw)
	return el
}

// element is one IUIAutomationElement. Its COM reference is released once
// the element becomes unreachable.
type element struct {
	raw     *ole.IUnknown
	desktop *Desktop
}

func (e *element) bstr(method int) (string, bool) {
	var p *uint16
	if err := comCall(e.raw, method, uintptr(unsafe.Pointer(&p))); err != nil {
		return "", false
	}
	if p == nil {
		return "", true
	}
	defer ole.SysFreeString((*int16)(unsafe.Pointer(p)))
	return ole.BstrToString(p), true
}

func (e *element) pattern(id int32) *ole.IUnknown {
	var p *ole.IUnknown
	if err := comCall(e.raw, elementGetCurrentPattern, uintptr(id), uintptr(unsafe.Pointer(&p))); err != nil {
		return nil
	}
	return p
}

func (e *element) RuntimeID() (string, bool) {
	var sa *ole.SafeArray
	if err := comCall(e.raw, elementGetRuntimeID, uintptr(unsafe.Pointer(&sa))); err != nil || sa == nil {
		return "", false
	}
	conv := ole.SafeArrayConversion{Array: sa}
	defer conv.Release()

	values := conv.ToValueArray()
	parts := make([]int32, 0, len(values))
	for _, v := range values {
		if n, ok := v.(int32); ok {
			parts = append(parts, n)
		}
	}
	return formatRuntimeID(parts)
}

func (e *element) Role() domain.Role {
	var ct int32
	if err := comCall(e.raw, elementCurrentControlType, uintptr(unsafe.Pointer(&ct))); err != nil {
		return domain.RoleUnknown
	}
	return roleOf(ct)
}

func (e *element) Name() (string, bool) {
	return e.bstr(elementCurrentName)
}

func (e *element) AutomationID() string {
	id, _ := e.bstr(elementCurrentAutomationID)
	return id
}

func (e *element) Value() (string, bool) {
	p := e.pattern(patternValue)
	if p == nil {
		return "", false
	}
	defer p.Release()

	var v *uint16
	if err := comCall(p, valueCurrentValue, uintptr(unsafe.Pointer(&v))); err != nil {
		return "", false
	}
	if v == nil {
		return "", true
	}
	defer ole.SysFreeString((*int16)(unsafe.Pointer(v)))
	return ole.BstrToString(v), true
}

func (e *element) Selected() (bool, bool) {
	p := e.pattern(patternSelectionItem)
	if p == nil {
		return false, false
	}
	defer p.Release()

	var selected int32
	if err := comCall(p, selectionItemIsSelected, uintptr(unsafe.Pointer(&selected))); err != nil {
		return false, false
	}
	return selected != 0, true
}

func (e *element) HasKeyboardFocus() bool {
	var focus int32
	if err := comCall(e.raw, elementCurrentHasKeyboardFocus, uintptr(unsafe.Pointer(&focus))); err != nil {
		return false
	}
	return focus != 0
}

// Exists reports whether the element still answers property requests.
// Elements removed from the tree fail with UIA_E_ELEMENTNOTAVAILABLE.
func (e *element) Exists() bool {
	var ct int32
	return comCall(e.raw, elementCurrentControlType, uintptr(unsafe.Pointer(&ct))) == nil
}

func (e *element) Children() ([]ports.Element, error) {
	var arr *ole.IUnknown
	err := comCall(e.raw, elementFindAll,
		treeScopeChildren,
		uintptr(unsafe.Pointer(e.desktop.condition)),
		uintptr(unsafe.Pointer(&arr)),
	)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrActionFailed.Error())
	}
	if arr == nil {
		return nil, nil
	}
	defer arr.Release()

	var n int32
	if err := comCall(arr, arrayLength, uintptr(unsafe.Pointer(&n))); err != nil {
		return nil, zerr.Wrap(err, domain.ErrActionFailed.Error())
	}

	children := make([]ports.Element, 0, n)
	for i := range n {
		var raw *ole.IUnknown
		if err := comCall(arr, arrayGetElement, uintptr(i), uintptr(unsafe.Pointer(&raw))); err != nil {
			return nil, zerr.Wrap(err, domain.ErrActionFailed.Error())
		}
		children = append(children, e.desktop.wrap(raw))
	}
	return children, nil
}

func (e *element) clickPoint() (int, int, error) {
	var r rect
	if err := comCall(e.raw, elementCurrentBoundingRect, uintptr(unsafe.Pointer(&r))); err != nil {
		return 0, 0, zerr.Wrap(err, domain.ErrActionFailed.Error())
	}
	x, y, ok := r.center()
	if !ok {
		return 0, 0, zerr.With(domain.ErrActionFailed, "reason", "element has no visible bounds")
	}
	return x, y, nil
}

func (e *element) Click() error {
	x, y, err := e.clickPoint()
	if err != nil {
		return err
	}
	return e.desktop.pointer.Click(x, y)
}

func (e *element) DoubleClick() error {
	x, y, err := e.clickPoint()
	if err != nil {
		return err
	}
	return e.desktop.pointer.DoubleClick(x, y)
}

func (e *element) SetFocus() error {
	if err := comCall(e.raw, elementSetFocus); err != nil {
		return zerr.Wrap(err, domain.ErrActionFailed.Error())
	}
	return nil
}

func (e *element) CanInvoke() bool {
	p := e.pattern(patternInvoke)
	if p == nil {
		return false
	}
	p.Release()
	return true
}

func (e *element) Invoke() error {
	p := e.pattern(patternInvoke)
	if p == nil {
		return zerr.With(domain.ErrActionFailed, "reason", "element has no invoke pattern")
	}
	defer p.Release()

	if err := comCall(p, invokeInvoke); err != nil {
		return zerr.Wrap(err, domain.ErrActionFailed.Error())
	}
	return nil
}
