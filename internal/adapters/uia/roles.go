// Package uia exposes the Windows UI Automation tree as ports.Desktop.
package uia

import (
	"strconv"
	"strings"

	"go.trai.ch/stravex/internal/core/domain"
)

// controlTypes maps UIA control type identifiers to roles.
var controlTypes = map[int32]domain.Role{
	50000: domain.RoleButton,
	50001: "Calendar",
	50002: "CheckBox",
	50003: "ComboBox",
	50004: domain.RoleEdit,
	50005: "Hyperlink",
	50006: "Image",
	50007: domain.RoleListItem,
	50008: "List",
	50009: "Menu",
	50010: "MenuBar",
	50011: "MenuItem",
	50012: "ProgressBar",
	50013: "RadioButton",
	50014: "ScrollBar",
	50015: "Slider",
	50016: "Spinner",
	50017: "StatusBar",
	50018: domain.RoleTab,
	50019: domain.RoleTabItem,
	50020: domain.RoleText,
	50021: domain.RoleToolBar,
	50022: "ToolTip",
	50023: "Tree",
	50024: domain.RoleTreeItem,
	50025: domain.RoleCustom,
	50026: domain.RoleGroup,
	50027: "Thumb",
	50028: "DataGrid",
	50029: domain.RoleDataItem,
	50030: "Document",
	50031: "SplitButton",
	50032: domain.RoleWindow,
	50033: domain.RolePane,
	50034: "Header",
	50035: "HeaderItem",
	50036: "Table",
	50037: "TitleBar",
	50038: "Separator",
}

func roleOf(controlType int32) domain.Role {
	if role, ok := controlTypes[controlType]; ok {
		return role
	}
	return domain.RoleUnknown
}

// formatRuntimeID joins the integers of a UIA runtime id.
func formatRuntimeID(parts []int32) (string, bool) {
	if len(parts) == 0 {
		return "", false
	}
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = strconv.FormatInt(int64(p), 10)
	}
	return strings.Join(s, "."), true
}

// rect is a screen rectangle in physical pixels.
type rect struct {
	Left, Top, Right, Bottom int32
}

// center returns the click point of r. ok is false for an empty rectangle,
// which UIA reports for offscreen elements.
func (r rect) center() (x, y int, ok bool) {
	if r.Right <= r.Left || r.Bottom <= r.Top {
		return 0, 0, false
	}
	return int(r.Left+r.Right) / 2, int(r.Top+r.Bottom) / 2, true
}
