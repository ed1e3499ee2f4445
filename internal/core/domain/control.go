package domain

import (
	"fmt"
	"strings"
)

// DefaultSearchDepth bounds a descendant search when a Query leaves Depth unset.
const DefaultSearchDepth = 10

// Role is the accessibility control type of an element.
type Role string

// Control roles used by the automation flow. RoleAny matches every element.
const (
	RoleAny      Role = ""
	RoleWindow   Role = "Window"
	RolePane     Role = "Pane"
	RoleButton   Role = "Button"
	RoleTab      Role = "Tab"
	RoleTabItem  Role = "TabItem"
	RoleToolBar  Role = "ToolBar"
	RoleGroup    Role = "Group"
	RoleDataItem Role = "DataItem"
	RoleTreeItem Role = "TreeItem"
	RoleListItem Role = "ListItem"
	RoleEdit     Role = "Edit"
	RoleText     Role = "Text"
	RoleCustom   Role = "Custom"
	RoleUnknown  Role = "Unknown"
)

// Query describes a control to look up beneath a root element.
// Empty fields match anything. Depth counts levels below the root: 1 means
// direct children only.
type Query struct {
	Role         Role
	Name         string
	AutomationID string
	Depth        int
}

// MaxDepth returns the effective search depth.
func (q Query) MaxDepth() int {
	if q.Depth <= 0 {
		return DefaultSearchDepth
	}
	return q.Depth
}

// String renders the query for logs and error metadata.
func (q Query) String() string {
	var parts []string
	if q.Role != RoleAny {
		parts = append(parts, string(q.Role))
	}
	if q.Name != "" {
		parts = append(parts, fmt.Sprintf("%q", q.Name))
	}
	if q.AutomationID != "" {
		parts = append(parts, "#"+q.AutomationID)
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}
