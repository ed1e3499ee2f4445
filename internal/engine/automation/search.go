package automation

import (
	"regexp"

	"go.trai.ch/stravex/internal/core/domain"
	"go.trai.ch/stravex/internal/core/ports"
)

// Matcher selects elements during a breadth-first search.
type Matcher func(ports.Element) bool

// NameMatches matches elements whose display name matches re.
// Elements without a name are matched against "".
func NameMatches(re *regexp.Regexp) Matcher {
	return func(el ports.Element) bool {
		name, _ := el.Name()
		return re.MatchString(name)
	}
}

// IsFolderItem matches data items whose value or display name equals target.
func IsFolderItem(target string) Matcher {
	return func(el ports.Element) bool {
		if el.Role() != domain.RoleDataItem {
			return false
		}
		if v, ok := el.Value(); ok && v == target {
			return true
		}
		name, ok := el.Name()
		return ok && name == target
	}
}

// BreadthFirst walks the tree rooted at root level by level and returns the
// first element accepted by match, or nil. Subtrees that cannot be enumerated
// are skipped.
func BreadthFirst(root ports.Element, match Matcher) ports.Element {
	queue := []ports.Element{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if match(node) {
			return node
		}
		children, err := node.Children()
		if err != nil {
			continue
		}
		queue = append(queue, children...)
	}
	return nil
}

// descend returns the first descendant of root matching q, visiting at most
// q.MaxDepth levels in pre-order. The root itself is never matched.
// A nil element with a nil error means nothing matched.
func descend(root ports.Element, q domain.Query) (ports.Element, error) {
	return descendLevel(root, q, q.MaxDepth())
}

func descendLevel(el ports.Element, q domain.Query, depth int) (ports.Element, error) {
	if depth <= 0 {
		return nil, nil
	}
	children, err := el.Children()
	if err != nil {
		return nil, err
	}

	var firstErr error
	for _, child := range children {
		if matches(child, q) {
			return child, nil
		}
		found, err := descendLevel(child, q, depth-1)
		if found != nil {
			return found, nil
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// matches checks the cheapest property first so most nodes cost one call.
func matches(el ports.Element, q domain.Query) bool {
	if q.Role != domain.RoleAny && el.Role() != q.Role {
		return false
	}
	if q.Name != "" {
		name, ok := el.Name()
		if !ok || name != q.Name {
			return false
		}
	}
	if q.AutomationID != "" && el.AutomationID() != q.AutomationID {
		return false
	}
	return true
}

// resolvePath resolves each query beneath the previous match.
func resolvePath(root ports.Element, path []domain.Query) (ports.Element, error) {
	el := root
	for _, q := range path {
		next, err := descend(el, q)
		if next == nil {
			return nil, err
		}
		el = next
	}
	return el, nil
}
