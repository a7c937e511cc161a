package api

import "strings"

// GroupNodePrefix marks a node granting membership of a group, e.g.
// "group.admin".
const GroupNodePrefix = "group."

// Node is a single permission assignment. A node with Value false is a
// negation and overrides any grant of the same key.
type Node struct {
	// Dotted permission key, e.g. "permsctl.editor.user.<uuid>". A key
	// of "*" or a trailing ".*" segment matches as a wildcard.
	Key string `json:"key" yaml:"key"`

	Value bool `json:"value" yaml:"value"`
}

// Matches reports whether the node's key covers the given permission,
// either exactly or by wildcard.
func (n Node) Matches(permission string) bool {
	if n.Key == permission || n.Key == "*" {
		return true
	}
	prefix, ok := strings.CutSuffix(n.Key, ".*")
	if !ok {
		return false
	}
	return strings.HasPrefix(permission, prefix+".")
}

// IsGroupMembership reports whether the node grants group membership,
// returning the group name if so.
func (n Node) IsGroupMembership() (string, bool) {
	name, ok := strings.CutPrefix(n.Key, GroupNodePrefix)
	if !ok || name == "" || strings.Contains(name, ".") {
		return "", false
	}
	return name, true
}
