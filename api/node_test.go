package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeMatches(t *testing.T) {
	cases := map[string]struct {
		key        string
		permission string
		expected   bool
	}{
		"Exact":            {"permsctl.editor", "permsctl.editor", true},
		"Other":            {"permsctl.editor", "permsctl.import", false},
		"Root":             {"*", "anything.at.all", true},
		"Wildcard":         {"permsctl.editor.*", "permsctl.editor.user.abc", true},
		"WildcardDeep":     {"permsctl.*", "permsctl.editor.user.abc", true},
		"WildcardMiss":     {"permsctl.editor.*", "permsctl.import.user.abc", false},
		"WildcardNotSelf":  {"permsctl.editor.*", "permsctl.editor", false},
		"NoPartialSegment": {"permsctl.edit", "permsctl.editor", false},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			n := Node{Key: c.key, Value: true}
			assert.Equal(t, c.expected, n.Matches(c.permission))
		})
	}
}

func TestNodeGroupMembership(t *testing.T) {
	name, ok := Node{Key: "group.admin", Value: true}.IsGroupMembership()
	assert.True(t, ok)
	assert.Equal(t, "admin", name)

	_, ok = Node{Key: "group.admin.weight", Value: true}.IsGroupMembership()
	assert.False(t, ok)

	_, ok = Node{Key: "permsctl.editor", Value: true}.IsGroupMembership()
	assert.False(t, ok)
}
