package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

var (
	aliceID = uuid.MustParse("5f5894b3-4a3b-4c8f-9d2e-111111111111")
	bobID   = uuid.MustParse("5f5894b3-4a3b-4c8f-9d2e-222222222222")
)

func intp(i int) *int { return &i }

func fixtureStore(t *testing.T) *Store {
	t.Helper()

	admin := &api.Group{Name: "admin", Weight: intp(100), Permissions: []api.Node{
		{Key: "permsctl.editor.*", Value: true},
	}}
	mod := &api.Group{Name: "mod", Weight: intp(50)}

	alice := &api.User{ID: aliceID, Username: "alice", Permissions: []api.Node{
		{Key: "group.admin", Value: true},
		{Key: "permsctl.editor.group.mod", Value: false},
	}}
	bob := &api.User{ID: bobID, Username: "Bob"}

	s, err := New(
		[]*api.User{alice, bob},
		[]*api.Group{admin, mod},
		[]*api.Track{{Name: "staff", Groups: []string{"mod", "admin"}}},
	)
	require.NoError(t, err)
	return s
}

func TestLoadDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yml")
	data := `
users:
  - id: 5f5894b3-4a3b-4c8f-9d2e-111111111111
    username: alice
    nodes:
      - key: group.admin
        value: true
groups:
  - name: admin
    weight: 100
    nodes:
      - key: "*"
        value: true
tracks:
  - name: staff
    groups: [admin]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	require.Len(t, s.Users(), 1)
	assert.Equal(t, aliceID, s.Users()[0].ID)

	g, ok := s.Group("Admin")
	require.True(t, ok)
	assert.Equal(t, 100, g.WeightOrZero())

	tr, ok := s.Track("staff")
	require.True(t, ok)
	assert.Equal(t, []string{"admin"}, tr.Groups)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Empty(t, s.Users())
	assert.Empty(t, s.Groups())
	assert.Empty(t, s.Tracks())
}

func TestNewRejectsBadData(t *testing.T) {
	_, err := New([]*api.User{{Username: "noid"}}, nil, nil)
	assert.Error(t, err)

	_, err = New(nil, nil, []*api.Track{{Name: "t", Groups: []string{"ghost"}}})
	assert.Error(t, err)

	_, err = New(nil, []*api.Group{{Name: "dup"}, {Name: "DUP"}}, nil)
	assert.Error(t, err)
}

func TestUserLookupByNameAndID(t *testing.T) {
	s := fixtureStore(t)

	u, ok := s.User("ALICE")
	require.True(t, ok)
	assert.Equal(t, aliceID, u.ID)

	u, ok = s.User(bobID.String())
	require.True(t, ok)
	assert.Equal(t, "Bob", u.Username)

	_, ok = s.User("carol")
	assert.False(t, ok)
}

func TestMayView(t *testing.T) {
	s := fixtureStore(t)

	admin, _ := s.Group("admin")
	mod, _ := s.Group("mod")
	alice, _ := s.User("alice")
	bob, _ := s.User("bob")
	track, _ := s.Track("staff")

	// Console sees everything.
	assert.True(t, s.MayView("", "permsctl.editor", admin))
	assert.True(t, s.MayView("", "permsctl.editor", track))

	// Unknown actors see nothing.
	assert.False(t, s.MayView("carol", "permsctl.editor", admin))

	// alice inherits the editor wildcard through the admin group but
	// carries a negation for the mod group.
	assert.True(t, s.MayView("alice", "permsctl.editor", admin))
	assert.False(t, s.MayView("alice", "permsctl.editor", mod))
	assert.True(t, s.MayView("alice", "permsctl.editor", track))
	assert.True(t, s.MayView("alice", "permsctl.editor", bob))

	// bob has no nodes at all but may still view himself.
	assert.True(t, s.MayView("bob", "permsctl.editor", bob))
	assert.False(t, s.MayView("bob", "permsctl.editor", alice))
	assert.False(t, s.MayView("bob", "permsctl.editor", admin))
}
