package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

// fakeRegistry is a slice-backed stand-in for the entity registry.
type fakeRegistry struct {
	users  []*api.User
	groups []*api.Group
	tracks []*api.Track
}

func (f *fakeRegistry) Users() []*api.User   { return f.users }
func (f *fakeRegistry) Groups() []*api.Group { return f.groups }
func (f *fakeRegistry) Tracks() []*api.Track { return f.tracks }

// checkerFunc adapts a plain function to the ViewChecker interface.
type checkerFunc func(actor, permission string, entity api.Entity) bool

func (f checkerFunc) MayView(actor, permission string, entity api.Entity) bool {
	return f(actor, permission, entity)
}

var allowAll = checkerFunc(func(string, string, api.Entity) bool { return true })

// fakeUploader records the last uploaded body and returns a fixed key.
type fakeUploader struct {
	key         string
	err         error
	body        []byte
	contentType string
	oneTime     bool
	calls       int
}

func (f *fakeUploader) PostContent(_ context.Context, body []byte, contentType string, oneTime bool) (string, error) {
	f.calls++
	f.body = body
	f.contentType = contentType
	f.oneTime = oneTime
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

func intp(i int) *int { return &i }

func user(name string) *api.User {
	return &api.User{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), Username: name}
}

func group(name string, weight *int) *api.Group {
	return &api.Group{Name: name, Weight: weight}
}

// fixtureRegistry matches the ordering scenario used throughout the
// tests: groups Admin(100) and Mod(50), users Bob and alice, one track.
func fixtureRegistry() *fakeRegistry {
	return &fakeRegistry{
		users:  []*api.User{user("Bob"), user("alice")},
		groups: []*api.Group{group("Mod", intp(50)), group("Admin", intp(100))},
		tracks: []*api.Track{{Name: "staff", Groups: []string{"Mod", "Admin"}}},
	}
}
