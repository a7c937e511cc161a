// Package store loads a permsctl data file into an in-memory, read-only
// registry of users, groups and tracks.
package store

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

// Store is an immutable snapshot of the entity registry. It is safe for
// concurrent readers; nothing mutates it after Load returns.
type Store struct {
	users  []*api.User
	groups []*api.Group
	tracks []*api.Track

	usersByName  map[string]*api.User
	groupsByName map[string]*api.Group
	tracksByName map[string]*api.Track
}

// userRecord is the on-disk shape of a user. UUIDs are kept as strings
// in YAML and parsed on load.
type userRecord struct {
	ID          string     `yaml:"id"`
	Username    string     `yaml:"username"`
	DisplayName string     `yaml:"display_name"`
	Nodes       []api.Node `yaml:"nodes"`
}

type dataFile struct {
	Users  []userRecord `yaml:"users"`
	Groups []*api.Group `yaml:"groups"`
	Tracks []*api.Track `yaml:"tracks"`
}

// Load reads a registry from a YAML data file. A missing file yields an
// empty registry rather than an error.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(nil, nil, nil)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var data dataFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to read data file")
	}

	users := make([]*api.User, 0, len(data.Users))
	for _, r := range data.Users {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "user %q has a malformed id", r.Username)
		}
		users = append(users, &api.User{
			ID:          id,
			Username:    r.Username,
			DisplayName: r.DisplayName,
			Permissions: r.Nodes,
		})
	}

	return New(users, data.Groups, data.Tracks)
}

// New builds a registry from already-parsed entities.
func New(users []*api.User, groups []*api.Group, tracks []*api.Track) (*Store, error) {
	s := &Store{
		users:        users,
		groups:       groups,
		tracks:       tracks,
		usersByName:  make(map[string]*api.User, len(users)),
		groupsByName: make(map[string]*api.Group, len(groups)),
		tracksByName: make(map[string]*api.Track, len(tracks)),
	}

	for _, u := range users {
		if u.ID == uuid.Nil {
			return nil, errors.Errorf("user %q has no id", u.Username)
		}
		if u.Username == "" {
			return nil, errors.Errorf("user %s has no username", u.ID)
		}
		name := strings.ToLower(u.Username)
		if _, ok := s.usersByName[name]; ok {
			return nil, errors.Errorf("duplicate user %q", u.Username)
		}
		s.usersByName[name] = u
	}
	for _, g := range groups {
		if g.Name == "" {
			return nil, errors.New("group with no name")
		}
		name := strings.ToLower(g.Name)
		if _, ok := s.groupsByName[name]; ok {
			return nil, errors.Errorf("duplicate group %q", g.Name)
		}
		s.groupsByName[name] = g
	}
	for _, t := range tracks {
		if t.Name == "" {
			return nil, errors.New("track with no name")
		}
		name := strings.ToLower(t.Name)
		if _, ok := s.tracksByName[name]; ok {
			return nil, errors.Errorf("duplicate track %q", t.Name)
		}
		for _, g := range t.Groups {
			if _, ok := s.groupsByName[strings.ToLower(g)]; !ok {
				return nil, errors.Errorf("track %q references unknown group %q", t.Name, g)
			}
		}
		s.tracksByName[name] = t
	}

	return s, nil
}

// Users returns every user in the registry.
func (s *Store) Users() []*api.User { return s.users }

// Groups returns every group in the registry.
func (s *Store) Groups() []*api.Group { return s.groups }

// Tracks returns every track in the registry.
func (s *Store) Tracks() []*api.Track { return s.tracks }

// User looks up a user by username or UUID.
func (s *Store) User(ref string) (*api.User, bool) {
	if u, ok := s.usersByName[strings.ToLower(ref)]; ok {
		return u, true
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return nil, false
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// Group looks up a group by name.
func (s *Store) Group(name string) (*api.Group, bool) {
	g, ok := s.groupsByName[strings.ToLower(name)]
	return g, ok
}

// Track looks up a track by name.
func (s *Store) Track(name string) (*api.Track, bool) {
	t, ok := s.tracksByName[strings.ToLower(name)]
	return t, ok
}
