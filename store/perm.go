package store

import (
	"strings"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

// MayView reports whether the actor may view the given entity under the
// required base permission. The effective check key is
// "<permission>.<kind>.<identifier>". An empty actor is the console and
// may view everything. Actors unknown to the registry may view nothing.
// A user may always view themself.
func (s *Store) MayView(actor, permission string, entity api.Entity) bool {
	if actor == "" {
		return true
	}

	user, ok := s.User(actor)
	if !ok {
		return false
	}

	if entity.Kind() == api.KindUser && entity.Identifier() == user.ID.String() {
		return true
	}

	key := permission + "." + string(entity.Kind()) + "." + strings.ToLower(entity.Identifier())
	return s.resolve(user, key)
}

// resolve evaluates a permission key against the user's direct nodes
// and, transitively, the nodes of groups they are a member of. A
// negated node anywhere in the chain wins over any grant.
func (s *Store) resolve(user *api.User, key string) bool {
	granted := false
	denied := false

	visited := make(map[string]bool)
	var walk func(nodes []api.Node)
	walk = func(nodes []api.Node) {
		for _, n := range nodes {
			if n.Matches(key) {
				if n.Value {
					granted = true
				} else {
					denied = true
				}
			}
			if !n.Value {
				continue
			}
			if name, ok := n.IsGroupMembership(); ok {
				name = strings.ToLower(name)
				if visited[name] {
					continue
				}
				visited[name] = true
				if g, ok := s.Group(name); ok {
					walk(g.Permissions)
				}
			}
		}
	}
	walk(user.Permissions)

	return granted && !denied
}
