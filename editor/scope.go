// Package editor bootstraps web editor sessions: it selects and filters
// registry entities, serializes them into a compressed snapshot, uploads
// the snapshot to a paste service and composes the session URL.
package editor

import "strings"

// Scope selects which entity kinds an editor session covers.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeUsers
	ScopeGroups
)

// ParseScope interprets a scope token case-insensitively. Unknown or
// absent tokens select ScopeAll; parsing never fails.
func ParseScope(token string) Scope {
	switch strings.ToLower(token) {
	case "users":
		return ScopeUsers
	case "groups":
		return ScopeGroups
	default:
		return ScopeAll
	}
}

// IncludesUsers reports whether the scope covers users.
func (s Scope) IncludesUsers() bool { return s != ScopeGroups }

// IncludesGroups reports whether the scope covers groups and tracks.
func (s Scope) IncludesGroups() bool { return s != ScopeUsers }

func (s Scope) String() string {
	switch s {
	case ScopeUsers:
		return "users"
	case ScopeGroups:
		return "groups"
	default:
		return "all"
	}
}
