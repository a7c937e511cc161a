package api

import "github.com/google/uuid"

// User is a permission holder identified by UUID.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`

	// (optional) Name shown in place of the username, e.g. a nickname.
	DisplayName string `json:"displayName,omitempty"`

	Permissions []Node `json:"nodes"`
}

// Kind implements Entity.
func (u *User) Kind() EntityKind { return KindUser }

// Identifier implements Entity.
func (u *User) Identifier() string { return u.ID.String() }

// Display returns the user's display name, falling back to the
// username.
func (u *User) Display() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Nodes implements Holder.
func (u *User) Nodes() []Node { return u.Permissions }
