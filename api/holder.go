package api

// EntityKind discriminates the entity types that may appear in an
// editor payload.
type EntityKind string

const (
	KindUser  EntityKind = "user"
	KindGroup EntityKind = "group"
	KindTrack EntityKind = "track"
)

// Entity is anything that can be subject to a view-permission check.
type Entity interface {
	// Kind returns the entity's type discriminator.
	Kind() EntityKind

	// Identifier returns the entity's stable identity: the UUID for
	// users, the name for groups and tracks.
	Identifier() string
}

// Holder is a permission-bearing entity: a user or a group. Tracks are
// entities but not holders.
type Holder interface {
	Entity

	// Display returns the holder's human-readable name.
	Display() string

	// Nodes returns the holder's permission nodes.
	Nodes() []Node
}
