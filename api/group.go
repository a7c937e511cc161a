package api

// Group is a permission holder identified by name. Groups carry an
// optional weight used to order them relative to each other; a group
// with no weight sorts as weight 0.
type Group struct {
	Name string `json:"name" yaml:"name"`

	// (optional) Name shown in place of the group name.
	DisplayName string `json:"displayName,omitempty" yaml:"display_name,omitempty"`

	Weight *int `json:"weight,omitempty" yaml:"weight,omitempty"`

	Permissions []Node `json:"nodes" yaml:"nodes"`
}

// Kind implements Entity.
func (g *Group) Kind() EntityKind { return KindGroup }

// Identifier implements Entity.
func (g *Group) Identifier() string { return g.Name }

// Display returns the group's display name, falling back to its name.
func (g *Group) Display() string {
	if g.DisplayName != "" {
		return g.DisplayName
	}
	return g.Name
}

// Nodes implements Holder.
func (g *Group) Nodes() []Node { return g.Permissions }

// WeightOrZero returns the group's weight, or 0 when unset.
func (g *Group) WeightOrZero() int {
	if g.Weight == nil {
		return 0
	}
	return *g.Weight
}
