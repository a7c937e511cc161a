package api

// Track is an ordered progression of groups. Tracks are not holders;
// they carry no permission nodes of their own.
type Track struct {
	Name   string   `json:"name" yaml:"name"`
	Groups []string `json:"groups" yaml:"groups"`
}

// Kind implements Entity.
func (t *Track) Kind() EntityKind { return KindTrack }

// Identifier implements Entity.
func (t *Track) Identifier() string { return t.Name }
