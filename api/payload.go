package api

import "time"

// EditorMetadata describes the context an editor session was opened
// from.
type EditorMetadata struct {
	// CommandAlias is the label of the command that opened the session.
	CommandAlias string `json:"commandAlias"`

	// UploadedBy identifies the actor who opened the session.
	UploadedBy string `json:"uploadedBy"`

	Time time.Time `json:"time"`
}

// HolderEntry is a holder as it appears in an editor payload.
type HolderEntry struct {
	Type        EntityKind `json:"type"`
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Nodes       []Node     `json:"nodes"`
}

// TrackEntry is a track as it appears in an editor payload.
type TrackEntry struct {
	ID     string   `json:"id"`
	Groups []string `json:"groups"`
}

// EditorPayload is the snapshot document uploaded for a web editor
// session. It is built fresh per request and never persisted locally.
type EditorPayload struct {
	Metadata          EditorMetadata `json:"metadata"`
	PermissionHolders []HolderEntry  `json:"permissionHolders"`
	Tracks            []TrackEntry   `json:"tracks"`
}

// PostContentResponse is the paste service's response to an upload.
// The key identifies the stored content and outlives the request.
type PostContentResponse struct {
	Key string `json:"key"`
}
