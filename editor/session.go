package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

// Outcomes that end a session request without an editor URL. Both are
// terminal but non-exceptional: the registry simply had nothing to show.
var (
	// ErrNoMatch means no entities of the requested scope exist at all.
	ErrNoMatch = errors.New("no entities matched the requested scope")

	// ErrNotViewable means entities matched, but the actor may view
	// none of them.
	ErrNotViewable = errors.New("no permission to view any matching entity")
)

// UploadError wraps a failed paste service exchange. No session key
// exists when it is returned.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return "editor upload failed: " + e.Err.Error() }

func (e *UploadError) Unwrap() error { return e.Err }

// Uploader sends an encoded snapshot to remote storage and returns the
// key assigned to it.
type Uploader interface {
	PostContent(ctx context.Context, body []byte, contentType string, oneTime bool) (string, error)
}

// Service wires the session pipeline together. All collaborators are
// read-only; a Service holds no per-request state and may be shared.
type Service struct {
	Users  UserSource
	Groups GroupSource
	Tracks TrackSource

	Checker  ViewChecker
	Uploader Uploader

	// URLTemplate is the base editor address; the session key is
	// appended after a '#'. The template is used as configured, without
	// validation.
	URLTemplate string

	Logger logrus.FieldLogger
}

// Request describes a single editor session request.
type Request struct {
	// Actor is the requesting identity. Empty means the console.
	Actor string

	// Permission is the base permission required to view entities.
	Permission string

	// ScopeToken is the raw, optional scope argument. Unrecognized
	// values select the full scope.
	ScopeToken string

	// Label is the command alias the request originated from.
	Label string
}

// Session is the result of a successful bootstrap. Key is the only
// state that outlives the request; everything else is derived.
type Session struct {
	Key     string
	URL     string
	Holders int
	Tracks  int
}

// Open runs the full pipeline: collect, filter, build, compress, upload,
// compose. It is synchronous and runs to completion or first error.
func (s *Service) Open(ctx context.Context, req Request) (*Session, error) {
	scope := ParseScope(req.ScopeToken)

	holders, tracks := Collect(scope, s.Groups, s.Users, s.Tracks)
	if len(holders) == 0 {
		return nil, ErrNoMatch
	}

	holders, tracks = Filter(s.Checker, req.Actor, req.Permission, holders, tracks)
	if len(holders) == 0 && len(tracks) == 0 {
		return nil, ErrNotViewable
	}

	payload := buildPayload(holders, tracks, req)

	body, err := encodePayload(payload)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to encode editor payload")
	}

	s.logger().WithFields(logrus.Fields{
		"scope":   scope,
		"holders": len(holders),
		"tracks":  len(tracks),
		"bytes":   len(body),
	}).Debug("uploading editor payload")

	start := time.Now()
	key, err := s.Uploader.PostContent(ctx, body, "application/json", false)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	s.logger().WithField("key", key).WithField("took", time.Since(start)).Debug("editor payload uploaded")

	return &Session{
		Key:     key,
		URL:     s.URLTemplate + "#" + key,
		Holders: len(holders),
		Tracks:  len(tracks),
	}, nil
}

// buildPayload turns the filtered entities into the snapshot document.
func buildPayload(holders []api.Holder, tracks []*api.Track, req Request) *api.EditorPayload {
	uploadedBy := req.Actor
	if uploadedBy == "" {
		uploadedBy = "console"
	}

	payload := &api.EditorPayload{
		Metadata: api.EditorMetadata{
			CommandAlias: req.Label,
			UploadedBy:   uploadedBy,
			Time:         time.Now().UTC(),
		},
		PermissionHolders: make([]api.HolderEntry, 0, len(holders)),
		Tracks:            make([]api.TrackEntry, 0, len(tracks)),
	}
	for _, h := range holders {
		payload.PermissionHolders = append(payload.PermissionHolders, api.HolderEntry{
			Type:        h.Kind(),
			ID:          h.Identifier(),
			DisplayName: h.Display(),
			Nodes:       h.Nodes(),
		})
	}
	for _, t := range tracks {
		payload.Tracks = append(payload.Tracks, api.TrackEntry{
			ID:     t.Name,
			Groups: t.Groups,
		})
	}
	return payload
}

// encodePayload renders the payload as gzipped JSON. The gzip stream is
// closed on every path; an encode or close error invalidates the buffer
// and fails the request.
func encodePayload(payload *api.EditorPayload) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := gzip.NewWriter(buf)

	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Service) logger() logrus.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}
