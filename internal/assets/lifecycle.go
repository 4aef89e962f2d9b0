package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"portfolio-app/internal/domain/media"
)

// ErrNoSession is returned when a privileged operation runs without an
// authenticated session.
var ErrNoSession = errors.New("no authenticated session")

type UploadError struct{ Err error }

func (e *UploadError) Error() string { return fmt.Sprintf("upload failed: %v", e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

type DeleteError struct{ Err error }

func (e *DeleteError) Error() string { return fmt.Sprintf("delete failed: %v", e.Err) }
func (e *DeleteError) Unwrap() error { return e.Err }

type RecordUpdateError struct{ Err error }

func (e *RecordUpdateError) Error() string { return fmt.Sprintf("record update failed: %v", e.Err) }
func (e *RecordUpdateError) Unwrap() error { return e.Err }

// Session identifies the acting admin.
type Session struct {
	Email string
	Role  string
}

// SessionProvider supplies the current session. Injected rather than read
// ambiently so the no-session failure path is explicit and testable.
type SessionProvider interface {
	Session(ctx context.Context) (Session, error)
}

// ObjectStore is the object-storage collaborator. Upload overwrites any
// existing object at the same key.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	PublicURL(key string) string
	Remove(ctx context.Context, key string) error
}

// RecordStore reads and writes the single image-reference column of an
// owning record. Implementations must leave every other field untouched.
type RecordStore interface {
	ImageRef(ctx context.Context, kind media.OwnerKind, ownerID string) (string, error)
	SetImageRef(ctx context.Context, kind media.OwnerKind, ownerID string, ref *string) error
}

// Notifier reports terminal outcomes to the user. Fire-and-forget.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ObjectKeyFor derives the deterministic storage key for an owner. The same
// owner always maps to the same key, so a re-upload replaces rather than
// duplicates.
func ObjectKeyFor(ownerID string, kind media.OwnerKind, ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("%s-%s.%s", ownerID, kind, ext)
}

func contentTypeForExt(ext string) string {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Manager orchestrates upload, delete and external-URL updates against the
// object store, keeping the owning record's reference in sync. There is no
// optimistic locking: the last writer wins, which is acceptable for a
// single-admin site.
type Manager struct {
	Store    ObjectStore
	Records  RecordStore
	Sessions SessionProvider
	Classify media.Classifier
}

// Upload stores the blob under the owner's deterministic key, resolves its
// public URL and persists it as the owning record's reference. Only the
// image column is written; all other fields of the record are preserved.
func (m *Manager) Upload(ctx context.Context, ownerID string, kind media.OwnerKind, ext string, blob io.Reader) (string, error) {
	if _, err := m.Sessions.Session(ctx); err != nil {
		return "", &UploadError{Err: err}
	}

	key := ObjectKeyFor(ownerID, kind, ext)
	if err := m.Store.Upload(ctx, key, blob, contentTypeForExt(ext)); err != nil {
		return "", &UploadError{Err: err}
	}

	url := m.Store.PublicURL(key)
	if url == "" {
		return "", &UploadError{Err: fmt.Errorf("no public URL for object %q", key)}
	}

	if err := m.Records.SetImageRef(ctx, kind, ownerID, &url); err != nil {
		return "", &RecordUpdateError{Err: err}
	}
	return url, nil
}

// Delete removes the owner's current image. Managed blobs are removed from
// storage first; the record's reference is cleared only once that removal
// succeeds, so a failed storage delete never leaves a silently orphaned
// blob. Local and external references skip storage entirely.
func (m *Manager) Delete(ctx context.Context, ownerID string, kind media.OwnerKind) error {
	if _, err := m.Sessions.Session(ctx); err != nil {
		return &DeleteError{Err: err}
	}

	raw, err := m.Records.ImageRef(ctx, kind, ownerID)
	if err != nil {
		return &DeleteError{Err: err}
	}

	ref := m.Classify.Classify(raw)
	if ref.Kind == media.KindManaged {
		key := m.Classify.ObjectKey(ref)
		if err := m.Store.Remove(ctx, key); err != nil {
			return &DeleteError{Err: err}
		}
	}

	if err := m.Records.SetImageRef(ctx, kind, ownerID, nil); err != nil {
		return &RecordUpdateError{Err: err}
	}
	return nil
}

// SetExternalURL persists a user-supplied URL with no storage interaction.
// Any previous managed blob stays in the bucket until the next upload for
// this owner overwrites it.
func (m *Manager) SetExternalURL(ctx context.Context, ownerID string, kind media.OwnerKind, url string) error {
	if _, err := m.Sessions.Session(ctx); err != nil {
		return &UploadError{Err: err}
	}
	if !strings.HasPrefix(url, "http") {
		return &UploadError{Err: fmt.Errorf("external reference must be an http(s) URL")}
	}
	if err := m.Records.SetImageRef(ctx, kind, ownerID, &url); err != nil {
		return &RecordUpdateError{Err: err}
	}
	return nil
}

// SetLocalPath points the record at a bundled asset shipped with the site.
// The normalized reference that was persisted is returned.
func (m *Manager) SetLocalPath(ctx context.Context, ownerID string, kind media.OwnerKind, fileName string) (string, error) {
	if _, err := m.Sessions.Session(ctx); err != nil {
		return "", &UploadError{Err: err}
	}
	fileName = strings.TrimPrefix(strings.TrimSpace(fileName), m.Classify.LocalPrefix)
	if fileName == "" || strings.Contains(fileName, "..") {
		return "", &UploadError{Err: fmt.Errorf("invalid local file name %q", fileName)}
	}
	ref := m.Classify.LocalPrefix + fileName
	if err := m.Records.SetImageRef(ctx, kind, ownerID, &ref); err != nil {
		return "", &RecordUpdateError{Err: err}
	}
	return ref, nil
}
