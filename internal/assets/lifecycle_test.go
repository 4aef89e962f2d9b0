package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"portfolio-app/internal/domain/media"
)

const testOwnerID = "3f6f2c1e-6a0b-4f05-9c3a-8f1d2b4e5a6c"

// fakeStore keeps uploaded blobs in memory keyed like the real bucket.
type fakeStore struct {
	objects map[string][]byte
	types   map[string]string

	uploadErr error
	removeErr error
	removed   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStore) Upload(_ context.Context, key string, r io.Reader, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://storage.googleapis.com/test-bucket/" + key
}

func (s *fakeStore) Remove(_ context.Context, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, key)
	delete(s.objects, key)
	return nil
}

// fakeRecords is a single-owner record store.
type fakeRecords struct {
	ref    *string
	getErr error
	setErr error
}

func (r *fakeRecords) ImageRef(context.Context, media.OwnerKind, string) (string, error) {
	if r.getErr != nil {
		return "", r.getErr
	}
	if r.ref == nil {
		return "", nil
	}
	return *r.ref, nil
}

func (r *fakeRecords) SetImageRef(_ context.Context, _ media.OwnerKind, _ string, ref *string) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.ref = ref
	return nil
}

type fakeSessions struct{ err error }

func (s fakeSessions) Session(context.Context) (Session, error) {
	if s.err != nil {
		return Session{}, s.err
	}
	return Session{Email: "admin@example.com", Role: "admin"}, nil
}

func testManager(store *fakeStore, records *fakeRecords) *Manager {
	return &Manager{
		Store:    store,
		Records:  records,
		Sessions: fakeSessions{},
		Classify: media.Classifier{
			ManagedPrefix: "https://storage.googleapis.com/test-bucket/",
			LocalPrefix:   "/images/",
		},
	}
}

func TestObjectKeyFor(t *testing.T) {
	key := ObjectKeyFor(testOwnerID, media.OwnerHero, "PNG")
	if key != testOwnerID+"-hero.png" {
		t.Fatalf("ObjectKeyFor = %q", key)
	}
	if key := ObjectKeyFor(testOwnerID, media.OwnerProject, ""); !strings.HasSuffix(key, "-project.jpg") {
		t.Fatalf("empty extension should default to jpg: %q", key)
	}
	if key := ObjectKeyFor(testOwnerID, media.OwnerAbout, ".jpeg"); !strings.HasSuffix(key, "-about.jpeg") {
		t.Fatalf("leading dot should be stripped: %q", key)
	}
}

func TestUploadStoresBlobAndUpdatesRecord(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)

	url, err := m.Upload(context.Background(), testOwnerID, media.OwnerHero, "jpg", strings.NewReader("pixels"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	key := testOwnerID + "-hero.jpg"
	if string(store.objects[key]) != "pixels" {
		t.Fatalf("blob not stored under %q", key)
	}
	if store.types[key] != "image/jpeg" {
		t.Fatalf("content type = %q", store.types[key])
	}
	if records.ref == nil || *records.ref != url {
		t.Fatalf("record ref = %v, want %q", records.ref, url)
	}
}

func TestUploadOverwritesSameKey(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)

	first, err := m.Upload(context.Background(), testOwnerID, media.OwnerHero, "jpg", strings.NewReader("v1"))
	if err != nil {
		t.Fatalf("first Upload: %v", err)
	}
	second, err := m.Upload(context.Background(), testOwnerID, media.OwnerHero, "jpg", strings.NewReader("v2"))
	if err != nil {
		t.Fatalf("second Upload: %v", err)
	}

	if first != second {
		t.Fatalf("re-upload changed the URL: %q -> %q", first, second)
	}
	if len(store.objects) != 1 {
		t.Fatalf("re-upload duplicated the object: %d objects", len(store.objects))
	}
	if string(store.objects[testOwnerID+"-hero.jpg"]) != "v2" {
		t.Fatalf("object not overwritten")
	}
}

func TestUploadWithoutSession(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)
	m.Sessions = fakeSessions{err: ErrNoSession}

	_, err := m.Upload(context.Background(), testOwnerID, media.OwnerHero, "jpg", strings.NewReader("pixels"))
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
	if len(store.objects) != 0 {
		t.Fatalf("unauthenticated upload reached storage")
	}
}

func TestUploadStorageFailureLeavesRecord(t *testing.T) {
	store := newFakeStore()
	store.uploadErr = fmt.Errorf("bucket unavailable")
	existing := "https://example.com/old.jpg"
	records := &fakeRecords{ref: &existing}
	m := testManager(store, records)

	_, err := m.Upload(context.Background(), testOwnerID, media.OwnerHero, "jpg", strings.NewReader("pixels"))
	var upErr *UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("err = %v, want UploadError", err)
	}
	if records.ref == nil || *records.ref != existing {
		t.Fatalf("failed upload modified the record: %v", records.ref)
	}
}

func TestUploadRecordFailureReportsSeparately(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{setErr: fmt.Errorf("row gone")}
	m := testManager(store, records)

	_, err := m.Upload(context.Background(), testOwnerID, media.OwnerHero, "jpg", strings.NewReader("pixels"))
	var recErr *RecordUpdateError
	if !errors.As(err, &recErr) {
		t.Fatalf("err = %v, want RecordUpdateError", err)
	}
	// blob landed, record did not: caller can distinguish this state
	if len(store.objects) != 1 {
		t.Fatalf("blob missing after record-update failure")
	}
}

func TestDeleteManagedRemovesBlobThenClearsRecord(t *testing.T) {
	store := newFakeStore()
	key := testOwnerID + "-hero.jpg"
	store.objects[key] = []byte("pixels")
	ref := store.PublicURL(key)
	records := &fakeRecords{ref: &ref}
	m := testManager(store, records)

	if err := m.Delete(context.Background(), testOwnerID, media.OwnerHero); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != key {
		t.Fatalf("removed = %v, want [%s]", store.removed, key)
	}
	if records.ref != nil {
		t.Fatalf("record ref not cleared: %v", *records.ref)
	}
}

func TestDeleteStorageFailureKeepsRecord(t *testing.T) {
	store := newFakeStore()
	store.removeErr = fmt.Errorf("bucket unavailable")
	ref := store.PublicURL(testOwnerID + "-hero.jpg")
	records := &fakeRecords{ref: &ref}
	m := testManager(store, records)

	err := m.Delete(context.Background(), testOwnerID, media.OwnerHero)
	var delErr *DeleteError
	if !errors.As(err, &delErr) {
		t.Fatalf("err = %v, want DeleteError", err)
	}
	if records.ref == nil || *records.ref != ref {
		t.Fatalf("failed storage delete cleared the record anyway")
	}
}

func TestDeleteExternalSkipsStorage(t *testing.T) {
	store := newFakeStore()
	ref := "https://example.com/elsewhere.jpg"
	records := &fakeRecords{ref: &ref}
	m := testManager(store, records)

	if err := m.Delete(context.Background(), testOwnerID, media.OwnerProject); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.removed) != 0 {
		t.Fatalf("external delete touched storage: %v", store.removed)
	}
	if records.ref != nil {
		t.Fatalf("record ref not cleared")
	}
}

func TestDeleteLocalSkipsStorage(t *testing.T) {
	store := newFakeStore()
	ref := "/images/bundled.png"
	records := &fakeRecords{ref: &ref}
	m := testManager(store, records)

	if err := m.Delete(context.Background(), testOwnerID, media.OwnerAbout); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.removed) != 0 {
		t.Fatalf("local delete touched storage: %v", store.removed)
	}
	if records.ref != nil {
		t.Fatalf("record ref not cleared")
	}
}

func TestSetExternalURL(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)

	if err := m.SetExternalURL(context.Background(), testOwnerID, media.OwnerHero, "ftp://nope"); err == nil {
		t.Fatalf("non-http URL accepted")
	}
	if err := m.SetExternalURL(context.Background(), testOwnerID, media.OwnerHero, "https://example.com/a.jpg"); err != nil {
		t.Fatalf("SetExternalURL: %v", err)
	}
	if records.ref == nil || *records.ref != "https://example.com/a.jpg" {
		t.Fatalf("record ref = %v", records.ref)
	}
}

func TestSetLocalPath(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)

	if _, err := m.SetLocalPath(context.Background(), testOwnerID, media.OwnerHero, "../etc/passwd"); err == nil {
		t.Fatalf("path traversal accepted")
	}
	ref, err := m.SetLocalPath(context.Background(), testOwnerID, media.OwnerHero, "profile.jpg")
	if err != nil {
		t.Fatalf("SetLocalPath: %v", err)
	}
	if ref != "/images/profile.jpg" {
		t.Fatalf("returned ref = %q", ref)
	}
	if records.ref == nil || *records.ref != ref {
		t.Fatalf("record ref = %v, want %q", records.ref, ref)
	}
	// an already-prefixed name is not double-prefixed
	ref, err = m.SetLocalPath(context.Background(), testOwnerID, media.OwnerHero, "/images/other.jpg")
	if err != nil {
		t.Fatalf("SetLocalPath: %v", err)
	}
	if ref != "/images/other.jpg" || *records.ref != ref {
		t.Fatalf("returned %q, stored %q", ref, *records.ref)
	}
	// padded input normalizes to the same ref that was stored
	ref, err = m.SetLocalPath(context.Background(), testOwnerID, media.OwnerHero, "  /images/padded.jpg  ")
	if err != nil {
		t.Fatalf("SetLocalPath: %v", err)
	}
	if ref != "/images/padded.jpg" {
		t.Fatalf("padded name normalized to %q", ref)
	}
	if *records.ref != ref {
		t.Fatalf("returned ref %q differs from stored %q", ref, *records.ref)
	}
}
