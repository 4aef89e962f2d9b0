package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func openReadyDialog(t *testing.T, m *Manager, rawRef string) (*Dialog, *fakeNotifier) {
	t.Helper()
	notify := &fakeNotifier{}
	d := NewDialog(m, notify)
	if err := d.Open(testOwnerID, "hero", rawRef); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if d.State() != StateLoading {
		t.Fatalf("state after open = %s, want loading", d.State())
	}
	if err := d.MediaLoaded(400, 300, 400, 300); err != nil {
		t.Fatalf("MediaLoaded: %v", err)
	}
	if d.State() != StateReady {
		t.Fatalf("state after load = %s, want ready", d.State())
	}
	return d, notify
}

func TestDialogSaveFlow(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)

	d, notify := openReadyDialog(t, m, "")

	view, err := d.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	view.SetZoom(2) // centered 200x150 region

	src := gradientPNG(t, 400, 300)
	url, err := d.Save(context.Background(), bytes.NewReader(src))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if d.State() != StateClosed {
		t.Fatalf("state after save = %s, want closed", d.State())
	}
	if records.ref == nil || *records.ref != url {
		t.Fatalf("record ref = %v, want %q", records.ref, url)
	}
	if len(notify.successes) != 1 {
		t.Fatalf("successes = %v", notify.successes)
	}

	blob := store.objects[testOwnerID+"-hero.jpg"]
	out, err := imaging.Decode(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("decoding stored blob: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 150 {
		t.Fatalf("stored blob is %dx%d, want 200x150", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestDialogSaveAlwaysStoresJPEG(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)

	// repeated saves for the same owner, regardless of source encoding,
	// land on the single canonical .jpg key
	d, _ := openReadyDialog(t, m, "")
	png := gradientPNG(t, 400, 300)
	if _, err := d.Save(context.Background(), bytes.NewReader(png)); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	first, err := Extract(bytes.NewReader(png), Rect{X: 0, Y: 0, Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	d, _ = openReadyDialog(t, m, *records.ref)
	if _, err := d.Save(context.Background(), bytes.NewReader(first)); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if len(store.objects) != 1 {
		t.Fatalf("repeated saves left %d objects, want 1", len(store.objects))
	}
	key := testOwnerID + "-hero.jpg"
	blob, ok := store.objects[key]
	if !ok {
		t.Fatalf("object not stored under %q", key)
	}
	if store.types[key] != "image/jpeg" {
		t.Fatalf("content type = %q, want image/jpeg", store.types[key])
	}
	if len(blob) < 3 || blob[0] != 0xff || blob[1] != 0xd8 || blob[2] != 0xff {
		t.Fatalf("stored blob is not JPEG encoded: % x", blob[:3])
	}
}

func TestDialogLocalRefRejectsSaveButAllowsDelete(t *testing.T) {
	store := newFakeStore()
	ref := "/images/bundled.png"
	records := &fakeRecords{ref: &ref}
	m := testManager(store, records)

	d, _ := openReadyDialog(t, m, ref)
	if d.Editable() {
		t.Fatalf("local reference reported editable")
	}

	src := gradientPNG(t, 400, 300)
	if _, err := d.Save(context.Background(), bytes.NewReader(src)); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("Save err = %v, want ErrNotEditable", err)
	}
	if d.State() != StateReady {
		t.Fatalf("rejected save left state %s, want ready", d.State())
	}

	if err := d.Delete(context.Background()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if d.State() != StateClosed {
		t.Fatalf("state after delete = %s, want closed", d.State())
	}
	if len(store.removed) != 0 {
		t.Fatalf("local delete touched storage: %v", store.removed)
	}
	if records.ref != nil {
		t.Fatalf("record ref not cleared")
	}
}

func TestDialogSaveFailureStaysOpen(t *testing.T) {
	store := newFakeStore()
	store.uploadErr = fmt.Errorf("bucket unavailable")
	records := &fakeRecords{}
	m := testManager(store, records)

	d, notify := openReadyDialog(t, m, "")

	src := gradientPNG(t, 400, 300)
	if _, err := d.Save(context.Background(), bytes.NewReader(src)); err == nil {
		t.Fatalf("Save succeeded against a failing store")
	}
	if d.State() != StateReady {
		t.Fatalf("failed save left state %s, want ready for retry", d.State())
	}
	if len(notify.errors) != 1 {
		t.Fatalf("errors = %v", notify.errors)
	}

	// retry succeeds after the store recovers
	store.uploadErr = nil
	if _, err := d.Save(context.Background(), bytes.NewReader(src)); err != nil {
		t.Fatalf("retry Save: %v", err)
	}
	if d.State() != StateClosed {
		t.Fatalf("state after retry = %s, want closed", d.State())
	}
}

func TestDialogBadSourceStaysOpen(t *testing.T) {
	store := newFakeStore()
	records := &fakeRecords{}
	m := testManager(store, records)

	d, notify := openReadyDialog(t, m, "")

	_, err := d.Save(context.Background(), strings.NewReader("not an image"))
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Fatalf("Save err = %v, want ExtractionError", err)
	}
	if d.State() != StateReady {
		t.Fatalf("failed extract left state %s, want ready", d.State())
	}
	if len(store.objects) != 0 {
		t.Fatalf("failed extract reached storage")
	}
	if len(notify.errors) != 1 {
		t.Fatalf("errors = %v", notify.errors)
	}
}

func TestDialogGuards(t *testing.T) {
	m := testManager(newFakeStore(), &fakeRecords{})
	d := NewDialog(m, &fakeNotifier{})

	if _, err := d.View(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("View on closed dialog: %v", err)
	}
	if _, err := d.Save(context.Background(), strings.NewReader("")); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Save on closed dialog: %v", err)
	}
	if err := d.Delete(context.Background()); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Delete on closed dialog: %v", err)
	}
	if err := d.MediaLoaded(400, 300, 400, 300); err == nil {
		t.Fatalf("MediaLoaded on closed dialog accepted")
	}

	if err := d.Open(testOwnerID, "hero", ""); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := d.Open(testOwnerID, "hero", ""); err == nil {
		t.Fatalf("double Open accepted")
	}
}

func TestDialogCancelDiscardsState(t *testing.T) {
	m := testManager(newFakeStore(), &fakeRecords{})
	d, _ := openReadyDialog(t, m, "")

	view, err := d.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	view.SetZoom(2.5)
	view.SetPan(30, -10)

	d.Cancel()
	if d.State() != StateClosed {
		t.Fatalf("state after cancel = %s, want closed", d.State())
	}

	// reopening starts from a fresh view
	if err := d.Open(testOwnerID, "hero", ""); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := d.MediaLoaded(400, 300, 400, 300); err != nil {
		t.Fatalf("MediaLoaded: %v", err)
	}
	view, err = d.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Zoom() != MinZoom || view.Fit() != FitContain {
		t.Fatalf("reopened view carried over state: zoom=%v fit=%v", view.Zoom(), view.Fit())
	}
}
