package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"portfolio-app/internal/domain/media"
)

type DialogState int

const (
	StateClosed DialogState = iota
	StateLoading
	StateReady
	StateSaving
	StateDeleting
)

func (s DialogState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	case StateDeleting:
		return "deleting"
	}
	return "unknown"
}

// ErrNotReady is returned when save or delete is attempted before the
// source image has finished loading, or while another operation is pending.
var ErrNotReady = errors.New("dialog is not ready")

// ErrNotEditable is returned when a crop/save is attempted on a bundled
// local asset.
var ErrNotEditable = errors.New("bundled local images cannot be edited")

// Dialog is the modal image-editing workflow: open, adjust, save or delete,
// close. Save and delete failures keep the dialog open so the user can
// retry; cancel discards all in-progress crop state unconditionally.
type Dialog struct {
	manager *Manager
	notify  Notifier

	state   DialogState
	ownerID string
	kind    media.OwnerKind
	ref     media.Reference
	view    *CropView
}

func NewDialog(m *Manager, n Notifier) *Dialog {
	return &Dialog{manager: m, notify: n, state: StateClosed}
}

func (d *Dialog) State() DialogState { return d.state }

// Open starts an editing session for the owner's current reference. The
// crop view starts from its initial state on every open.
func (d *Dialog) Open(ownerID string, kind media.OwnerKind, rawRef string) error {
	if d.state != StateClosed {
		return fmt.Errorf("dialog already open (%s)", d.state)
	}
	d.ownerID = ownerID
	d.kind = kind
	d.ref = d.manager.Classify.Classify(rawRef)
	d.view = NewCropView()
	d.state = StateLoading
	return nil
}

// MediaLoaded moves the dialog into the adjustable state once the source
// image dimensions are known. Until then adjustment is disabled.
func (d *Dialog) MediaLoaded(srcW, srcH, viewW, viewH int) error {
	if d.state != StateLoading {
		return fmt.Errorf("unexpected media load in state %s", d.state)
	}
	if err := d.view.SetMedia(srcW, srcH, viewW, viewH); err != nil {
		return err
	}
	d.state = StateReady
	return nil
}

// View exposes the crop surface for adjustment while the dialog is ready.
func (d *Dialog) View() (*CropView, error) {
	if d.state != StateReady {
		return nil, ErrNotReady
	}
	return d.view, nil
}

// Editable reports whether save is allowed for the opened reference.
func (d *Dialog) Editable() bool { return d.ref.Editable() }

// Save extracts the current crop region from the source and uploads it for
// the owner. The extracted region is always encoded as JPEG, so the stored
// object key and content type are JPEG regardless of the source format.
// On success the dialog closes and the new managed reference is returned;
// on failure the dialog stays ready for another attempt.
func (d *Dialog) Save(ctx context.Context, source io.Reader) (string, error) {
	if d.state != StateReady {
		return "", ErrNotReady
	}
	if !d.ref.Editable() {
		return "", ErrNotEditable
	}

	d.state = StateSaving

	blob, err := Extract(source, d.view.Rect())
	if err != nil {
		d.state = StateReady
		d.notify.Error(fmt.Sprintf("Failed to crop image: %v", err))
		return "", err
	}

	url, err := d.manager.Upload(ctx, d.ownerID, d.kind, "jpg", bytes.NewReader(blob))
	if err != nil {
		d.state = StateReady
		d.notify.Error(fmt.Sprintf("Error uploading file: %v", err))
		return "", err
	}

	d.state = StateClosed
	d.notify.Success("Image uploaded successfully!")
	return url, nil
}

// Delete removes the owner's image through the lifecycle manager. Works for
// local references too: storage is skipped and only the record is cleared.
func (d *Dialog) Delete(ctx context.Context) error {
	if d.state != StateReady {
		return ErrNotReady
	}

	d.state = StateDeleting
	if err := d.manager.Delete(ctx, d.ownerID, d.kind); err != nil {
		d.state = StateReady
		d.notify.Error(fmt.Sprintf("Error deleting image: %v", err))
		return err
	}

	d.state = StateClosed
	d.notify.Success("Image deleted successfully!")
	return nil
}

// Cancel closes the dialog and discards all crop state.
func (d *Dialog) Cancel() {
	d.state = StateClosed
	d.view = nil
}
