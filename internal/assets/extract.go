package assets

import (
	"bytes"
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ExtractionError is a client-side failure to read or re-encode pixels.
// It never involves network or storage state.
type ExtractionError struct {
	Op  string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract: %s: %v", e.Op, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extract decodes the source image, copies the region described by rect 1:1
// and returns it encoded as JPEG. The same source and rectangle always yield
// the same pixel content.
func Extract(r io.Reader, rect Rect) ([]byte, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &ExtractionError{Op: "decode", Err: err}
	}

	bounds := src.Bounds()
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil, &ExtractionError{Op: "crop", Err: fmt.Errorf("invalid crop dimensions: width=%d, height=%d", rect.Width, rect.Height)}
	}
	if rect.X < 0 || rect.Y < 0 || rect.X+rect.Width > bounds.Dx() || rect.Y+rect.Height > bounds.Dy() {
		return nil, &ExtractionError{Op: "crop", Err: fmt.Errorf("crop %+v outside image bounds %dx%d", rect, bounds.Dx(), bounds.Dy())}
	}

	cropped := imaging.Crop(src, image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height))
	if cropped.Bounds().Empty() {
		return nil, &ExtractionError{Op: "crop", Err: fmt.Errorf("empty crop result")}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, cropped, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, &ExtractionError{Op: "encode", Err: err}
	}
	if buf.Len() == 0 {
		return nil, &ExtractionError{Op: "encode", Err: fmt.Errorf("encoder produced no data")}
	}
	return buf.Bytes(), nil
}

// Bounds reads just enough of the stream to report the image dimensions.
func Bounds(r io.Reader) (int, int, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, &ExtractionError{Op: "decode", Err: err}
	}
	return cfg.Width, cfg.Height, nil
}
