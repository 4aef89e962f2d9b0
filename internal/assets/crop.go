package assets

import (
	"fmt"
	"math"
)

// Rect is a crop region in source-pixel coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Fit controls how the source image is laid out inside the crop viewport
// before pan and zoom are applied.
type Fit string

const (
	FitContain Fit = "contain"
	FitCover   Fit = "cover"
	FitNone    Fit = "none"
)

func ParseFit(s string) (Fit, bool) {
	switch Fit(s) {
	case FitContain, FitCover, FitNone:
		return Fit(s), true
	}
	return "", false
}

const (
	MinZoom = 1.0
	MaxZoom = 3.0
)

// CropView tracks the interactive crop surface: pan offset, zoom factor and
// object-fit mode, plus the derived pixel rectangle. The rectangle is
// recomputed synchronously on every change and always stays inside the
// source bounds.
type CropView struct {
	srcW, srcH   int
	viewW, viewH int

	fit        Fit
	zoom       float64
	panX, panY float64

	rect   Rect
	loaded bool
}

// NewCropView returns a view in its initial state: no pan, zoom 1.0,
// contain fit. Every dialog open starts from here; nothing carries over
// between edits.
func NewCropView() *CropView {
	return &CropView{fit: FitContain, zoom: MinZoom}
}

// SetMedia records the source and viewport dimensions once the image has
// loaded, and computes the initial rectangle.
func (v *CropView) SetMedia(srcW, srcH, viewW, viewH int) error {
	if srcW <= 0 || srcH <= 0 {
		return fmt.Errorf("invalid source dimensions %dx%d", srcW, srcH)
	}
	if viewW <= 0 || viewH <= 0 {
		return fmt.Errorf("invalid viewport dimensions %dx%d", viewW, viewH)
	}
	v.srcW, v.srcH = srcW, srcH
	v.viewW, v.viewH = viewW, viewH
	v.loaded = true
	v.recompute()
	return nil
}

func (v *CropView) Loaded() bool { return v.loaded }

// SetZoom clamps the factor into [MinZoom, MaxZoom] and recomputes.
func (v *CropView) SetZoom(z float64) {
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	v.zoom = z
	v.recompute()
}

func (v *CropView) Zoom() float64 { return v.zoom }

// SetPan moves the image under the viewport. Pan is unconstrained; the
// derived rectangle clamps instead.
func (v *CropView) SetPan(x, y float64) {
	v.panX, v.panY = x, y
	v.recompute()
}

func (v *CropView) SetFit(f Fit) {
	v.fit = f
	v.recompute()
}

func (v *CropView) Fit() Fit { return v.fit }

// SetRect applies a direct region-handle resize. The rectangle is clamped
// into the source bounds; a later pan or zoom change recomputes it.
func (v *CropView) SetRect(r Rect) error {
	if !v.loaded {
		return fmt.Errorf("media not loaded")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid crop dimensions: width=%d, height=%d", r.Width, r.Height)
	}
	v.rect = clampRect(r, v.srcW, v.srcH)
	return nil
}

// Rect returns the last computed crop rectangle. The value returned just
// before save is the authoritative region to extract.
func (v *CropView) Rect() Rect { return v.rect }

func (v *CropView) baseScale() float64 {
	sw, sh := float64(v.srcW), float64(v.srcH)
	vw, vh := float64(v.viewW), float64(v.viewH)
	switch v.fit {
	case FitCover:
		return math.Max(vw/sw, vh/sh)
	case FitNone:
		return 1
	default: // contain
		return math.Min(vw/sw, vh/sh)
	}
}

// recompute maps the viewport back onto the source image: the image is
// centered, translated by the pan offset and scaled by fit*zoom; the crop
// rectangle is the visible source region, clamped into bounds.
func (v *CropView) recompute() {
	if !v.loaded {
		return
	}

	scale := v.baseScale() * v.zoom
	dw := float64(v.srcW) * scale
	dh := float64(v.srcH) * scale

	ix := (float64(v.viewW)-dw)/2 + v.panX
	iy := (float64(v.viewH)-dh)/2 + v.panY

	x0 := (0 - ix) / scale
	y0 := (0 - iy) / scale
	x1 := (float64(v.viewW) - ix) / scale
	y1 := (float64(v.viewH) - iy) / scale

	r := Rect{
		X:      int(math.Round(math.Max(0, x0))),
		Y:      int(math.Round(math.Max(0, y0))),
		Width:  int(math.Round(math.Min(float64(v.srcW), x1) - math.Max(0, x0))),
		Height: int(math.Round(math.Min(float64(v.srcH), y1) - math.Max(0, y0))),
	}
	v.rect = clampRect(r, v.srcW, v.srcH)
}

// clampRect forces r into [0,w]x[0,h] with at least one pixel on each axis.
func clampRect(r Rect, w, h int) Rect {
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.X > w-1 {
		r.X = w - 1
	}
	if r.Y > h-1 {
		r.Y = h - 1
	}
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	if r.X+r.Width > w {
		r.Width = w - r.X
	}
	if r.Y+r.Height > h {
		r.Height = h - r.Y
	}
	return r
}
