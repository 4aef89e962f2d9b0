package imagesapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"portfolio-app/internal/assets"
	"portfolio-app/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	manager    *assets.Manager
	classifier media.Classifier
)

// Setup wires the image pipeline against the configured object store.
// Called once from main before routes are registered.
func Setup(store assets.ObjectStore, classify media.Classifier) {
	classifier = classify
	manager = &assets.Manager{
		Store:    store,
		Records:  gormRecordStore{},
		Sessions: contextSessionProvider{},
		Classify: classify,
	}
}

// RemoveManagedBlob deletes the storage object behind a reference when, and
// only when, the reference is managed. Used by row-delete handlers to
// cascade the blob removal.
func RemoveManagedBlob(c *gin.Context, raw string) error {
	ref := classifier.Classify(raw)
	if ref.Kind != media.KindManaged {
		return nil
	}
	return manager.Store.Remove(c.Request.Context(), classifier.ObjectKey(ref))
}

func mustOwner(c *gin.Context) (string, media.OwnerKind, bool) {
	kind, ok := media.ParseOwnerKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown owner kind"})
		return "", "", false
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner id"})
		return "", "", false
	}
	return id, kind, true
}

func writePipelineError(c *gin.Context, err error) {
	var extractErr *assets.ExtractionError
	switch {
	case errors.Is(err, assets.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, assets.ErrNotEditable):
		c.JSON(http.StatusForbidden, gin.H{"error": "Bundled local images cannot be edited"})
	case errors.As(err, &extractErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to crop image", "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ------------------------------
// GET /images/:kind/:id (admin) -> current reference, classified
// ------------------------------
func GetImage(c *gin.Context) {
	id, kind, ok := mustOwner(c)
	if !ok {
		return
	}

	raw, err := manager.Records.ImageRef(c.Request.Context(), kind, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	ref := classifier.Classify(raw)
	c.JSON(http.StatusOK, gin.H{
		"ref":      ref.Value,
		"kind":     ref.Kind,
		"editable": ref.Editable(),
	})
}

// ------------------------------
// POST /images/:kind/:id (admin, multipart "file") -> direct upload
// ------------------------------
func UploadImage(c *gin.Context) {
	id, kind, ok := mustOwner(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error opening the file"})
		return
	}
	defer src.Close()

	ext := strings.TrimPrefix(filepath.Ext(file.Filename), ".")
	url, err := manager.Upload(requestContext(c), id, kind, ext, src)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ref": url})
}

// ------------------------------
// POST /images/:kind/:id/crop (admin, multipart "source" + crop fields)
// ------------------------------
//
// Runs the full editing workflow server-side: open, load, adjust, save.
// The crop region comes either as an explicit rectangle (x, y, width,
// height) or as view parameters (zoom, pan_x, pan_y, fit, viewport_width,
// viewport_height) from which the rectangle is derived.
func CropImage(c *gin.Context) {
	id, kind, ok := mustOwner(c)
	if !ok {
		return
	}

	file, err := c.FormFile("source")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No source image provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error opening the file"})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading the file"})
		return
	}

	srcW, srcH, err := assets.Bounds(bytes.NewReader(data))
	if err != nil {
		writePipelineError(c, err)
		return
	}

	raw, err := manager.Records.ImageRef(c.Request.Context(), kind, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	dialog := assets.NewDialog(manager, logNotifier{})
	if err := dialog.Open(id, kind, raw); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	viewW := formInt(c, "viewport_width", srcW)
	viewH := formInt(c, "viewport_height", srcH)
	if err := dialog.MediaLoaded(srcW, srcH, viewW, viewH); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := dialog.View()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if fit, ok := parseFitParam(c); ok {
		view.SetFit(fit)
	}
	if z, ok := formFloat(c, "zoom"); ok {
		view.SetZoom(z)
	}
	panX, okX := formFloat(c, "pan_x")
	panY, okY := formFloat(c, "pan_y")
	if okX || okY {
		view.SetPan(panX, panY)
	}

	if rect, ok := rectParams(c); ok {
		if err := view.SetRect(rect); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	url, err := dialog.Save(requestContext(c), bytes.NewReader(data))
	if err != nil {
		writePipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ref": url, "rect": view.Rect()})
}

// ------------------------------
// DELETE /images/:kind/:id (admin)
// ------------------------------
func DeleteImage(c *gin.Context) {
	id, kind, ok := mustOwner(c)
	if !ok {
		return
	}

	if err := manager.Delete(requestContext(c), id, kind); err != nil {
		writePipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// PUT /images/:kind/:id/url (admin) -> external URL reference
// ------------------------------
func SetImageURL(c *gin.Context) {
	id, kind, ok := mustOwner(c)
	if !ok {
		return
	}

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := manager.SetExternalURL(requestContext(c), id, kind, req.URL); err != nil {
		writePipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ref": req.URL})
}

// ------------------------------
// PUT /images/:kind/:id/local (admin) -> bundled asset reference
// ------------------------------
func SetImageLocal(c *gin.Context) {
	id, kind, ok := mustOwner(c)
	if !ok {
		return
	}

	var req struct {
		FileName string `json:"file_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref, err := manager.SetLocalPath(requestContext(c), id, kind, req.FileName)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ref": ref})
}

// ---------- form helpers

func parseFitParam(c *gin.Context) (assets.Fit, bool) {
	s := c.PostForm("fit")
	if s == "" {
		return "", false
	}
	return assets.ParseFit(s)
}

func formInt(c *gin.Context, name string, fallback int) int {
	s := c.PostForm(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func formFloat(c *gin.Context, name string) (float64, bool) {
	s := c.PostForm(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func rectParams(c *gin.Context) (assets.Rect, bool) {
	xs, ys := c.PostForm("x"), c.PostForm("y")
	ws, hs := c.PostForm("width"), c.PostForm("height")
	if xs == "" || ys == "" || ws == "" || hs == "" {
		return assets.Rect{}, false
	}
	x, err1 := strconv.Atoi(xs)
	y, err2 := strconv.Atoi(ys)
	w, err3 := strconv.Atoi(ws)
	h, err4 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return assets.Rect{}, false
	}
	return assets.Rect{X: x, Y: y, Width: w, Height: h}, true
}
