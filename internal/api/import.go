package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/importer"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/parser"
)

// importOptions reads the multipart "file" field and optional "sheet"
func importOptions(c *gin.Context) (importer.ImportOptions, func(), error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return importer.ImportOptions{}, nil, fmt.Errorf("missing upload field \"file\": %w", err)
	}
	f, err := fh.Open()
	if err != nil {
		return importer.ImportOptions{}, nil, fmt.Errorf("open upload: %w", err)
	}
	opts := importer.ImportOptions{
		Name:   fh.Filename,
		Reader: f,
		Sheet:  c.PostForm("sheet"),
	}
	return opts, func() { f.Close() }, nil
}

// importStatus maps loader errors to an HTTP status
func importStatus(err error) int {
	switch {
	case errors.Is(err, parser.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, parser.ErrEmptyFile), errors.Is(err, parser.ErrNoHeader), errors.Is(err, parser.ErrSheetNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// Import loads a roster upload and replaces the current snapshot
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	opts, closeFile, err := importOptions(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "invalid upload", err)
		return
	}
	defer closeFile()

	report, err := h.importer.Import(opts)
	if err != nil {
		h.fail(c, importStatus(err), "import failed", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ImportStream same as Import, streaming progress as server-sent events
// POST /api/import/stream
func (h *Handler) ImportStream(c *gin.Context) {
	opts, closeFile, err := importOptions(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "invalid upload", err)
		return
	}
	defer closeFile()

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	for event := range h.importer.ImportAsync(opts) {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}
