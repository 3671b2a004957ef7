package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/store"
)

// StatusResponse roster status
type StatusResponse struct {
	Loaded     bool   `json:"loaded"`               // a roster is in memory
	SnapshotID string `json:"snapshotId,omitempty"` // id of the current snapshot
	SourceName string `json:"sourceName,omitempty"` // uploaded file name
	Format     string `json:"format,omitempty"`     // csv or xlsx
	Rows       int    `json:"rows"`                 // data rows read
	Employees  int    `json:"employees"`            // normalised records
	Warnings   int    `json:"warnings"`             // loader warnings
	LoadedAt   string `json:"loadedAt,omitempty"`   // RFC 3339
}

// GetStatus reports what is loaded
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Loaded: false})
		return
	}
	c.JSON(http.StatusOK, statusOf(snap))
}

func statusOf(snap *store.Snapshot) StatusResponse {
	return StatusResponse{
		Loaded:     true,
		SnapshotID: snap.ID,
		SourceName: snap.SourceName,
		Format:     string(snap.Format),
		Rows:       snap.Rows,
		Employees:  len(snap.Employees),
		Warnings:   len(snap.Warnings),
		LoadedAt:   snap.LoadedAt.Format(time.RFC3339),
	}
}

// ClearRoster drops the loaded roster
// DELETE /api/roster
func (h *Handler) ClearRoster(c *gin.Context) {
	h.store.Clear()
	c.JSON(http.StatusOK, StatusResponse{Loaded: false})
}
