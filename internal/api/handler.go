package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/engine"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/importer"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/store"
)

// Handler dashboard API handlers
type Handler struct {
	store    *store.MemoryStore
	engine   *engine.Engine
	importer *importer.Coordinator
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandler creates the API handler; a nil logger disables logging
func NewHandler(st *store.MemoryStore, eng *engine.Engine, imp *importer.Coordinator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:    st,
		engine:   eng,
		importer: imp,
		logger:   logger,
		now:      time.Now,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// status
	router.GET("/status", h.GetStatus)

	// roster import
	router.POST("/import", h.Import)
	router.POST("/import/stream", h.ImportStream)
	router.DELETE("/roster", h.ClearRoster)

	// aggregates
	router.GET("/dashboard", h.GetDashboard)
	router.GET("/series/monthly", h.GetMonthlySeries)
	router.GET("/headcount", h.GetHeadcount)
	router.GET("/headcount/stacked", h.GetStackedHeadcount)
	router.GET("/period", h.GetPeriod)
	router.GET("/cohort", h.GetCohort)

	// detail table and filters
	router.GET("/employees", h.ListEmployees)
	router.GET("/filters", h.GetFilterOptions)
	router.POST("/filters/toggle", h.ToggleFilter)
	router.GET("/month-range", h.GetMonthRange)

	// exports
	router.GET("/cohort/export", h.ExportCohort)
	router.GET("/employees/export", h.ExportEmployees)
}

// employees returns the current roster, writing a 404 when nothing is loaded
func (h *Handler) employees(c *gin.Context) ([]model.Employee, bool) {
	if !h.store.Loaded() {
		c.JSON(http.StatusNotFound, gin.H{"error": store.ErrNoData.Error()})
		return nil, false
	}
	return h.store.Employees(), true
}

// today current time in the dashboard time zone
func (h *Handler) today() time.Time {
	return h.now().In(h.engine.Options().Location)
}

func (h *Handler) fail(c *gin.Context, status int, msg string, err error) {
	if err != nil && !errors.Is(err, store.ErrNoData) {
		h.logger.Warn(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	}
	body := gin.H{"error": msg}
	if err != nil {
		body["detail"] = err.Error()
	}
	c.JSON(status, body)
}
