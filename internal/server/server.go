package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/api"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/config"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/engine"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/importer"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/logging"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/roster"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/store"
)

// Server HTTP server
type Server struct {
	router   *gin.Engine
	http     *http.Server
	store    *store.MemoryStore
	importer *importer.Coordinator
	api      *api.Handler
	logger   *zap.Logger
}

// NewServer wires store, engine, importer and API from cfg
func NewServer(cfg *config.AppConfig, logger *zap.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	loc := cfg.TimeLocation()
	st := store.NewMemoryStore()
	eng := engine.New(engine.Options{
		TopN:             cfg.Dashboard.TopN,
		OtherLocationKey: cfg.Dashboard.OtherLocationKey,
		OtherRoleKey:     cfg.Dashboard.OtherRoleKey,
		Location:         loc,
	})
	imp := importer.NewCoordinator(st, roster.NewNormalizer(loc), logger)

	router := gin.New()
	router.Use(logging.GinRecovery(logger), logging.GinLogger(logger))

	s := &Server{
		router:   router,
		store:    st,
		importer: imp,
		api:      api.NewHandler(st, eng, imp, logger),
		logger:   logger,
	}
	s.setupRoutes(cfg.Server.DevMode)
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// setupRoutes registers middleware and routes
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}

	if devMode {
		// frontend dev server
		s.router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
				return
			}
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}

// Handler exposes the router (tests)
func (s *Server) Handler() http.Handler {
	return s.router
}

// Importer exposes the import coordinator, e.g. for the startup roster
func (s *Server) Importer() *importer.Coordinator {
	return s.importer
}

// GetStore roster store (tests)
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}

// Addr listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run serves until Shutdown; http.ErrServerClosed is not reported
func (s *Server) Run() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
