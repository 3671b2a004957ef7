package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	logger, err := New(config.LogConfig{Level: "warn", Format: "console"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}

	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatalf("unknown level should fail")
	}
}

func TestGinMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(GinLogger(logger), GinRecovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?role=EFETIVO", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/ok status: %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("/boom status: %d", w.Code)
	}

	if n := logs.FilterMessage("panic recovered").Len(); n != 1 {
		t.Fatalf("want 1 panic log got %d", n)
	}
	requests := logs.FilterMessage("request").All()
	if len(requests) != 2 {
		t.Fatalf("want 2 request logs got %d", len(requests))
	}
	if requests[0].ContextMap()["query"] != "role=EFETIVO" {
		t.Fatalf("query field: %v", requests[0].ContextMap())
	}
	if requests[1].Level != zapcore.ErrorLevel {
		t.Fatalf("panic request should log at error, got %s", requests[1].Level)
	}
}
