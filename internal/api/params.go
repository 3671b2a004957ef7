package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/engine"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/roster"
)

// queryDate parses a date query parameter; anything unparsable is the zero time
func (h *Handler) queryDate(c *gin.Context, key string) time.Time {
	t := roster.ParseDate(c.Query(key), h.engine.Options().Location)
	if t == nil {
		return time.Time{}
	}
	return *t
}

// queryRange start/end parameters; a missing endpoint leaves the range invalid
func (h *Handler) queryRange(c *gin.Context) model.DateRange {
	return model.DateRange{
		Start: h.queryDate(c, "start"),
		End:   h.queryDate(c, "end"),
	}
}

// queryCriteria role, location, start, end
func (h *Handler) queryCriteria(c *gin.Context) engine.Criteria {
	return engine.Criteria{
		Role:     strings.TrimSpace(c.Query("role")),
		Location: strings.TrimSpace(c.Query("location")),
		Range:    h.queryRange(c),
	}
}

// queryRole parses a role parameter; empty or unrecognised values disable the filter
func queryRole(c *gin.Context, key string) model.Role {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return ""
	}
	if r := model.ParseRole(raw); r != model.RoleOutros {
		return r
	}
	return ""
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}
