package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/engine"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// GetDashboard every aggregate plus the filtered detail list
// GET /api/dashboard?role=&location=&start=&end=&cutoff=&cohortRole=
func (h *Handler) GetDashboard(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	params := engine.Params{
		Criteria:   h.queryCriteria(c),
		Cutoff:     h.queryDate(c, "cutoff"),
		CohortRole: queryRole(c, "cohortRole"),
	}
	c.JSON(http.StatusOK, h.engine.Build(emps, params, h.today()))
}

// MonthlySeriesResponse monthly admissions/terminations and their balance
type MonthlySeriesResponse struct {
	Monthly []model.MonthlyBucket `json:"monthly"`
	Balance []model.BalancePoint  `json:"balance"`
}

// GetMonthlySeries GET /api/series/monthly
func (h *Handler) GetMonthlySeries(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	monthly := h.engine.MonthlySeries(emps)
	c.JSON(http.StatusOK, MonthlySeriesResponse{
		Monthly: monthly,
		Balance: h.engine.MonthlyBalance(monthly),
	})
}

// HeadcountResponse month axis and month-end headcount
type HeadcountResponse struct {
	Months    []string               `json:"months"`
	Headcount []model.HeadcountPoint `json:"headcount"`
}

// GetHeadcount GET /api/headcount
func (h *Handler) GetHeadcount(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	now := h.today()
	c.JSON(http.StatusOK, HeadcountResponse{
		Months:    h.engine.MonthAxis(emps, now),
		Headcount: h.engine.MonthlyHeadcount(emps, now),
	})
}

// GetStackedHeadcount GET /api/headcount/stacked?by=location|role
func (h *Handler) GetStackedHeadcount(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	dim := engine.ParseDimension(c.DefaultQuery("by", string(engine.ByLocation)))
	c.JSON(http.StatusOK, h.engine.StackedHeadcount(emps, h.today(), dim))
}

// PeriodResponse KPI cards of a selected period
type PeriodResponse struct {
	PeriodValid bool                `json:"periodValid"` // false: the UI asks for a range
	Start       string              `json:"start,omitempty"`
	End         string              `json:"end,omitempty"`
	Balance     model.PeriodBalance `json:"balance"`
	Turnover    model.Turnover      `json:"turnover"`
}

// GetPeriod GET /api/period?start=&end=
func (h *Handler) GetPeriod(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	r := h.queryRange(c)
	balance := h.engine.Balance(emps, r)
	headcount := h.engine.MonthlyHeadcount(emps, h.today())

	c.JSON(http.StatusOK, PeriodResponse{
		PeriodValid: r.Valid(),
		Start:       formatDay(r.Start),
		End:         formatDay(r.End),
		Balance:     balance,
		Turnover:    h.engine.Turnover(headcount, r, balance.Terminations),
	})
}

// GetCohort GET /api/cohort?cutoff=&role=
func (h *Handler) GetCohort(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.cohort(c, emps))
}

func (h *Handler) cohort(c *gin.Context, emps []model.Employee) model.Cohort {
	cutoff := h.queryDate(c, "cutoff")
	if cutoff.IsZero() {
		cutoff = h.today()
	}
	return h.engine.CohortRetention(emps, cutoff, engine.CohortOptions{Role: queryRole(c, "role")})
}

// EmployeesResponse filtered detail table
type EmployeesResponse struct {
	Total     int              `json:"total"`
	Employees []model.Employee `json:"employees"`
}

// ListEmployees GET /api/employees?role=&location=&start=&end=
func (h *Handler) ListEmployees(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	filtered := h.engine.Filter(emps, h.queryCriteria(c))
	c.JSON(http.StatusOK, EmployeesResponse{Total: len(filtered), Employees: filtered})
}

// GetFilterOptions GET /api/filters
func (h *Handler) GetFilterOptions(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.engine.FilterOptions(emps))
}

// ToggleRequest filter click: the value currently applied and the one clicked
type ToggleRequest struct {
	Current  string `json:"current"`
	Selected string `json:"selected"`
}

// ToggleFilter POST /api/filters/toggle
func (h *Handler) ToggleFilter(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": engine.Toggle(req.Current, req.Selected)})
}

// GetMonthRange first and last day of a YYYY-MM month
// GET /api/month-range?month=2024-03
func (h *Handler) GetMonthRange(c *gin.Context) {
	month := c.Query("month")
	r, ok := engine.MonthRange(month, h.engine.Options().Location)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month": month,
		"start": formatDay(r.Start),
		"end":   formatDay(r.End),
	})
}
