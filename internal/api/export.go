package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/export"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// ExportCohort cohort table as an attachment
// GET /api/cohort/export?format=csv|xlsx&cutoff=&role=
func (h *Handler) ExportCohort(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	cohort := h.cohort(c, emps)
	base := "coorte_" + strings.ReplaceAll(cohort.Cutoff, "-", "")

	switch format := strings.ToLower(c.DefaultQuery("format", "csv")); format {
	case "csv":
		attachment(c, base+".csv")
		c.Data(http.StatusOK, contentTypeCSV, export.CohortCSV(cohort))
	case "xlsx":
		f, err := export.CohortXLSX(cohort)
		if err != nil {
			h.fail(c, http.StatusInternalServerError, "export failed", err)
			return
		}
		h.sendWorkbook(c, f, base+".xlsx")
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q", format)})
	}
}

// ExportEmployees filtered detail table as xlsx
// GET /api/employees/export?role=&location=&start=&end=
func (h *Handler) ExportEmployees(c *gin.Context) {
	emps, ok := h.employees(c)
	if !ok {
		return
	}

	f, err := export.EmployeesXLSX(h.engine.Filter(emps, h.queryCriteria(c)))
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "export failed", err)
		return
	}
	h.sendWorkbook(c, f, "servidores.xlsx")
}

func (h *Handler) sendWorkbook(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "export failed", err)
		return
	}
	attachment(c, filename)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
}
