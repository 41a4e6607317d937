package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/service"
)

// TransparencyHandler serves the public transparency portal
type TransparencyHandler struct {
	service service.TransparencyServiceInterface
}

// NewTransparencyHandler creates a new transparency handler
func NewTransparencyHandler(s service.TransparencyServiceInterface) *TransparencyHandler {
	return &TransparencyHandler{service: s}
}

// Payroll handles GET /api/public/transparency/payroll
// @Summary Payroll totals per month
// @Description Totals of closed runs only; no individual data is published
// @Tags transparency
// @Produce json
// @Param year query int false "Year (defaults to the current one)"
// @Success 200 {object} service.YearSummary
// @Router /public/transparency/payroll [get]
func (h *TransparencyHandler) Payroll(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	summary, err := h.service.Payroll(year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Procurement handles GET /api/public/transparency/procurement
// @Summary Procurement cases
// @Description Draft cases are never listed
// @Tags transparency
// @Produce json
// @Param year query int false "Year"
// @Param status query string false "in_progress, completed or cancelled"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[service.PublicProcurement]
// @Router /public/transparency/procurement [get]
func (h *TransparencyHandler) Procurement(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	page, size := pageParams(c)
	cases, err := h.service.Procurement(year, c.Query("status"), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cases)
}

// Portarias handles GET /api/public/transparency/portarias
// @Summary Published and revoked portarias
// @Tags transparency
// @Produce json
// @Param year query int false "Year"
// @Param q query string false "Text in the subject"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[service.PublicPortaria]
// @Router /public/transparency/portarias [get]
func (h *TransparencyHandler) Portarias(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	page, size := pageParams(c)
	portarias, err := h.service.Portarias(year, c.Query("q"), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portarias)
}

// Export handles GET /api/public/transparency/{dataset}/export
// @Summary Download a transparency table
// @Tags transparency
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param dataset path string true "payroll, procurement or portarias"
// @Param year query int false "Year (defaults to the current one)"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Unknown dataset or format"
// @Router /public/transparency/{dataset}/export [get]
func (h *TransparencyHandler) Export(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	dataset := c.Param("dataset")
	format := c.DefaultQuery("format", service.FormatCSV)

	var buf bytes.Buffer
	if err := h.service.Export(&buf, dataset, year, format); err != nil {
		respondError(c, err)
		return
	}
	contentType := service.ContentTypes[format]
	attachment(c, contentType, fmt.Sprintf("transparencia-%s-%d.%s", dataset, year, format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
