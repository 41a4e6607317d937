package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
)

// PayrollHandler handles payroll runs and entries
type PayrollHandler struct {
	service service.PayrollServiceInterface
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(s service.PayrollServiceInterface) *PayrollHandler {
	return &PayrollHandler{service: s}
}

// ReasonRequest carries the justification of a state change
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// CreateRun handles POST /payroll/runs
// @Summary Open a payroll run
// @Tags payroll
// @Accept json
// @Produce json
// @Param run body service.CreateRunRequest true "Period and kind"
// @Success 201 {object} models.PayrollRun
// @Failure 409 {object} ErrorResponse "Run already exists for the period"
// @Security BearerAuth
// @Router /v1/payroll/runs [post]
func (h *PayrollHandler) CreateRun(c *gin.Context) {
	var req service.CreateRunRequest
	if !bindJSON(c, &req) {
		return
	}
	run, err := h.service.CreateRun(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

// GetRun handles GET /payroll/runs/{id}
// @Summary Get a payroll run
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} models.PayrollRun
// @Security BearerAuth
// @Router /v1/payroll/runs/{id} [get]
func (h *PayrollHandler) GetRun(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	run, err := h.service.GetRun(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// ListRuns handles GET /payroll/runs
// @Summary List payroll runs
// @Tags payroll
// @Produce json
// @Param year query int false "Year"
// @Param status query string false "open, processing, closed or reopened"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.PayrollRun]
// @Security BearerAuth
// @Router /v1/payroll/runs [get]
func (h *PayrollHandler) ListRuns(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	page, size := pageParams(c)
	filter := repository.PayrollRunFilter{Year: year, Status: models.PayrollStatus(c.Query("status"))}
	runs, err := h.service.ListRuns(filter, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

// DeleteRun handles DELETE /payroll/runs/{id}
// @Summary Delete an open payroll run
// @Tags payroll
// @Param id path string true "Run ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Run is not open"
// @Security BearerAuth
// @Router /v1/payroll/runs/{id} [delete]
func (h *PayrollHandler) DeleteRun(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteRun(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Transition returns the handler moving a run to status. Routes are split
// per target status so each can carry its own permission.
// @Summary Change the status of a payroll run
// @Description processing: start processing; open: cancel processing; closed: close and freeze totals; reopened: reopen (reason required)
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Param body body ReasonRequest false "Reason (required to reopen)"
// @Success 200 {object} models.PayrollRun
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /v1/payroll/runs/{id}/process [post]
// @Router /v1/payroll/runs/{id}/cancel-processing [post]
// @Router /v1/payroll/runs/{id}/close [post]
// @Router /v1/payroll/runs/{id}/reopen [post]
func (h *PayrollHandler) Transition(status models.PayrollStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathUUID(c, "id")
		if !ok {
			return
		}
		var body ReasonRequest
		if c.Request.ContentLength > 0 && !bindJSON(c, &body) {
			return
		}
		run, err := h.service.Transition(c, id, &service.TransitionRequest{Status: string(status), Reason: body.Reason})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, run)
	}
}

// ListEntries handles GET /payroll/runs/{id}/entries
// @Summary List the entries of a run
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.PayrollEntry]
// @Security BearerAuth
// @Router /v1/payroll/runs/{id}/entries [get]
func (h *PayrollHandler) ListEntries(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)
	entries, err := h.service.ListEntries(id, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddEntry handles POST /payroll/runs/{id}/entries
// @Summary Add an entry to a run
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Param entry body service.EntryRequest true "Entry"
// @Success 201 {object} models.PayrollEntry
// @Failure 409 {object} ErrorResponse "Run not editable or employee already in the run"
// @Security BearerAuth
// @Router /v1/payroll/runs/{id}/entries [post]
func (h *PayrollHandler) AddEntry(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.EntryRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.service.AddEntry(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry handles PUT /payroll/entries/{id}
// @Summary Update an entry
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body service.UpdateEntryRequest true "Amounts"
// @Success 200 {object} models.PayrollEntry
// @Security BearerAuth
// @Router /v1/payroll/entries/{id} [put]
func (h *PayrollHandler) UpdateEntry(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.service.UpdateEntry(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /payroll/entries/{id}
// @Summary Delete an entry
// @Tags payroll
// @Param id path string true "Entry ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/payroll/entries/{id} [delete]
func (h *PayrollHandler) DeleteEntry(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteEntry(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary handles GET /payroll/runs/{id}/summary
// @Summary Totals of a run
// @Description Totals, deduction percentage and breakdown by unit
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} service.RunSummary
// @Security BearerAuth
// @Router /v1/payroll/runs/{id}/summary [get]
func (h *PayrollHandler) Summary(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	summary, err := h.service.Summary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// YearSummary handles GET /payroll/summary
// @Summary Monthly totals of closed runs
// @Tags payroll
// @Produce json
// @Param year query int false "Year (defaults to the current one)"
// @Success 200 {object} service.YearSummary
// @Security BearerAuth
// @Router /v1/payroll/summary [get]
func (h *PayrollHandler) YearSummary(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	summary, err := h.service.YearSummary(year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Import handles POST /payroll/runs/{id}/import
// @Summary Import entries from a spreadsheet
// @Description Columns Matrícula, Bruto, Descontos, Observação. Unknown registrations and employees already in the run are reported, not inserted.
// @Tags payroll
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Run ID"
// @Param file formData file true "XLSX file"
// @Success 200 {object} service.ImportResult
// @Security BearerAuth
// @Router /v1/payroll/runs/{id}/import [post]
func (h *PayrollHandler) Import(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	f, _, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.service.ImportEntries(c, id, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Export handles GET /payroll/runs/{id}/export
// @Summary Export a run
// @Tags payroll
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Run ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /v1/payroll/runs/{id}/export [get]
func (h *PayrollHandler) Export(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.service.ExportRun(&buf, id); err != nil {
		respondError(c, err)
		return
	}
	attachment(c, service.ContentTypes[service.FormatXLSX], fmt.Sprintf("folha-%s.xlsx", id))
	c.Data(http.StatusOK, service.ContentTypes[service.FormatXLSX], buf.Bytes())
}
