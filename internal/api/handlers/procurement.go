package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
)

// ProcurementHandler handles procurement cases and their checklists
type ProcurementHandler struct {
	service service.ProcurementServiceInterface
}

// NewProcurementHandler creates a new procurement handler
func NewProcurementHandler(s service.ProcurementServiceInterface) *ProcurementHandler {
	return &ProcurementHandler{service: s}
}

// Create handles POST /procurement/cases
// @Summary Create a procurement case
// @Description The checklist is seeded from the modality template
// @Tags procurement
// @Accept json
// @Produce json
// @Param case body service.CreateCaseRequest true "Case data"
// @Success 201 {object} service.CaseDetail
// @Failure 409 {object} ErrorResponse "Process number in use"
// @Security BearerAuth
// @Router /v1/procurement/cases [post]
func (h *ProcurementHandler) Create(c *gin.Context) {
	var req service.CreateCaseRequest
	if !bindJSON(c, &req) {
		return
	}
	detail, err := h.service.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// Get handles GET /procurement/cases/{id}
// @Summary Get a procurement case with checklist and progress
// @Tags procurement
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} service.CaseDetail
// @Security BearerAuth
// @Router /v1/procurement/cases/{id} [get]
func (h *ProcurementHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	detail, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// List handles GET /procurement/cases
// @Summary List procurement cases
// @Tags procurement
// @Produce json
// @Param status query string false "draft, in_progress, completed or cancelled"
// @Param modality query string false "Modality"
// @Param year query int false "Year of the process number"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.ProcurementCase]
// @Security BearerAuth
// @Router /v1/procurement/cases [get]
func (h *ProcurementHandler) List(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	filter := repository.ProcurementFilter{
		Status:   models.ProcurementStatus(c.Query("status")),
		Modality: models.Modality(c.Query("modality")),
		Year:     year,
	}
	page, size := pageParams(c)
	cases, err := h.service.List(filter, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cases)
}

// Update handles PUT /procurement/cases/{id}
// @Summary Update a procurement case
// @Tags procurement
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param case body service.UpdateCaseRequest true "Case data"
// @Success 200 {object} service.CaseDetail
// @Security BearerAuth
// @Router /v1/procurement/cases/{id} [put]
func (h *ProcurementHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateCaseRequest
	if !bindJSON(c, &req) {
		return
	}
	detail, err := h.service.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Delete handles DELETE /procurement/cases/{id}
// @Summary Delete a draft case
// @Tags procurement
// @Param id path string true "Case ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Case is not a draft"
// @Security BearerAuth
// @Router /v1/procurement/cases/{id} [delete]
func (h *ProcurementHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Start handles POST /procurement/cases/{id}/start
// @Summary Start a draft case
// @Tags procurement
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} service.CaseDetail
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /v1/procurement/cases/{id}/start [post]
func (h *ProcurementHandler) Start(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	detail, err := h.service.Start(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ToggleItem handles PUT /procurement/checklist-items/{id}
// @Summary Mark a checklist item done or pending
// @Tags procurement
// @Accept json
// @Produce json
// @Param id path string true "Checklist item ID"
// @Param item body service.ToggleItemRequest true "Done flag"
// @Success 200 {object} models.ChecklistItem
// @Failure 409 {object} ErrorResponse "Case not in progress"
// @Security BearerAuth
// @Router /v1/procurement/checklist-items/{id} [put]
func (h *ProcurementHandler) ToggleItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.ToggleItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.ToggleItem(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Complete handles POST /procurement/cases/{id}/complete
// @Summary Complete a case
// @Description Allowed only when every required checklist item is done
// @Tags procurement
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body service.CompleteCaseRequest false "Awarded value"
// @Success 200 {object} service.CaseDetail
// @Failure 409 {object} ErrorResponse "Checklist incomplete"
// @Security BearerAuth
// @Router /v1/procurement/cases/{id}/complete [post]
func (h *ProcurementHandler) Complete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.CompleteCaseRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	detail, err := h.service.Complete(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Cancel handles POST /procurement/cases/{id}/cancel
// @Summary Cancel a case
// @Tags procurement
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body service.CancelCaseRequest true "Reason"
// @Success 200 {object} service.CaseDetail
// @Security BearerAuth
// @Router /v1/procurement/cases/{id}/cancel [post]
func (h *ProcurementHandler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.CancelCaseRequest
	if !bindJSON(c, &req) {
		return
	}
	detail, err := h.service.Cancel(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
