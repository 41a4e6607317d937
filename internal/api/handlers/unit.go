package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/service"
)

// UnitHandler handles HTTP requests for organizational units
type UnitHandler struct {
	service *service.UnitService
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(s *service.UnitService) *UnitHandler {
	return &UnitHandler{service: s}
}

// Create handles POST /hr/units
// @Summary Create a unit
// @Tags hr
// @Accept json
// @Produce json
// @Param unit body service.CreateUnitRequest true "Unit data"
// @Success 201 {object} models.Unit
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Security BearerAuth
// @Router /v1/hr/units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	var req service.CreateUnitRequest
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.service.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// Get handles GET /hr/units/{id}
// @Summary Get a unit
// @Tags hr
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} models.Unit
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/hr/units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	unit, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// List handles GET /hr/units
// @Summary List units
// @Tags hr
// @Produce json
// @Success 200 {array} models.Unit
// @Security BearerAuth
// @Router /v1/hr/units [get]
func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// Tree handles GET /hr/units/tree
// @Summary Unit hierarchy
// @Description All units nested under their parents; roots sorted by code
// @Tags hr
// @Produce json
// @Success 200 {array} service.UnitNode
// @Security BearerAuth
// @Router /v1/hr/units/tree [get]
func (h *UnitHandler) Tree(c *gin.Context) {
	tree, err := h.service.Tree()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

// Update handles PUT /hr/units/{id}
// @Summary Update a unit
// @Description Moving a unit under itself or one of its descendants is rejected
// @Tags hr
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param unit body service.UpdateUnitRequest true "Unit data"
// @Success 200 {object} models.Unit
// @Failure 409 {object} ErrorResponse "Cycle in the hierarchy"
// @Security BearerAuth
// @Router /v1/hr/units/{id} [put]
func (h *UnitHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateUnitRequest
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.service.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// Delete handles DELETE /hr/units/{id}
// @Summary Delete a unit
// @Tags hr
// @Param id path string true "Unit ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Unit has children or active assignments"
// @Security BearerAuth
// @Router /v1/hr/units/{id} [delete]
func (h *UnitHandler) Delete(c *gin.Context) {
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
