package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/service"
)

// PositionHandler handles HTTP requests for positions (cargos)
type PositionHandler struct {
	service *service.PositionService
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(s *service.PositionService) *PositionHandler {
	return &PositionHandler{service: s}
}

// Create handles POST /hr/positions
// @Summary Create a position
// @Tags hr
// @Accept json
// @Produce json
// @Param position body service.PositionRequest true "Position data"
// @Success 201 {object} models.Position
// @Security BearerAuth
// @Router /v1/hr/positions [post]
func (h *PositionHandler) Create(c *gin.Context) {
	var req service.PositionRequest
	if !bindJSON(c, &req) {
		return
	}
	position, err := h.service.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, position)
}

// Get handles GET /hr/positions/{id}
// @Summary Get a position
// @Tags hr
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} models.Position
// @Security BearerAuth
// @Router /v1/hr/positions/{id} [get]
func (h *PositionHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	position, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// List handles GET /hr/positions
// @Summary List positions
// @Tags hr
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Position]
// @Security BearerAuth
// @Router /v1/hr/positions [get]
func (h *PositionHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	positions, err := h.service.List(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

// Update handles PUT /hr/positions/{id}
// @Summary Update a position
// @Tags hr
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param position body service.PositionRequest true "Position data"
// @Success 200 {object} models.Position
// @Security BearerAuth
// @Router /v1/hr/positions/{id} [put]
func (h *PositionHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.PositionRequest
	if !bindJSON(c, &req) {
		return
	}
	position, err := h.service.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// Delete handles DELETE /hr/positions/{id}
// @Summary Delete a position
// @Tags hr
// @Param id path string true "Position ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Position in use"
// @Security BearerAuth
// @Router /v1/hr/positions/{id} [delete]
func (h *PositionHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
