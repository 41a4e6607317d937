package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
)

// AssetHandler handles the inventory (patrimônio)
type AssetHandler struct {
	service *service.AssetService
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(s *service.AssetService) *AssetHandler {
	return &AssetHandler{service: s}
}

// Create handles POST /assets/items
// @Summary Register an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body service.CreateAssetRequest true "Asset data"
// @Success 201 {object} models.Asset
// @Failure 409 {object} ErrorResponse "Tag already in use"
// @Security BearerAuth
// @Router /v1/assets/items [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req service.CreateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.service.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// Get handles GET /assets/items/{id}
// @Summary Get an asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} models.Asset
// @Security BearerAuth
// @Router /v1/assets/items/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	asset, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// List handles GET /assets/items
// @Summary List assets
// @Tags assets
// @Produce json
// @Param unit_id query string false "Unit"
// @Param status query string false "active, maintenance or written_off"
// @Param category query string false "Category"
// @Param q query string false "Tag or description"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Asset]
// @Security BearerAuth
// @Router /v1/assets/items [get]
func (h *AssetHandler) List(c *gin.Context) {
	unitID, ok := queryUUID(c, "unit_id")
	if !ok {
		return
	}
	filter := repository.AssetFilter{
		UnitID:   unitID,
		Status:   models.AssetStatus(c.Query("status")),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	page, size := pageParams(c)
	assets, err := h.service.List(filter, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// Update handles PUT /assets/items/{id}
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body service.UpdateAssetRequest true "Asset data"
// @Success 200 {object} models.Asset
// @Failure 409 {object} ErrorResponse "Asset written off"
// @Security BearerAuth
// @Router /v1/assets/items/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.service.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /assets/items/{id}
// @Summary Delete an asset
// @Tags assets
// @Param id path string true "Asset ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/assets/items/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
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

// Transfer handles POST /assets/items/{id}/transfers
// @Summary Move an asset to another unit
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param transfer body service.TransferAssetRequest true "Destination"
// @Success 201 {object} models.AssetTransfer
// @Failure 409 {object} ErrorResponse "Asset written off"
// @Security BearerAuth
// @Router /v1/assets/items/{id}/transfers [post]
func (h *AssetHandler) Transfer(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.TransferAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	transfer, err := h.service.Transfer(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transfer)
}

// Transfers handles GET /assets/items/{id}/transfers
// @Summary Transfer history of an asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {array} models.AssetTransfer
// @Security BearerAuth
// @Router /v1/assets/items/{id}/transfers [get]
func (h *AssetHandler) Transfers(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	transfers, err := h.service.Transfers(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}

// WriteOff handles POST /assets/items/{id}/write-off
// @Summary Write an asset off
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param body body service.WriteOffRequest true "Reason"
// @Success 200 {object} models.Asset
// @Security BearerAuth
// @Router /v1/assets/items/{id}/write-off [post]
func (h *AssetHandler) WriteOff(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.WriteOffRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.service.WriteOff(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Summary handles GET /assets/summary
// @Summary Count and value by unit and category
// @Tags assets
// @Produce json
// @Success 200 {object} service.AssetSummary
// @Security BearerAuth
// @Router /v1/assets/summary [get]
func (h *AssetHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
