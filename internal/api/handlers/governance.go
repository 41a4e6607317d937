package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
)

// GovernanceHandler handles meetings and portarias
type GovernanceHandler struct {
	portarias *service.PortariaService
	meetings  *service.MeetingService
}

// NewGovernanceHandler creates a new governance handler
func NewGovernanceHandler(portarias *service.PortariaService, meetings *service.MeetingService) *GovernanceHandler {
	return &GovernanceHandler{portarias: portarias, meetings: meetings}
}

// CreatePortaria handles POST /governance/portarias
// @Summary Create a draft portaria
// @Description Without number the next free number of the year is taken
// @Tags governance
// @Accept json
// @Produce json
// @Param portaria body service.CreatePortariaRequest true "Portaria data"
// @Success 201 {object} models.Portaria
// @Failure 409 {object} ErrorResponse "Number already used in the year"
// @Security BearerAuth
// @Router /v1/governance/portarias [post]
func (h *GovernanceHandler) CreatePortaria(c *gin.Context) {
	var req service.CreatePortariaRequest
	if !bindJSON(c, &req) {
		return
	}
	portaria, err := h.portarias.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, portaria)
}

// GetPortaria handles GET /governance/portarias/{id}
// @Summary Get a portaria
// @Tags governance
// @Produce json
// @Param id path string true "Portaria ID"
// @Success 200 {object} models.Portaria
// @Security BearerAuth
// @Router /v1/governance/portarias/{id} [get]
func (h *GovernanceHandler) GetPortaria(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	portaria, err := h.portarias.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portaria)
}

// ListPortarias handles GET /governance/portarias
// @Summary List portarias
// @Tags governance
// @Produce json
// @Param year query int false "Year"
// @Param status query string false "draft, published or revoked"
// @Param q query string false "Text in the subject"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Portaria]
// @Security BearerAuth
// @Router /v1/governance/portarias [get]
func (h *GovernanceHandler) ListPortarias(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	filter := repository.PortariaFilter{Year: year, Query: c.Query("q")}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []models.PortariaStatus{models.PortariaStatus(status)}
	}
	page, size := pageParams(c)
	portarias, err := h.portarias.List(filter, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portarias)
}

// UpdatePortaria handles PUT /governance/portarias/{id}
// @Summary Update a draft portaria
// @Tags governance
// @Accept json
// @Produce json
// @Param id path string true "Portaria ID"
// @Param portaria body service.UpdatePortariaRequest true "Portaria data"
// @Success 200 {object} models.Portaria
// @Failure 409 {object} ErrorResponse "Only drafts can be edited"
// @Security BearerAuth
// @Router /v1/governance/portarias/{id} [put]
func (h *GovernanceHandler) UpdatePortaria(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdatePortariaRequest
	if !bindJSON(c, &req) {
		return
	}
	portaria, err := h.portarias.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portaria)
}

// DeletePortaria handles DELETE /governance/portarias/{id}
// @Summary Delete a draft portaria
// @Tags governance
// @Param id path string true "Portaria ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/governance/portarias/{id} [delete]
func (h *GovernanceHandler) DeletePortaria(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.portarias.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PublishPortaria handles POST /governance/portarias/{id}/publish
// @Summary Publish a portaria
// @Tags governance
// @Produce json
// @Param id path string true "Portaria ID"
// @Success 200 {object} models.Portaria
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /v1/governance/portarias/{id}/publish [post]
func (h *GovernanceHandler) PublishPortaria(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	portaria, err := h.portarias.Publish(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portaria)
}

// RevokePortaria handles POST /governance/portarias/{id}/revoke
// @Summary Revoke a published portaria
// @Tags governance
// @Accept json
// @Produce json
// @Param id path string true "Portaria ID"
// @Param body body service.RevokePortariaRequest true "Reason"
// @Success 200 {object} models.Portaria
// @Security BearerAuth
// @Router /v1/governance/portarias/{id}/revoke [post]
func (h *GovernanceHandler) RevokePortaria(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.RevokePortariaRequest
	if !bindJSON(c, &req) {
		return
	}
	portaria, err := h.portarias.Revoke(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portaria)
}

// AttachDocument handles POST /governance/portarias/{id}/document
// @Summary Attach the signed PDF of a portaria
// @Tags governance
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Portaria ID"
// @Param file formData file true "PDF document"
// @Success 200 {object} models.Portaria
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 415 {object} ErrorResponse "Not a PDF"
// @Security BearerAuth
// @Router /v1/governance/portarias/{id}/document [post]
func (h *GovernanceHandler) AttachDocument(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	f, name, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	portaria, err := h.portarias.AttachDocument(c, id, name, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portaria)
}

// PublicDocument handles GET /api/public/portarias/{id}/document
// @Summary Download the document of a published portaria
// @Tags public
// @Produce application/pdf
// @Param id path string true "Portaria ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "No public document"
// @Router /public/portarias/{id}/document [get]
func (h *GovernanceHandler) PublicDocument(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	f, portaria, err := h.portarias.OpenPublicDocument(id)
	if err != nil {
		respondError(c, err)
		return
	}
	serveFile(c, f, fmt.Sprintf("portaria-%d-%d.pdf", portaria.Number, portaria.Year), false)
}

// CreateMeeting handles POST /governance/meetings
// @Summary Schedule a meeting
// @Tags governance
// @Accept json
// @Produce json
// @Param meeting body service.MeetingRequest true "Meeting data"
// @Success 201 {object} models.Meeting
// @Security BearerAuth
// @Router /v1/governance/meetings [post]
func (h *GovernanceHandler) CreateMeeting(c *gin.Context) {
	var req service.MeetingRequest
	if !bindJSON(c, &req) {
		return
	}
	meeting, err := h.meetings.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

// GetMeeting handles GET /governance/meetings/{id}
// @Summary Get a meeting
// @Tags governance
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} models.Meeting
// @Security BearerAuth
// @Router /v1/governance/meetings/{id} [get]
func (h *GovernanceHandler) GetMeeting(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	meeting, err := h.meetings.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// ListMeetings handles GET /governance/meetings
// @Summary List meetings
// @Tags governance
// @Produce json
// @Param upcoming query bool false "true: from now on; false: past meetings; omitted: all"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Meeting]
// @Security BearerAuth
// @Router /v1/governance/meetings [get]
func (h *GovernanceHandler) ListMeetings(c *gin.Context) {
	upcoming, ok := queryBool(c, "upcoming")
	if !ok {
		return
	}
	page, size := pageParams(c)
	meetings, err := h.meetings.List(upcoming, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// UpdateMeeting handles PUT /governance/meetings/{id}
// @Summary Update a meeting
// @Tags governance
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param meeting body service.MeetingRequest true "Meeting data"
// @Success 200 {object} models.Meeting
// @Security BearerAuth
// @Router /v1/governance/meetings/{id} [put]
func (h *GovernanceHandler) UpdateMeeting(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.MeetingRequest
	if !bindJSON(c, &req) {
		return
	}
	meeting, err := h.meetings.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// DeleteMeeting handles DELETE /governance/meetings/{id}
// @Summary Delete a meeting
// @Tags governance
// @Param id path string true "Meeting ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/governance/meetings/{id} [delete]
func (h *GovernanceHandler) DeleteMeeting(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.meetings.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadMinutes handles POST /governance/meetings/{id}/minutes
// @Summary Upload the minutes (ata) of a meeting
// @Tags governance
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Meeting ID"
// @Param file formData file true "PDF document"
// @Success 200 {object} models.Meeting
// @Security BearerAuth
// @Router /v1/governance/meetings/{id}/minutes [post]
func (h *GovernanceHandler) UploadMinutes(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	f, name, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	meeting, err := h.meetings.UploadMinutes(c, id, name, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meeting)
}
