package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
)

// CredentialingHandler handles federations, schools, the public
// pre-cadastro and school manager credentials
type CredentialingHandler struct {
	federations *service.FederationService
	schools     service.SchoolServiceInterface
	regs        service.PreRegistrationServiceInterface
	managers    *service.SchoolManagerService
}

// NewCredentialingHandler creates a new credentialing handler
func NewCredentialingHandler(
	federations *service.FederationService,
	schools service.SchoolServiceInterface,
	regs service.PreRegistrationServiceInterface,
	managers *service.SchoolManagerService,
) *CredentialingHandler {
	return &CredentialingHandler{federations: federations, schools: schools, regs: regs, managers: managers}
}

// CreateFederation handles POST /credentialing/federations
// @Summary Create a federation
// @Tags credentialing
// @Accept json
// @Produce json
// @Param federation body service.FederationRequest true "Federation data"
// @Success 201 {object} models.Federation
// @Failure 409 {object} ErrorResponse "Acronym already in use"
// @Security BearerAuth
// @Router /v1/credentialing/federations [post]
func (h *CredentialingHandler) CreateFederation(c *gin.Context) {
	var req service.FederationRequest
	if !bindJSON(c, &req) {
		return
	}
	fed, err := h.federations.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fed)
}

// GetFederation handles GET /credentialing/federations/{id}
// @Summary Get a federation
// @Tags credentialing
// @Produce json
// @Param id path string true "Federation ID"
// @Success 200 {object} models.Federation
// @Security BearerAuth
// @Router /v1/credentialing/federations/{id} [get]
func (h *CredentialingHandler) GetFederation(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	fed, err := h.federations.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fed)
}

// ListFederations handles GET /credentialing/federations and the public list
// @Summary List federations
// @Tags credentialing
// @Produce json
// @Success 200 {array} models.Federation
// @Router /public/federations [get]
// @Router /v1/credentialing/federations [get]
func (h *CredentialingHandler) ListFederations(c *gin.Context) {
	feds, err := h.federations.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feds)
}

// UpdateFederation handles PUT /credentialing/federations/{id}
// @Summary Update a federation
// @Tags credentialing
// @Accept json
// @Produce json
// @Param id path string true "Federation ID"
// @Param federation body service.FederationRequest true "Federation data"
// @Success 200 {object} models.Federation
// @Security BearerAuth
// @Router /v1/credentialing/federations/{id} [put]
func (h *CredentialingHandler) UpdateFederation(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.FederationRequest
	if !bindJSON(c, &req) {
		return
	}
	fed, err := h.federations.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fed)
}

// DeleteFederation handles DELETE /credentialing/federations/{id}
// @Summary Delete a federation
// @Description Fails with 409 while schools reference it
// @Tags credentialing
// @Param id path string true "Federation ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/credentialing/federations/{id} [delete]
func (h *CredentialingHandler) DeleteFederation(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.federations.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateSchool handles POST /credentialing/schools
// @Summary Create a school
// @Tags credentialing
// @Accept json
// @Produce json
// @Param school body service.SchoolRequest true "School data"
// @Success 201 {object} models.School
// @Failure 409 {object} ErrorResponse "INEP code already registered"
// @Security BearerAuth
// @Router /v1/credentialing/schools [post]
func (h *CredentialingHandler) CreateSchool(c *gin.Context) {
	var req service.SchoolRequest
	if !bindJSON(c, &req) {
		return
	}
	school, err := h.schools.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, school)
}

// GetSchool handles GET /credentialing/schools/{id}
// @Summary Get a school
// @Tags credentialing
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} models.School
// @Security BearerAuth
// @Router /v1/credentialing/schools/{id} [get]
func (h *CredentialingHandler) GetSchool(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	school, err := h.schools.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// GetSchoolByINEP handles GET /credentialing/schools/by-inep/{inep}
// @Summary Find a school by INEP code
// @Tags credentialing
// @Produce json
// @Param inep path string true "8 digit INEP code"
// @Success 200 {object} models.School
// @Security BearerAuth
// @Router /v1/credentialing/schools/by-inep/{inep} [get]
func (h *CredentialingHandler) GetSchoolByINEP(c *gin.Context) {
	school, err := h.schools.GetByINEP(c.Param("inep"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// ListSchools handles GET /credentialing/schools
// @Summary List schools
// @Tags credentialing
// @Produce json
// @Param q query string false "Name, city or INEP"
// @Param state query string false "UF"
// @Param federation_id query string false "Federation"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.School]
// @Security BearerAuth
// @Router /v1/credentialing/schools [get]
func (h *CredentialingHandler) ListSchools(c *gin.Context) {
	fedID, ok := queryUUID(c, "federation_id")
	if !ok {
		return
	}
	page, size := pageParams(c)
	schools, err := h.schools.List(repository.SchoolFilter{
		Query:        c.Query("q"),
		State:        c.Query("state"),
		FederationID: fedID,
	}, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schools)
}

// UpdateSchool handles PUT /credentialing/schools/{id}
// @Summary Update a school
// @Tags credentialing
// @Accept json
// @Produce json
// @Param id path string true "School ID"
// @Param school body service.SchoolRequest true "School data"
// @Success 200 {object} models.School
// @Security BearerAuth
// @Router /v1/credentialing/schools/{id} [put]
func (h *CredentialingHandler) UpdateSchool(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.SchoolRequest
	if !bindJSON(c, &req) {
		return
	}
	school, err := h.schools.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// DeleteSchool handles DELETE /credentialing/schools/{id}
// @Summary Delete a school
// @Tags credentialing
// @Param id path string true "School ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "School has managers"
// @Security BearerAuth
// @Router /v1/credentialing/schools/{id} [delete]
func (h *CredentialingHandler) DeleteSchool(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.schools.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportSchools handles POST /credentialing/schools/import
// @Summary Bulk import schools from a spreadsheet
// @Description Rows with an INEP code already registered are reported as duplicates and skipped
// @Tags credentialing
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX file"
// @Success 200 {object} service.ImportResult
// @Security BearerAuth
// @Router /v1/credentialing/schools/import [post]
func (h *CredentialingHandler) ImportSchools(c *gin.Context) {
	f, _, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.schools.ImportXLSX(c, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitPreRegistration handles POST /api/public/pre-registrations
// @Summary Submit a pre-registration
// @Description Public form. Returns the protocol used to follow the request.
// @Tags public
// @Accept json
// @Produce json
// @Param form body service.SubmitPreRegistrationRequest true "Applicant data"
// @Success 201 {object} service.SubmitPreRegistrationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A pending pre-registration already exists"
// @Failure 429 {object} ErrorResponse
// @Router /public/pre-registrations [post]
func (h *CredentialingHandler) SubmitPreRegistration(c *gin.Context) {
	var req service.SubmitPreRegistrationRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.regs.Submit(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PreRegistrationStatus handles GET /api/public/pre-registrations/status
// @Summary Follow a pre-registration
// @Tags public
// @Produce json
// @Param protocol query string true "Protocol"
// @Param cpf query string true "Applicant CPF"
// @Success 200 {object} service.PreRegistrationStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /public/pre-registrations/status [get]
func (h *CredentialingHandler) PreRegistrationStatus(c *gin.Context) {
	out, err := h.regs.Status(c.Query("protocol"), c.Query("cpf"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListPreRegistrations handles GET /credentialing/pre-registrations
// @Summary List pre-registrations
// @Tags credentialing
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param kind query string false "employee or school_manager"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.PreRegistration]
// @Security BearerAuth
// @Router /v1/credentialing/pre-registrations [get]
func (h *CredentialingHandler) ListPreRegistrations(c *gin.Context) {
	page, size := pageParams(c)
	regs, err := h.regs.List(repository.PreRegistrationFilter{
		Status: models.PreRegistrationStatus(c.Query("status")),
		Kind:   models.PreRegistrationKind(c.Query("kind")),
	}, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

// GetPreRegistration handles GET /credentialing/pre-registrations/{id}
// @Summary Get a pre-registration
// @Tags credentialing
// @Produce json
// @Param id path string true "Pre-registration ID"
// @Success 200 {object} models.PreRegistration
// @Security BearerAuth
// @Router /v1/credentialing/pre-registrations/{id} [get]
func (h *CredentialingHandler) GetPreRegistration(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	reg, err := h.regs.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ApprovePreRegistration handles POST /credentialing/pre-registrations/{id}/approve
// @Summary Approve a pre-registration
// @Description School manager requests produce an active credential
// @Tags credentialing
// @Produce json
// @Param id path string true "Pre-registration ID"
// @Success 200 {object} service.ApprovalResult
// @Failure 409 {object} ErrorResponse "Already reviewed"
// @Security BearerAuth
// @Router /v1/credentialing/pre-registrations/{id}/approve [post]
func (h *CredentialingHandler) ApprovePreRegistration(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	out, err := h.regs.Approve(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// RejectPreRegistration handles POST /credentialing/pre-registrations/{id}/reject
// @Summary Reject a pre-registration
// @Tags credentialing
// @Accept json
// @Produce json
// @Param id path string true "Pre-registration ID"
// @Param body body service.RejectPreRegistrationRequest true "Reason"
// @Success 200 {object} models.PreRegistration
// @Security BearerAuth
// @Router /v1/credentialing/pre-registrations/{id}/reject [post]
func (h *CredentialingHandler) RejectPreRegistration(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.RejectPreRegistrationRequest
	if !bindJSON(c, &req) {
		return
	}
	reg, err := h.regs.Reject(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// CreateManager handles POST /credentialing/managers
// @Summary Credential a school manager
// @Tags credentialing
// @Accept json
// @Produce json
// @Param manager body service.CreateManagerRequest true "Manager data"
// @Success 201 {object} models.SchoolManager
// @Security BearerAuth
// @Router /v1/credentialing/managers [post]
func (h *CredentialingHandler) CreateManager(c *gin.Context) {
	var req service.CreateManagerRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.managers.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GetManager handles GET /credentialing/managers/{id}
func (h *CredentialingHandler) GetManager(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	m, err := h.managers.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListManagers handles GET /credentialing/managers
// @Summary List school managers
// @Tags credentialing
// @Produce json
// @Param status query string false "active, suspended or expired"
// @Param school_id query string false "School"
// @Param q query string false "Name or CPF"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.SchoolManager]
// @Security BearerAuth
// @Router /v1/credentialing/managers [get]
func (h *CredentialingHandler) ListManagers(c *gin.Context) {
	schoolID, ok := queryUUID(c, "school_id")
	if !ok {
		return
	}
	page, size := pageParams(c)
	managers, err := h.managers.List(repository.SchoolManagerFilter{
		Status:   models.ManagerStatus(c.Query("status")),
		SchoolID: schoolID,
		Query:    c.Query("q"),
	}, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, managers)
}

// UpdateManager handles PUT /credentialing/managers/{id}
func (h *CredentialingHandler) UpdateManager(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateManagerRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.managers.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteManager handles DELETE /credentialing/managers/{id}
func (h *CredentialingHandler) DeleteManager(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.managers.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SuspendManager handles POST /credentialing/managers/{id}/suspend
// @Summary Suspend a credential
// @Tags credentialing
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} models.SchoolManager
// @Failure 409 {object} ErrorResponse "Credential is not active"
// @Security BearerAuth
// @Router /v1/credentialing/managers/{id}/suspend [post]
func (h *CredentialingHandler) SuspendManager(c *gin.Context) {
	h.managerAction(c, h.managers.Suspend)
}

// ReactivateManager handles POST /credentialing/managers/{id}/reactivate
// @Summary Reactivate a suspended credential
// @Tags credentialing
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} models.SchoolManager
// @Security BearerAuth
// @Router /v1/credentialing/managers/{id}/reactivate [post]
func (h *CredentialingHandler) ReactivateManager(c *gin.Context) {
	h.managerAction(c, h.managers.Reactivate)
}

// RenewManager handles POST /credentialing/managers/{id}/renew
// @Summary Renew a credential for another validity period
// @Tags credentialing
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} models.SchoolManager
// @Security BearerAuth
// @Router /v1/credentialing/managers/{id}/renew [post]
func (h *CredentialingHandler) RenewManager(c *gin.Context) {
	h.managerAction(c, h.managers.Renew)
}

func (h *CredentialingHandler) managerAction(c *gin.Context, action func(context.Context, uuid.UUID) (*models.SchoolManager, error)) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	m, err := action(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
