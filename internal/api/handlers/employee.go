package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
)

// EmployeeHandler handles employee records and their lotação history
type EmployeeHandler struct {
	employees   service.EmployeeServiceInterface
	assignments *service.AssignmentService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employees service.EmployeeServiceInterface, assignments *service.AssignmentService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, assignments: assignments}
}

func employeeFilter(c *gin.Context) (repository.EmployeeFilter, bool) {
	unitID, ok := queryUUID(c, "unit_id")
	if !ok {
		return repository.EmployeeFilter{}, false
	}
	return repository.EmployeeFilter{
		Query:  c.Query("q"),
		UnitID: unitID,
		Status: models.EmployeeStatus(c.Query("status")),
	}, true
}

// Create handles POST /hr/employees
// @Summary Create an employee
// @Tags hr
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee
// @Failure 400 {object} ErrorResponse "Invalid CPF or fields"
// @Failure 409 {object} ErrorResponse "CPF or registration number in use"
// @Security BearerAuth
// @Router /v1/hr/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employees.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// Get handles GET /hr/employees/{id}
// @Summary Get an employee
// @Tags hr
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/hr/employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	employee, err := h.employees.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// List handles GET /hr/employees
// @Summary List employees
// @Tags hr
// @Produce json
// @Param q query string false "Name, CPF or registration number"
// @Param unit_id query string false "Current unit"
// @Param status query string false "active, on_leave or terminated"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Employee]
// @Security BearerAuth
// @Router /v1/hr/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	filter, ok := employeeFilter(c)
	if !ok {
		return
	}
	page, size := pageParams(c)
	employees, err := h.employees.List(filter, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// Update handles PUT /hr/employees/{id}
// @Summary Update an employee
// @Tags hr
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body service.UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} models.Employee
// @Security BearerAuth
// @Router /v1/hr/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employees.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /hr/employees/{id}
// @Summary Delete an employee
// @Tags hr
// @Param id path string true "Employee ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/hr/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.employees.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /hr/employees/export
// @Summary Export employees
// @Description Spreadsheet of the employees matching the list filters
// @Tags hr
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Name, CPF or registration number"
// @Param unit_id query string false "Current unit"
// @Param status query string false "active, on_leave or terminated"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /v1/hr/employees/export [get]
func (h *EmployeeHandler) Export(c *gin.Context) {
	filter, ok := employeeFilter(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.employees.Export(&buf, filter); err != nil {
		respondError(c, err)
		return
	}
	attachment(c, service.ContentTypes[service.FormatXLSX], "servidores.xlsx")
	c.Data(http.StatusOK, service.ContentTypes[service.FormatXLSX], buf.Bytes())
}

// Assign handles POST /hr/employees/{id}/assignments
// @Summary Assign an employee to a unit
// @Description Closes the current lotação the day before start_date and opens the new one
// @Tags hr
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param assignment body service.AssignRequest true "New lotação"
// @Success 201 {object} models.Assignment
// @Failure 400 {object} ErrorResponse "Start date not after the current one"
// @Failure 409 {object} ErrorResponse "Employee terminated"
// @Security BearerAuth
// @Router /v1/hr/employees/{id}/assignments [post]
func (h *EmployeeHandler) Assign(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.AssignRequest
	if !bindJSON(c, &req) {
		return
	}
	assignment, err := h.assignments.Assign(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// History handles GET /hr/employees/{id}/assignments
// @Summary Lotação history
// @Description Assignments of the employee, most recent first
// @Tags hr
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {array} models.Assignment
// @Security BearerAuth
// @Router /v1/hr/employees/{id}/assignments [get]
func (h *EmployeeHandler) History(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	history, err := h.assignments.History(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// EndAssignment handles POST /hr/employees/{id}/assignments/end
// @Summary End the current lotação
// @Tags hr
// @Accept json
// @Param id path string true "Employee ID"
// @Param end body service.EndAssignmentRequest true "End date"
// @Success 204
// @Failure 409 {object} ErrorResponse "No active assignment"
// @Security BearerAuth
// @Router /v1/hr/employees/{id}/assignments/end [post]
func (h *EmployeeHandler) EndAssignment(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.EndAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.assignments.End(c, id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
