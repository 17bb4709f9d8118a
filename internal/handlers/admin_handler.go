package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminOperations is the service surface behind the admin routes
type AdminOperations interface {
	EmployeeQueryService
	AddEmployee(ctx context.Context, caller models.Caller, dto *models.AddEmployeeDto) (*models.ServiceResponse[models.Employee], error)
	ModifyEmployee(ctx context.Context, caller models.Caller, dto *models.ModifyEmployeeDto) (*models.ServiceResponse[models.EmployeeDto], error)
	UpdateEmployee(ctx context.Context, caller models.Caller, dto *models.UpdateAllocationDto) (*models.ServiceResponse[models.EmployeeDto], error)
	RemoveEmployee(ctx context.Context, caller models.Caller, id int64) (*models.ServiceResponse[int64], error)
	GetEmployeesByDateRangeAndType(ctx context.Context, start, end time.Time, typeID models.AllocationTypeID) (*models.ServiceResponse[[]models.EmployeeDto], error)
	GetEmployeesByJobRoleAndType(ctx context.Context, jobRoleID int64, typeID models.AllocationTypeID) (*models.ServiceResponse[[]models.EmployeeDto], error)
	GetAllJobRoles(ctx context.Context) (*models.ServiceResponse[[]models.JobRole], error)
	GetEmployeeData(ctx context.Context, start, end time.Time) (*models.ServiceResponse[[]models.EmployeeDataRow], error)
}

// AdminHandler handles employee management and reporting requests
type AdminHandler struct {
	employeeReads
	service AdminOperations
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service AdminOperations, logger logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{
		employeeReads: employeeReads{queries: service, logger: logger.WithField("handler", "admin")},
		service:       service,
	}
}

// RegisterRoutes mounts the admin routes on rg
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.registerReads(rg)
	rg.POST("/employees", h.AddEmployee)
	rg.PUT("/employees/:id", h.ModifyEmployee)
	rg.PATCH("/employees/:id/allocation", h.UpdateAllocation)
	rg.DELETE("/employees/:id", h.RemoveEmployee)
	rg.GET("/job-roles", h.GetAllJobRoles)
	rg.GET("/reports/bench", h.GetEmployeesByDateRange)
	rg.GET("/reports/job-role", h.GetEmployeesByJobRole)
	rg.GET("/reports/employee-data", h.GetEmployeeData)
}

// AddEmployee handles POST /api/v1/admin/employees
func (h *AdminHandler) AddEmployee(c *gin.Context) {
	var req models.AddEmployeeDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.AddEmployee(c.Request.Context(), caller(c), &req)
	respond(c, h.logger, http.StatusCreated, resp, err)
}

// ModifyEmployee handles PUT /api/v1/admin/employees/:id
func (h *AdminHandler) ModifyEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.ModifyEmployeeDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.EmployeeID = id

	resp, err := h.service.ModifyEmployee(c.Request.Context(), caller(c), &req)
	respond(c, h.logger, http.StatusOK, resp, err)
}

// UpdateAllocation handles PATCH /api/v1/admin/employees/:id/allocation
func (h *AdminHandler) UpdateAllocation(c *gin.Context) {
	req, ok := bindAllocationUpdate(c)
	if !ok {
		return
	}

	resp, err := h.service.UpdateEmployee(c.Request.Context(), caller(c), req)
	respond(c, h.logger, http.StatusOK, resp, err)
}

// RemoveEmployee handles DELETE /api/v1/admin/employees/:id
func (h *AdminHandler) RemoveEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.RemoveEmployee(c.Request.Context(), caller(c), id)
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetAllJobRoles handles GET /api/v1/admin/job-roles
func (h *AdminHandler) GetAllJobRoles(c *gin.Context) {
	resp, err := h.service.GetAllJobRoles(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetEmployeesByDateRange handles GET /api/v1/admin/reports/bench?start&end&typeId
func (h *AdminHandler) GetEmployeesByDateRange(c *gin.Context) {
	start, ok := requiredDate(c, "start")
	if !ok {
		return
	}
	end, ok := requiredDate(c, "end")
	if !ok {
		return
	}
	typeID, ok := requiredInt64(c, "typeId")
	if !ok {
		return
	}

	resp, err := h.service.GetEmployeesByDateRangeAndType(c.Request.Context(), start, end, models.AllocationTypeID(typeID))
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetEmployeesByJobRole handles GET /api/v1/admin/reports/job-role?jobRoleId&typeId
func (h *AdminHandler) GetEmployeesByJobRole(c *gin.Context) {
	jobRoleID, ok := requiredInt64(c, "jobRoleId")
	if !ok {
		return
	}
	typeID, ok := requiredInt64(c, "typeId")
	if !ok {
		return
	}

	resp, err := h.service.GetEmployeesByJobRoleAndType(c.Request.Context(), jobRoleID, models.AllocationTypeID(typeID))
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetEmployeeData handles GET /api/v1/admin/reports/employee-data?start&end
func (h *AdminHandler) GetEmployeeData(c *gin.Context) {
	start, ok := requiredDate(c, "start")
	if !ok {
		return
	}
	end, ok := requiredDate(c, "end")
	if !ok {
		return
	}

	resp, err := h.service.GetEmployeeData(c.Request.Context(), start, end)
	respond(c, h.logger, http.StatusOK, resp, err)
}

// bindAllocationUpdate reads the :id parameter and the allocation switch body
func bindAllocationUpdate(c *gin.Context) (*models.UpdateAllocationDto, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}

	var req models.UpdateAllocationDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return nil, false
	}
	req.EmployeeID = id

	return &req, true
}
