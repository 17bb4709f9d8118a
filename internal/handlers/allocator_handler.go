package handlers

import (
	"context"
	"net/http"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AllocatorOperations is the service surface behind the allocator routes
type AllocatorOperations interface {
	EmployeeQueryService
	AddEmployee(ctx context.Context, caller models.Caller, dto *models.AddEmployeeDto) (*models.ServiceResponse[models.Employee], error)
	AddAllocation(ctx context.Context, caller models.Caller, dto *models.AddAllocationDto) (*models.ServiceResponse[models.Allocation], error)
	UpdateEmployee(ctx context.Context, caller models.Caller, dto *models.UpdateAllocationDto) (*models.ServiceResponse[models.EmployeeDto], error)
	GetAllJobRoles(ctx context.Context) (*models.ServiceResponse[[]models.JobRole], error)
	GetAllocationTypes(ctx context.Context) (*models.ServiceResponse[[]models.AllocationType], error)
	GetTrainings(ctx context.Context) (*models.ServiceResponse[[]models.Training], error)
	GetInternalProjects(ctx context.Context) (*models.ServiceResponse[[]models.InternalProject], error)
	GetSkills(ctx context.Context) (*models.ServiceResponse[[]models.Skill], error)
}

// AllocatorHandler handles employee intake and allocation requests
type AllocatorHandler struct {
	employeeReads
	service AllocatorOperations
}

// NewAllocatorHandler creates a new allocator handler
func NewAllocatorHandler(service AllocatorOperations, logger logrus.FieldLogger) *AllocatorHandler {
	return &AllocatorHandler{
		employeeReads: employeeReads{queries: service, logger: logger.WithField("handler", "allocator")},
		service:       service,
	}
}

// RegisterRoutes mounts the allocator routes on rg
func (h *AllocatorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.registerReads(rg)
	rg.POST("/employees", h.AddEmployee)
	rg.PATCH("/employees/:id/allocation", h.UpdateAllocation)
	rg.POST("/allocations", h.AddAllocation)
	rg.GET("/job-roles", h.GetAllJobRoles)
	rg.GET("/allocation-types", h.GetAllocationTypes)
	rg.GET("/trainings", h.GetTrainings)
	rg.GET("/internal-projects", h.GetInternalProjects)
	rg.GET("/skills", h.GetSkills)
}

// AddEmployee handles POST /api/v1/allocator/employees
func (h *AllocatorHandler) AddEmployee(c *gin.Context) {
	var req models.AddEmployeeDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.AddEmployee(c.Request.Context(), caller(c), &req)
	respond(c, h.logger, http.StatusCreated, resp, err)
}

// AddAllocation handles POST /api/v1/allocator/allocations
func (h *AllocatorHandler) AddAllocation(c *gin.Context) {
	var req models.AddAllocationDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.AddAllocation(c.Request.Context(), caller(c), &req)
	respond(c, h.logger, http.StatusCreated, resp, err)
}

// UpdateAllocation handles PATCH /api/v1/allocator/employees/:id/allocation
func (h *AllocatorHandler) UpdateAllocation(c *gin.Context) {
	req, ok := bindAllocationUpdate(c)
	if !ok {
		return
	}

	resp, err := h.service.UpdateEmployee(c.Request.Context(), caller(c), req)
	respond(c, h.logger, http.StatusOK, resp, err)
}

func (h *AllocatorHandler) GetAllJobRoles(c *gin.Context) {
	resp, err := h.service.GetAllJobRoles(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}

func (h *AllocatorHandler) GetAllocationTypes(c *gin.Context) {
	resp, err := h.service.GetAllocationTypes(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}

func (h *AllocatorHandler) GetTrainings(c *gin.Context) {
	resp, err := h.service.GetTrainings(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}

func (h *AllocatorHandler) GetInternalProjects(c *gin.Context) {
	resp, err := h.service.GetInternalProjects(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}

func (h *AllocatorHandler) GetSkills(c *gin.Context) {
	resp, err := h.service.GetSkills(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}
