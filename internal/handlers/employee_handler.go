package handlers

import (
	"context"
	"net/http"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EmployeeQueryService is the read surface shared by every role
type EmployeeQueryService interface {
	GetPaginatedEmployees(ctx context.Context, page, pageSize int, search *string, sortOrder, sortBy string) (*models.ServiceResponse[[]models.EmployeeDto], error)
	TotalEmployees(ctx context.Context, search *string) (*models.ServiceResponse[int64], error)
	GetAllEmployees(ctx context.Context) (*models.ServiceResponse[[]models.EmployeeDto], error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.ServiceResponse[models.EmployeeDto], error)
}

// employeeReads serves the employee list endpoints for a role group
type employeeReads struct {
	queries EmployeeQueryService
	logger  logrus.FieldLogger
}

func (h *employeeReads) registerReads(rg *gin.RouterGroup) {
	rg.GET("/employees", h.ListEmployees)
	rg.GET("/employees/count", h.CountEmployees)
	rg.GET("/employees/all", h.GetAllEmployees)
	rg.GET("/employees/:id", h.GetEmployee)
}

// ListEmployees handles GET /employees?page&pageSize&search&sortOrder&sortBy
func (h *employeeReads) ListEmployees(c *gin.Context) {
	page, ok := optionalInt(c, "page")
	if !ok {
		return
	}
	pageSize, ok := optionalInt(c, "pageSize")
	if !ok {
		return
	}

	resp, err := h.queries.GetPaginatedEmployees(c.Request.Context(), page, pageSize, searchParam(c), c.Query("sortOrder"), c.Query("sortBy"))
	respond(c, h.logger, http.StatusOK, resp, err)
}

// CountEmployees handles GET /employees/count?search
func (h *employeeReads) CountEmployees(c *gin.Context) {
	resp, err := h.queries.TotalEmployees(c.Request.Context(), searchParam(c))
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetAllEmployees handles GET /employees/all
func (h *employeeReads) GetAllEmployees(c *gin.Context) {
	resp, err := h.queries.GetAllEmployees(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetEmployee handles GET /employees/:id
func (h *employeeReads) GetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.queries.GetEmployeeByID(c.Request.Context(), id)
	respond(c, h.logger, http.StatusOK, resp, err)
}

// searchParam keeps an absent search distinct from an empty one
func searchParam(c *gin.Context) *string {
	search, ok := c.GetQuery("search")
	if !ok {
		return nil
	}
	return &search
}
