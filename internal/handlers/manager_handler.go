package handlers

import (
	"context"
	"net/http"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ManagerOperations is the service surface behind the manager routes
type ManagerOperations interface {
	EmployeeQueryService
	GetAllocationByEmpID(ctx context.Context, employeeID int64) (*models.ServiceResponse[models.AllocationDetailDto], error)
}

// ManagerHandler serves the read-only manager routes
type ManagerHandler struct {
	employeeReads
	service ManagerOperations
}

// NewManagerHandler creates a new manager handler
func NewManagerHandler(service ManagerOperations, logger logrus.FieldLogger) *ManagerHandler {
	return &ManagerHandler{
		employeeReads: employeeReads{queries: service, logger: logger.WithField("handler", "manager")},
		service:       service,
	}
}

// RegisterRoutes mounts the manager routes on rg
func (h *ManagerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.registerReads(rg)
	rg.GET("/employees/:id/allocation", h.GetAllocation)
}

// GetAllocation handles GET /api/v1/manager/employees/:id/allocation
func (h *ManagerHandler) GetAllocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetAllocationByEmpID(c.Request.Context(), id)
	respond(c, h.logger, http.StatusOK, resp, err)
}
