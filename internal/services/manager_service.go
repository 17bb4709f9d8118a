package services

import (
	"context"

	"github.com/benchtrack/allocation-backend/internal/models"
)

// ManagerService is the read-only view used by managers
type ManagerService struct {
	*EmployeeQueries
	allocations AllocationStore
}

// NewManagerService creates a new ManagerService
func NewManagerService(queries *EmployeeQueries, allocations AllocationStore) *ManagerService {
	return &ManagerService{
		EmployeeQueries: queries,
		allocations:     allocations,
	}
}

// GetAllocationByEmpID returns the latest allocation of an employee
func (s *ManagerService) GetAllocationByEmpID(ctx context.Context, employeeID int64) (*models.ServiceResponse[models.AllocationDetailDto], error) {
	allocation, err := s.allocations.GetAllocationByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return failure[models.AllocationDetailDto](MsgAllocationNotFound), nil
	}

	return success(*allocation, MsgNone), nil
}
