package services

import (
	"context"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AllocatorService creates employees and records their allocations
type AllocatorService struct {
	*EmployeeQueries
	engine  *AllocationEngine
	lookups LookupStore
	logger  logrus.FieldLogger
}

// NewAllocatorService creates a new AllocatorService
func NewAllocatorService(queries *EmployeeQueries, engine *AllocationEngine, lookups LookupStore, logger logrus.FieldLogger) *AllocatorService {
	return &AllocatorService{
		EmployeeQueries: queries,
		engine:          engine,
		lookups:         lookups,
		logger:          logger.WithField("service", "allocator"),
	}
}

// AddEmployee creates an employee on the bench
func (s *AllocatorService) AddEmployee(ctx context.Context, caller models.Caller, dto *models.AddEmployeeDto) (*models.ServiceResponse[models.Employee], error) {
	resp, err := s.engine.AddEmployee(ctx, dto)
	logOutcome(s.logger, caller, "add_employee", resp, err)
	return resp, err
}

// AddAllocation records an allocation for an employee
func (s *AllocatorService) AddAllocation(ctx context.Context, caller models.Caller, dto *models.AddAllocationDto) (*models.ServiceResponse[models.Allocation], error) {
	resp, err := s.engine.AddAllocation(ctx, dto)
	logOutcome(s.logger, caller, "add_allocation", resp, err)
	return resp, err
}

// UpdateEmployee switches an employee between bench and allocated
func (s *AllocatorService) UpdateEmployee(ctx context.Context, caller models.Caller, dto *models.UpdateAllocationDto) (*models.ServiceResponse[models.EmployeeDto], error) {
	resp, err := s.engine.UpdateEmployee(ctx, dto)
	logOutcome(s.logger, caller, "update_employee_allocation", resp, err)
	return resp, err
}

// GetAllJobRoles returns the job role lookup
func (s *AllocatorService) GetAllJobRoles(ctx context.Context) (*models.ServiceResponse[[]models.JobRole], error) {
	return getAllJobRoles(ctx, s.lookups)
}

// GetAllocationTypes returns the allocation type lookup
func (s *AllocatorService) GetAllocationTypes(ctx context.Context) (*models.ServiceResponse[[]models.AllocationType], error) {
	return listResponse(s.lookups.GetAllocationTypes(ctx))
}

// GetTrainings returns the trainings an employee can be allocated to
func (s *AllocatorService) GetTrainings(ctx context.Context) (*models.ServiceResponse[[]models.Training], error) {
	return listResponse(s.lookups.GetTrainings(ctx))
}

// GetInternalProjects returns the internal projects an employee can be allocated to
func (s *AllocatorService) GetInternalProjects(ctx context.Context) (*models.ServiceResponse[[]models.InternalProject], error) {
	return listResponse(s.lookups.GetInternalProjects(ctx))
}

// GetSkills returns the skill lookup
func (s *AllocatorService) GetSkills(ctx context.Context) (*models.ServiceResponse[[]models.Skill], error) {
	return listResponse(s.lookups.GetSkills(ctx))
}
