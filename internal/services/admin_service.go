package services

import (
	"context"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AdminService exposes full employee management and reporting
type AdminService struct {
	*EmployeeQueries
	engine    *AllocationEngine
	employees EmployeeStore
	lookups   LookupStore
	logger    logrus.FieldLogger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	queries *EmployeeQueries,
	engine *AllocationEngine,
	employees EmployeeStore,
	lookups LookupStore,
	logger logrus.FieldLogger,
) *AdminService {
	return &AdminService{
		EmployeeQueries: queries,
		engine:          engine,
		employees:       employees,
		lookups:         lookups,
		logger:          logger.WithField("service", "admin"),
	}
}

// AddEmployee creates an employee on the bench
func (s *AdminService) AddEmployee(ctx context.Context, caller models.Caller, dto *models.AddEmployeeDto) (*models.ServiceResponse[models.Employee], error) {
	resp, err := s.engine.AddEmployee(ctx, dto)
	logOutcome(s.logger, caller, "add_employee", resp, err)
	return resp, err
}

// ModifyEmployee edits an employee's details
func (s *AdminService) ModifyEmployee(ctx context.Context, caller models.Caller, dto *models.ModifyEmployeeDto) (*models.ServiceResponse[models.EmployeeDto], error) {
	resp, err := s.engine.ModifyEmployee(ctx, dto)
	logOutcome(s.logger, caller, "modify_employee", resp, err)
	return resp, err
}

// UpdateEmployee switches an employee between bench and allocated
func (s *AdminService) UpdateEmployee(ctx context.Context, caller models.Caller, dto *models.UpdateAllocationDto) (*models.ServiceResponse[models.EmployeeDto], error) {
	resp, err := s.engine.UpdateEmployee(ctx, dto)
	logOutcome(s.logger, caller, "update_employee_allocation", resp, err)
	return resp, err
}

// RemoveEmployee deletes an employee
func (s *AdminService) RemoveEmployee(ctx context.Context, caller models.Caller, id int64) (*models.ServiceResponse[int64], error) {
	resp, err := s.engine.RemoveEmployee(ctx, id)
	logOutcome(s.logger, caller, "remove_employee", resp, err)
	return resp, err
}

// GetEmployeesByDateRangeAndType lists employees of typeID whose bench period overlaps the range
func (s *AdminService) GetEmployeesByDateRangeAndType(ctx context.Context, start, end time.Time, typeID models.AllocationTypeID) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	if !typeID.IsValid() {
		return failure[[]models.EmployeeDto](MsgInvalidAllocationType), nil
	}
	if msg := reportRange(start, end); msg != MsgNone {
		return failure[[]models.EmployeeDto](msg), nil
	}

	return recordsResponse(s.employees.GetEmployeesByDateRangeAndType(ctx, start, end, typeID))
}

// GetEmployeesByJobRoleAndType lists employees with the job role and allocation type
func (s *AdminService) GetEmployeesByJobRoleAndType(ctx context.Context, jobRoleID int64, typeID models.AllocationTypeID) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	if !typeID.IsValid() {
		return failure[[]models.EmployeeDto](MsgInvalidAllocationType), nil
	}

	return recordsResponse(s.employees.GetEmployeesByJobRoleAndType(ctx, jobRoleID, typeID))
}

// GetAllJobRoles returns the job role lookup
func (s *AdminService) GetAllJobRoles(ctx context.Context) (*models.ServiceResponse[[]models.JobRole], error) {
	return getAllJobRoles(ctx, s.lookups)
}

// GetEmployeeData returns the allocation report for the date range
func (s *AdminService) GetEmployeeData(ctx context.Context, start, end time.Time) (*models.ServiceResponse[[]models.EmployeeDataRow], error) {
	if msg := reportRange(start, end); msg != MsgNone {
		return failure[[]models.EmployeeDataRow](msg), nil
	}

	return recordsResponse(s.employees.GetEmployeeData(ctx, start, end))
}
