package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/benchtrack/allocation-backend/pkg/validator"
)

// errNotWritten aborts a transaction when a store reports that nothing was written
var errNotWritten = errors.New("store reported no rows written")

const benchAllocationDetails = "Set on bench"

// AllocationEngine moves employees between the Bench and Allocated states and
// owns every employee write
type AllocationEngine struct {
	employees   EmployeeStore
	allocations AllocationStore
	tx          Transactor
	rules       *EmployeeRules
	validator   *validator.PayloadValidator
}

// NewAllocationEngine creates a new AllocationEngine
func NewAllocationEngine(
	employees EmployeeStore,
	allocations AllocationStore,
	tx Transactor,
	rules *EmployeeRules,
	payloadValidator *validator.PayloadValidator,
) *AllocationEngine {
	return &AllocationEngine{
		employees:   employees,
		allocations: allocations,
		tx:          tx,
		rules:       rules,
		validator:   payloadValidator,
	}
}

// AddEmployee creates an employee on the bench together with its skills and a
// companion bench allocation. All three writes commit or none do.
func (e *AllocationEngine) AddEmployee(ctx context.Context, dto *models.AddEmployeeDto) (*models.ServiceResponse[models.Employee], error) {
	if dto == nil {
		return failure[models.Employee](MsgAddEmployeeInvalid), nil
	}

	// Rule failures carry the fixed literals and win over payload errors.
	msg, err := e.rules.ValidateNew(ctx, dto)
	if err != nil {
		return nil, err
	}
	if msg != MsgNone {
		return failure[models.Employee](msg), nil
	}
	if err := e.validator.Validate(dto); err != nil {
		return invalidPayload[models.Employee](err), nil
	}

	employee := &models.Employee{
		EmployeeName:   strings.TrimSpace(dto.EmployeeName),
		Email:          strings.TrimSpace(dto.Email),
		JobRoleID:      dto.JobRoleID,
		TypeID:         models.AllocationTypeBench,
		BenchStartDate: dto.BenchStartDate,
		BenchEndDate:   dto.BenchEndDate,
		SkillIDs:       dto.SkillIDs,
	}

	err = e.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := written(e.employees.Add(ctx, employee)); err != nil {
			return err
		}
		return written(e.allocations.InsertAllocation(ctx, &models.Allocation{
			EmployeeID: employee.EmployeeID,
			TypeID:     models.AllocationTypeBench,
			StartDate:  employee.BenchStartDate,
			EndDate:    employee.BenchEndDate,
			Details:    benchAllocationDetails,
		}))
	})
	if errors.Is(err, errNotWritten) {
		return failure[models.Employee](MsgAddEmployeeFailed), nil
	}
	if err != nil {
		return nil, err
	}

	return success(*employee, MsgEmployeeAdded), nil
}

// AddAllocation records an allocation for an existing employee. Allocated rows
// reference at most one of a training or an internal project; bench rows reference
// neither. The employee row is not changed.
func (e *AllocationEngine) AddAllocation(ctx context.Context, dto *models.AddAllocationDto) (*models.ServiceResponse[models.Allocation], error) {
	if dto == nil {
		return failure[models.Allocation](MsgAllocationInvalid), nil
	}
	if err := e.validator.Validate(dto); err != nil {
		return invalidPayload[models.Allocation](err), nil
	}

	hasTraining := dto.TrainingID != nil
	hasProject := dto.InternalProjectID != nil
	switch dto.TypeID {
	case models.AllocationTypeAllocated:
		if hasTraining && hasProject {
			return failure[models.Allocation](MsgAllocationInvalidTarget), nil
		}
	case models.AllocationTypeBench:
		if hasTraining || hasProject {
			return failure[models.Allocation](MsgAllocationInvalidTarget), nil
		}
	}

	if endsBeforeStart(dto.StartDate, dto.EndDate) {
		return failure[models.Allocation](MsgAllocationInvalidDateRange), nil
	}

	existing, err := e.employees.GetEmployeeByID(ctx, dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return failure[models.Allocation](MsgEmployeeNotFound), nil
	}

	allocation := &models.Allocation{
		EmployeeID:        dto.EmployeeID,
		TypeID:            dto.TypeID,
		TrainingID:        dto.TrainingID,
		InternalProjectID: dto.InternalProjectID,
		StartDate:         dto.StartDate,
		EndDate:           dto.EndDate,
		Details:           strings.TrimSpace(dto.Details),
	}

	ok, err := e.allocations.InsertAllocation(ctx, allocation)
	if err != nil {
		return nil, err
	}
	if !ok {
		return failure[models.Allocation](MsgAllocationFailed), nil
	}

	if allocation.TypeID == models.AllocationTypeAllocated {
		return success(*allocation, MsgAllocatedToProject), nil
	}
	return success(*allocation, MsgSetOnBench), nil
}

// UpdateEmployee switches an employee's allocation type. Moving to the bench also
// replaces the bench dates; a missing start date means today.
func (e *AllocationEngine) UpdateEmployee(ctx context.Context, dto *models.UpdateAllocationDto) (*models.ServiceResponse[models.EmployeeDto], error) {
	if dto == nil {
		return failure[models.EmployeeDto](MsgUpdateInvalid), nil
	}
	if err := e.validator.Validate(dto); err != nil {
		return invalidPayload[models.EmployeeDto](err), nil
	}

	existing, err := e.employees.GetEmployeeByID(ctx, dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return failure[models.EmployeeDto](MsgEmployeeNotFound), nil
	}

	employee := &models.Employee{
		EmployeeID:     existing.EmployeeID,
		TypeID:         dto.TypeID,
		BenchStartDate: existing.BenchStartDate,
		BenchEndDate:   existing.BenchEndDate,
	}

	if dto.TypeID == models.AllocationTypeBench {
		employee.BenchStartDate = e.rules.today()
		if dto.BenchStartDate != nil {
			employee.BenchStartDate = *dto.BenchStartDate
		}
		employee.BenchEndDate = dto.BenchEndDate

		if endsBeforeStart(employee.BenchStartDate, employee.BenchEndDate) {
			return failure[models.EmployeeDto](MsgBenchEndBeforeStart), nil
		}
	}

	ok, err := e.employees.UpdateEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}
	if !ok {
		return failure[models.EmployeeDto](MsgUpdateFailed), nil
	}

	updated := *existing
	updated.TypeID = employee.TypeID
	updated.TypeName = employee.TypeID.String()
	updated.BenchStartDate = employee.BenchStartDate
	updated.BenchEndDate = employee.BenchEndDate

	return success(updated, MsgEmployeeUpdated), nil
}

// ModifyEmployee edits an employee's details and replaces its skills in one transaction
func (e *AllocationEngine) ModifyEmployee(ctx context.Context, dto *models.ModifyEmployeeDto) (*models.ServiceResponse[models.EmployeeDto], error) {
	if dto == nil {
		return failure[models.EmployeeDto](MsgUpdateInvalid), nil
	}
	if err := e.validator.Validate(dto); err != nil {
		return invalidPayload[models.EmployeeDto](err), nil
	}

	existing, err := e.employees.GetEmployeeByID(ctx, dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return failure[models.EmployeeDto](MsgEmployeeNotFound), nil
	}

	msg, err := e.rules.ValidateEdit(ctx, dto)
	if err != nil {
		return nil, err
	}
	if msg != MsgNone {
		return failure[models.EmployeeDto](msg), nil
	}

	employee := &models.Employee{
		EmployeeID:     existing.EmployeeID,
		EmployeeName:   strings.TrimSpace(dto.EmployeeName),
		Email:          strings.TrimSpace(dto.Email),
		JobRoleID:      dto.JobRoleID,
		TypeID:         existing.TypeID,
		BenchStartDate: dto.BenchStartDate,
		BenchEndDate:   dto.BenchEndDate,
		SkillIDs:       dto.SkillIDs,
	}

	var updated *models.EmployeeDto
	err = e.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := written(e.employees.Update(ctx, employee)); err != nil {
			return err
		}
		var err error
		updated, err = e.employees.GetEmployeeByID(ctx, employee.EmployeeID)
		return err
	})
	if errors.Is(err, errNotWritten) {
		return failure[models.EmployeeDto](MsgUpdateFailed), nil
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return failure[models.EmployeeDto](MsgEmployeeNotFound), nil
	}

	return success(*updated, MsgEmployeeUpdated), nil
}

// RemoveEmployee deletes an employee; its skills and allocations go with it
func (e *AllocationEngine) RemoveEmployee(ctx context.Context, id int64) (*models.ServiceResponse[int64], error) {
	ok, err := e.employees.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return failure[int64](MsgDeleteFailed), nil
	}

	return success(id, MsgEmployeeDeleted), nil
}

// written turns a store's (ok, err) result into errNotWritten when ok is false
func written(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return errNotWritten
	}
	return nil
}

// reportRange checks the bounds of a date-range query
func reportRange(start, end time.Time) Message {
	if endsBeforeStart(start, &end) {
		return MsgReportInvalidDateRange
	}
	return MsgNone
}
