package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
)

// AllocationRepository handles allocation database operations
type AllocationRepository struct {
	db Querier
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db Querier) *AllocationRepository {
	return &AllocationRepository{
		db: db,
	}
}

// InsertAllocation records an allocation. On success allocation.AllocationID is set.
func (r *AllocationRepository) InsertAllocation(ctx context.Context, allocation *models.Allocation) (bool, error) {
	query := `
		INSERT INTO allocations (
			employee_id, type_id, training_id, internal_project_id,
			start_date, end_date, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING allocation_id
	`

	now := time.Now()
	err := querierFrom(ctx, r.db).QueryRowxContext(ctx, query,
		allocation.EmployeeID,
		allocation.TypeID,
		allocation.TrainingID,
		allocation.InternalProjectID,
		allocation.StartDate,
		allocation.EndDate,
		allocation.Details,
		now,
	).Scan(&allocation.AllocationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert allocation: %w", err)
	}

	allocation.CreatedAt = now
	return true, nil
}

// GetAllocationByEmployeeID returns the most recent allocation of an employee,
// or nil when the employee has none
func (r *AllocationRepository) GetAllocationByEmployeeID(ctx context.Context, employeeID int64) (*models.AllocationDetailDto, error) {
	query := `
		SELECT a.allocation_id, a.employee_id, e.employee_name, a.type_id, t.type_name,
		       a.training_id, tr.training_name, a.internal_project_id,
		       ip.project_name AS internal_project_name,
		       a.start_date, a.end_date, a.details
		FROM allocations a
		JOIN employees e ON e.employee_id = a.employee_id
		JOIN allocation_types t ON t.type_id = a.type_id
		LEFT JOIN trainings tr ON tr.training_id = a.training_id
		LEFT JOIN internal_projects ip ON ip.internal_project_id = a.internal_project_id
		WHERE a.employee_id = $1
		ORDER BY a.start_date DESC, a.allocation_id DESC
		LIMIT 1
	`

	var allocation models.AllocationDetailDto
	err := querierFrom(ctx, r.db).GetContext(ctx, &allocation, query, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get allocation by employee ID: %w", err)
	}

	return &allocation, nil
}
