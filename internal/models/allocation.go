package models

import "time"

// Allocation records where an employee's effort is directed over a date range
type Allocation struct {
	AllocationID      int64            `json:"allocation_id" db:"allocation_id"`
	EmployeeID        int64            `json:"employee_id" db:"employee_id"`
	TypeID            AllocationTypeID `json:"type_id" db:"type_id"`
	TrainingID        *int64           `json:"training_id,omitempty" db:"training_id"`
	InternalProjectID *int64           `json:"internal_project_id,omitempty" db:"internal_project_id"`
	StartDate         time.Time        `json:"start_date" db:"start_date"`
	EndDate           *time.Time       `json:"end_date,omitempty" db:"end_date"`
	Details           string           `json:"details" db:"details"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
}

// AddAllocationDto is the payload for recording a new allocation
type AddAllocationDto struct {
	EmployeeID        int64            `json:"employee_id" binding:"required" validate:"required,gt=0"`
	TypeID            AllocationTypeID `json:"type_id" binding:"required" validate:"required,oneof=1 2"`
	TrainingID        *int64           `json:"training_id"`
	InternalProjectID *int64           `json:"internal_project_id"`
	StartDate         time.Time        `json:"start_date" binding:"required" validate:"required"`
	EndDate           *time.Time       `json:"end_date"`
	Details           string           `json:"details" validate:"max=500"`
}

// AllocationDetailDto is an allocation joined with its display names
type AllocationDetailDto struct {
	AllocationID        int64            `json:"allocation_id" db:"allocation_id"`
	EmployeeID          int64            `json:"employee_id" db:"employee_id"`
	EmployeeName        string           `json:"employee_name" db:"employee_name"`
	TypeID              AllocationTypeID `json:"type_id" db:"type_id"`
	TypeName            string           `json:"type_name" db:"type_name"`
	TrainingID          *int64           `json:"training_id,omitempty" db:"training_id"`
	TrainingName        *string          `json:"training_name,omitempty" db:"training_name"`
	InternalProjectID   *int64           `json:"internal_project_id,omitempty" db:"internal_project_id"`
	InternalProjectName *string          `json:"internal_project_name,omitempty" db:"internal_project_name"`
	StartDate           time.Time        `json:"start_date" db:"start_date"`
	EndDate             *time.Time       `json:"end_date,omitempty" db:"end_date"`
	Details             string           `json:"details" db:"details"`
}
