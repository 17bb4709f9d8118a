package models

import (
	"time"
)

// Employee represents a row of the employees table
type Employee struct {
	EmployeeID     int64            `json:"employee_id" db:"employee_id"`
	EmployeeName   string           `json:"employee_name" db:"employee_name"`
	Email          string           `json:"email" db:"email"`
	JobRoleID      int64            `json:"job_role_id" db:"job_role_id"`
	TypeID         AllocationTypeID `json:"type_id" db:"type_id"`
	BenchStartDate time.Time        `json:"bench_start_date" db:"bench_start_date"`
	BenchEndDate   *time.Time       `json:"bench_end_date,omitempty" db:"bench_end_date"`
	SkillIDs       []int64          `json:"skill_ids,omitempty" db:"-"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

// AddEmployeeDto is the payload for creating an employee
type AddEmployeeDto struct {
	EmployeeName   string     `json:"employee_name" binding:"required" validate:"required,notblank,max=100"`
	Email          string     `json:"email" binding:"required" validate:"required,email,max=100"`
	JobRoleID      int64      `json:"job_role_id" binding:"required" validate:"required,gt=0"`
	BenchStartDate time.Time  `json:"bench_start_date" binding:"required" validate:"required"`
	BenchEndDate   *time.Time `json:"bench_end_date"`
	SkillIDs       []int64    `json:"skill_ids" validate:"omitempty,dive,gt=0"`
}

// ModifyEmployeeDto is the payload for a general employee edit
type ModifyEmployeeDto struct {
	EmployeeID     int64      `json:"employee_id" validate:"required,gt=0"`
	EmployeeName   string     `json:"employee_name" binding:"required" validate:"required,notblank,max=100"`
	Email          string     `json:"email" binding:"required" validate:"required,email,max=100"`
	JobRoleID      int64      `json:"job_role_id" binding:"required" validate:"required,gt=0"`
	BenchStartDate time.Time  `json:"bench_start_date" binding:"required" validate:"required"`
	BenchEndDate   *time.Time `json:"bench_end_date"`
	SkillIDs       []int64    `json:"skill_ids" validate:"omitempty,dive,gt=0"`
}

// UpdateAllocationDto switches an employee between bench and allocated
type UpdateAllocationDto struct {
	EmployeeID     int64            `json:"employee_id" validate:"required,gt=0"`
	TypeID         AllocationTypeID `json:"type_id" binding:"required" validate:"required,oneof=1 2"`
	BenchStartDate *time.Time       `json:"bench_start_date"`
	BenchEndDate   *time.Time       `json:"bench_end_date"`
}

// EmployeeDto is the read projection returned by list and detail endpoints
type EmployeeDto struct {
	EmployeeID     int64            `json:"employee_id" db:"employee_id"`
	EmployeeName   string           `json:"employee_name" db:"employee_name"`
	Email          string           `json:"email" db:"email"`
	JobRoleID      int64            `json:"job_role_id" db:"job_role_id"`
	JobRoleName    string           `json:"job_role_name" db:"job_role_name"`
	TypeID         AllocationTypeID `json:"type_id" db:"type_id"`
	TypeName       string           `json:"type_name" db:"type_name"`
	BenchStartDate time.Time        `json:"bench_start_date" db:"bench_start_date"`
	BenchEndDate   *time.Time       `json:"bench_end_date,omitempty" db:"bench_end_date"`
	Skills         []Skill          `json:"skills" db:"-"`
}

// EmployeeDataRow is one row of the date-range employee report
type EmployeeDataRow struct {
	EmployeeID     int64      `json:"employee_id" db:"employee_id"`
	EmployeeName   string     `json:"employee_name" db:"employee_name"`
	Email          string     `json:"email" db:"email"`
	JobRoleName    string     `json:"job_role_name" db:"job_role_name"`
	TypeName       string     `json:"type_name" db:"type_name"`
	AssignmentName string     `json:"assignment_name" db:"assignment_name"`
	StartDate      time.Time  `json:"start_date" db:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty" db:"end_date"`
	DaysInRange    int        `json:"days_in_range" db:"days_in_range"`
}
