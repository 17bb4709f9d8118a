package models

import "time"

// JobRole is a job role lookup row
type JobRole struct {
	JobRoleID   int64  `json:"job_role_id" db:"job_role_id"`
	JobRoleName string `json:"job_role_name" db:"job_role_name"`
}

// AllocationType is an allocation type lookup row
type AllocationType struct {
	TypeID   AllocationTypeID `json:"type_id" db:"type_id"`
	TypeName string           `json:"type_name" db:"type_name"`
}

// Training is a training programme an employee can be allocated to
type Training struct {
	TrainingID   int64      `json:"training_id" db:"training_id"`
	TrainingName string     `json:"training_name" db:"training_name"`
	Description  *string    `json:"description,omitempty" db:"description"`
	StartDate    *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
}

// InternalProject is an internal project an employee can be allocated to
type InternalProject struct {
	InternalProjectID int64   `json:"internal_project_id" db:"internal_project_id"`
	ProjectName       string  `json:"project_name" db:"project_name"`
	Description       *string `json:"description,omitempty" db:"description"`
}

// Skill is a skill that can be attached to employees
type Skill struct {
	SkillID   int64  `json:"skill_id" db:"skill_id"`
	SkillName string `json:"skill_name" db:"skill_name"`
}
