package database

import (
	"context"
	"fmt"

	"github.com/benchtrack/allocation-backend/internal/models"
)

// LookupRepository reads the reference tables used by employee forms
type LookupRepository struct {
	db Querier
}

// NewLookupRepository creates a new lookup repository
func NewLookupRepository(db Querier) *LookupRepository {
	return &LookupRepository{
		db: db,
	}
}

// GetAllJobRoles returns all job roles ordered by name
func (r *LookupRepository) GetAllJobRoles(ctx context.Context) ([]models.JobRole, error) {
	roles := []models.JobRole{}
	query := `SELECT job_role_id, job_role_name FROM job_roles ORDER BY job_role_name`
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &roles, query); err != nil {
		return nil, fmt.Errorf("failed to get job roles: %w", err)
	}
	return roles, nil
}

// GetAllocationTypes returns the allocation type lookup rows
func (r *LookupRepository) GetAllocationTypes(ctx context.Context) ([]models.AllocationType, error) {
	types := []models.AllocationType{}
	query := `SELECT type_id, type_name FROM allocation_types ORDER BY type_id`
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("failed to get allocation types: %w", err)
	}
	return types, nil
}

// GetTrainings returns all trainings, newest first
func (r *LookupRepository) GetTrainings(ctx context.Context) ([]models.Training, error) {
	trainings := []models.Training{}
	query := `
		SELECT training_id, training_name, description, start_date, end_date
		FROM trainings
		ORDER BY start_date DESC NULLS LAST, training_name
	`
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &trainings, query); err != nil {
		return nil, fmt.Errorf("failed to get trainings: %w", err)
	}
	return trainings, nil
}

// GetInternalProjects returns all internal projects ordered by name
func (r *LookupRepository) GetInternalProjects(ctx context.Context) ([]models.InternalProject, error) {
	projects := []models.InternalProject{}
	query := `SELECT internal_project_id, project_name, description FROM internal_projects ORDER BY project_name`
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("failed to get internal projects: %w", err)
	}
	return projects, nil
}

// GetSkills returns all skills ordered by name
func (r *LookupRepository) GetSkills(ctx context.Context) ([]models.Skill, error) {
	skills := []models.Skill{}
	query := `SELECT skill_id, skill_name FROM skills ORDER BY skill_name`
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &skills, query); err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}
	return skills, nil
}
