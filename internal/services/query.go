package services

import (
	"context"
	"strings"

	"github.com/benchtrack/allocation-backend/internal/config"
	"github.com/benchtrack/allocation-backend/internal/models"
)

// EmployeeQueries implements the search, sort and paging contract shared by every role
type EmployeeQueries struct {
	employees EmployeeStore
	paging    config.PaginationConfig
}

// NewEmployeeQueries creates the shared employee query service
func NewEmployeeQueries(employees EmployeeStore, paging config.PaginationConfig) *EmployeeQueries {
	if paging.DefaultPageSize < 1 {
		paging.DefaultPageSize = 10
	}
	if paging.MaxPageSize < paging.DefaultPageSize {
		paging.MaxPageSize = paging.DefaultPageSize
	}
	return &EmployeeQueries{
		employees: employees,
		paging:    paging,
	}
}

// GetPaginatedEmployees returns one 1-indexed page of employees. A nil search is
// passed to the store as nil.
func (q *EmployeeQueries) GetPaginatedEmployees(ctx context.Context, page, pageSize int, search *string, sortOrder, sortBy string) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	page, pageSize = q.clampPage(page, pageSize)

	employees, err := q.employees.GetPaginatedEmployees(ctx, page, pageSize, normalizeSearch(search), sortOrder, sortBy)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return failure[[]models.EmployeeDto](MsgNoRecords), nil
	}

	return success(employees, MsgNone), nil
}

// TotalEmployees counts employees matching search. A zero count is still a success.
func (q *EmployeeQueries) TotalEmployees(ctx context.Context, search *string) (*models.ServiceResponse[int64], error) {
	total, err := q.employees.TotalEmployees(ctx, normalizeSearch(search))
	if err != nil {
		return nil, err
	}

	return success(total, MsgNone), nil
}

// GetAllEmployees returns every employee
func (q *EmployeeQueries) GetAllEmployees(ctx context.Context) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	employees, err := q.employees.GetAllEmployees(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return failure[[]models.EmployeeDto](MsgNoRecords), nil
	}

	return success(employees, MsgNone), nil
}

// GetEmployeeByID returns a single employee with its skills
func (q *EmployeeQueries) GetEmployeeByID(ctx context.Context, id int64) (*models.ServiceResponse[models.EmployeeDto], error) {
	employee, err := q.employees.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return failure[models.EmployeeDto](MsgEmployeeNotFound), nil
	}

	return success(*employee, MsgNone), nil
}

func (q *EmployeeQueries) clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = q.paging.DefaultPageSize
	case pageSize > q.paging.MaxPageSize:
		pageSize = q.paging.MaxPageSize
	}
	return page, pageSize
}

// normalizeSearch trims and lowercases a search term, keeping nil as nil.
// Lowercasing is per rune so it agrees with LOWER() on the stored columns.
func normalizeSearch(search *string) *string {
	if search == nil {
		return nil
	}
	lowered := strings.ToLower(strings.TrimSpace(*search))
	return &lowered
}
