package services

import (
	"context"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
)

// EmployeeStore is the employee gateway the services depend on
type EmployeeStore interface {
	GetAllEmployees(ctx context.Context) ([]models.EmployeeDto, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.EmployeeDto, error)
	GetPaginatedEmployees(ctx context.Context, page, pageSize int, search *string, sortOrder, sortBy string) ([]models.EmployeeDto, error)
	TotalEmployees(ctx context.Context, search *string) (int64, error)
	EmployeeNameExists(ctx context.Context, name string) (bool, error)
	EmployeeNameExistsExcept(ctx context.Context, excludeID int64, name string) (bool, error)
	EmployeeEmailExists(ctx context.Context, email string) (bool, error)
	EmployeeEmailExistsExcept(ctx context.Context, excludeID int64, email string) (bool, error)
	Add(ctx context.Context, employee *models.Employee) (bool, error)
	Update(ctx context.Context, employee *models.Employee) (bool, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetEmployeesByDateRangeAndType(ctx context.Context, start, end time.Time, typeID models.AllocationTypeID) ([]models.EmployeeDto, error)
	GetEmployeesByJobRoleAndType(ctx context.Context, jobRoleID int64, typeID models.AllocationTypeID) ([]models.EmployeeDto, error)
	GetEmployeeData(ctx context.Context, start, end time.Time) ([]models.EmployeeDataRow, error)
}

// AllocationStore is the allocation gateway
type AllocationStore interface {
	InsertAllocation(ctx context.Context, allocation *models.Allocation) (bool, error)
	GetAllocationByEmployeeID(ctx context.Context, employeeID int64) (*models.AllocationDetailDto, error)
}

// LookupStore reads reference data
type LookupStore interface {
	GetAllJobRoles(ctx context.Context) ([]models.JobRole, error)
	GetAllocationTypes(ctx context.Context) ([]models.AllocationType, error)
	GetTrainings(ctx context.Context) ([]models.Training, error)
	GetInternalProjects(ctx context.Context) ([]models.InternalProject, error)
	GetSkills(ctx context.Context) ([]models.Skill, error)
}

// UserStore is the login gateway
type UserStore interface {
	UserExists(ctx context.Context, loginID string) (bool, error)
	GetUserByLoginID(ctx context.Context, loginID string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	RegisterUser(ctx context.Context, user *models.User) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) (bool, error)
	GetAllSecurityQuestions(ctx context.Context) ([]models.SecurityQuestion, error)
	GetUserRoles(ctx context.Context) ([]models.UserRole, error)
}

// Transactor runs fn as one unit of work. Stores called with the ctx passed to fn
// take part in the same transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
