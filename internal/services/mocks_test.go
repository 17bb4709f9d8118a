package services

import (
	"context"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockEmployeeStore struct {
	mock.Mock
}

func (m *mockEmployeeStore) GetAllEmployees(ctx context.Context) ([]models.EmployeeDto, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]models.EmployeeDto)
	return employees, args.Error(1)
}

func (m *mockEmployeeStore) GetEmployeeByID(ctx context.Context, id int64) (*models.EmployeeDto, error) {
	args := m.Called(ctx, id)
	employee, _ := args.Get(0).(*models.EmployeeDto)
	return employee, args.Error(1)
}

func (m *mockEmployeeStore) GetPaginatedEmployees(ctx context.Context, page, pageSize int, search *string, sortOrder, sortBy string) ([]models.EmployeeDto, error) {
	args := m.Called(ctx, page, pageSize, search, sortOrder, sortBy)
	employees, _ := args.Get(0).([]models.EmployeeDto)
	return employees, args.Error(1)
}

func (m *mockEmployeeStore) TotalEmployees(ctx context.Context, search *string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeStore) EmployeeNameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) EmployeeNameExistsExcept(ctx context.Context, excludeID int64, name string) (bool, error) {
	args := m.Called(ctx, excludeID, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) EmployeeEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) EmployeeEmailExistsExcept(ctx context.Context, excludeID int64, email string) (bool, error) {
	args := m.Called(ctx, excludeID, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) Add(ctx context.Context, employee *models.Employee) (bool, error) {
	args := m.Called(ctx, employee)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) Update(ctx context.Context, employee *models.Employee) (bool, error) {
	args := m.Called(ctx, employee)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) UpdateEmployee(ctx context.Context, employee *models.Employee) (bool, error) {
	args := m.Called(ctx, employee)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) GetEmployeesByDateRangeAndType(ctx context.Context, start, end time.Time, typeID models.AllocationTypeID) ([]models.EmployeeDto, error) {
	args := m.Called(ctx, start, end, typeID)
	employees, _ := args.Get(0).([]models.EmployeeDto)
	return employees, args.Error(1)
}

func (m *mockEmployeeStore) GetEmployeesByJobRoleAndType(ctx context.Context, jobRoleID int64, typeID models.AllocationTypeID) ([]models.EmployeeDto, error) {
	args := m.Called(ctx, jobRoleID, typeID)
	employees, _ := args.Get(0).([]models.EmployeeDto)
	return employees, args.Error(1)
}

func (m *mockEmployeeStore) GetEmployeeData(ctx context.Context, start, end time.Time) ([]models.EmployeeDataRow, error) {
	args := m.Called(ctx, start, end)
	rows, _ := args.Get(0).([]models.EmployeeDataRow)
	return rows, args.Error(1)
}

type mockAllocationStore struct {
	mock.Mock
}

func (m *mockAllocationStore) InsertAllocation(ctx context.Context, allocation *models.Allocation) (bool, error) {
	args := m.Called(ctx, allocation)
	return args.Bool(0), args.Error(1)
}

func (m *mockAllocationStore) GetAllocationByEmployeeID(ctx context.Context, employeeID int64) (*models.AllocationDetailDto, error) {
	args := m.Called(ctx, employeeID)
	allocation, _ := args.Get(0).(*models.AllocationDetailDto)
	return allocation, args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) UserExists(ctx context.Context, loginID string) (bool, error) {
	args := m.Called(ctx, loginID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) GetUserByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	args := m.Called(ctx, loginID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) RegisterUser(ctx context.Context, user *models.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) UpdateUser(ctx context.Context, user *models.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) GetAllSecurityQuestions(ctx context.Context) ([]models.SecurityQuestion, error) {
	args := m.Called(ctx)
	questions, _ := args.Get(0).([]models.SecurityQuestion)
	return questions, args.Error(1)
}

func (m *mockUserStore) GetUserRoles(ctx context.Context) ([]models.UserRole, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]models.UserRole)
	return roles, args.Error(1)
}

// fakeTx runs fn directly and records how each unit of work ended
type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}
