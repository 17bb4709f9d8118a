package handlers

import (
	"context"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// mockService implements every role and auth surface
type mockService struct {
	mock.Mock
}

func result[T any](args mock.Arguments) (*models.ServiceResponse[T], error) {
	resp, _ := args.Get(0).(*models.ServiceResponse[T])
	return resp, args.Error(1)
}

func (m *mockService) GetPaginatedEmployees(ctx context.Context, page, pageSize int, search *string, sortOrder, sortBy string) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	return result[[]models.EmployeeDto](m.Called(ctx, page, pageSize, search, sortOrder, sortBy))
}

func (m *mockService) TotalEmployees(ctx context.Context, search *string) (*models.ServiceResponse[int64], error) {
	return result[int64](m.Called(ctx, search))
}

func (m *mockService) GetAllEmployees(ctx context.Context) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	return result[[]models.EmployeeDto](m.Called(ctx))
}

func (m *mockService) GetEmployeeByID(ctx context.Context, id int64) (*models.ServiceResponse[models.EmployeeDto], error) {
	return result[models.EmployeeDto](m.Called(ctx, id))
}

func (m *mockService) AddEmployee(ctx context.Context, caller models.Caller, dto *models.AddEmployeeDto) (*models.ServiceResponse[models.Employee], error) {
	return result[models.Employee](m.Called(ctx, caller, dto))
}

func (m *mockService) ModifyEmployee(ctx context.Context, caller models.Caller, dto *models.ModifyEmployeeDto) (*models.ServiceResponse[models.EmployeeDto], error) {
	return result[models.EmployeeDto](m.Called(ctx, caller, dto))
}

func (m *mockService) UpdateEmployee(ctx context.Context, caller models.Caller, dto *models.UpdateAllocationDto) (*models.ServiceResponse[models.EmployeeDto], error) {
	return result[models.EmployeeDto](m.Called(ctx, caller, dto))
}

func (m *mockService) RemoveEmployee(ctx context.Context, caller models.Caller, id int64) (*models.ServiceResponse[int64], error) {
	return result[int64](m.Called(ctx, caller, id))
}

func (m *mockService) GetEmployeesByDateRangeAndType(ctx context.Context, start, end time.Time, typeID models.AllocationTypeID) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	return result[[]models.EmployeeDto](m.Called(ctx, start, end, typeID))
}

func (m *mockService) GetEmployeesByJobRoleAndType(ctx context.Context, jobRoleID int64, typeID models.AllocationTypeID) (*models.ServiceResponse[[]models.EmployeeDto], error) {
	return result[[]models.EmployeeDto](m.Called(ctx, jobRoleID, typeID))
}

func (m *mockService) GetAllJobRoles(ctx context.Context) (*models.ServiceResponse[[]models.JobRole], error) {
	return result[[]models.JobRole](m.Called(ctx))
}

func (m *mockService) GetEmployeeData(ctx context.Context, start, end time.Time) (*models.ServiceResponse[[]models.EmployeeDataRow], error) {
	return result[[]models.EmployeeDataRow](m.Called(ctx, start, end))
}

func (m *mockService) AddAllocation(ctx context.Context, caller models.Caller, dto *models.AddAllocationDto) (*models.ServiceResponse[models.Allocation], error) {
	return result[models.Allocation](m.Called(ctx, caller, dto))
}

func (m *mockService) GetAllocationTypes(ctx context.Context) (*models.ServiceResponse[[]models.AllocationType], error) {
	return result[[]models.AllocationType](m.Called(ctx))
}

func (m *mockService) GetTrainings(ctx context.Context) (*models.ServiceResponse[[]models.Training], error) {
	return result[[]models.Training](m.Called(ctx))
}

func (m *mockService) GetInternalProjects(ctx context.Context) (*models.ServiceResponse[[]models.InternalProject], error) {
	return result[[]models.InternalProject](m.Called(ctx))
}

func (m *mockService) GetSkills(ctx context.Context) (*models.ServiceResponse[[]models.Skill], error) {
	return result[[]models.Skill](m.Called(ctx))
}

func (m *mockService) GetAllocationByEmpID(ctx context.Context, employeeID int64) (*models.ServiceResponse[models.AllocationDetailDto], error) {
	return result[models.AllocationDetailDto](m.Called(ctx, employeeID))
}

func (m *mockService) RegisterUser(ctx context.Context, dto *models.RegisterUserDto) (*models.ServiceResponse[models.User], error) {
	return result[models.User](m.Called(ctx, dto))
}

func (m *mockService) Login(ctx context.Context, dto *models.LoginDto) (*models.ServiceResponse[models.TokenDto], error) {
	return result[models.TokenDto](m.Called(ctx, dto))
}

func (m *mockService) RefreshToken(ctx context.Context, refreshToken string) (*models.ServiceResponse[models.TokenDto], error) {
	return result[models.TokenDto](m.Called(ctx, refreshToken))
}

func (m *mockService) ResetPassword(ctx context.Context, dto *models.ResetPasswordDto) (*models.ServiceResponse[bool], error) {
	return result[bool](m.Called(ctx, dto))
}

func (m *mockService) GetAllSecurityQuestions(ctx context.Context) (*models.ServiceResponse[[]models.SecurityQuestion], error) {
	return result[[]models.SecurityQuestion](m.Called(ctx))
}

func (m *mockService) GetUserRoles(ctx context.Context) (*models.ServiceResponse[[]models.UserRole], error) {
	return result[[]models.UserRole](m.Called(ctx))
}
