package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
)

// memoryStore is an in-memory employee, allocation and lookup store for round-trip tests
type memoryStore struct {
	mu          sync.Mutex
	nextID      int64
	employees   map[int64]models.Employee
	allocations []models.Allocation
	jobRoles    []models.JobRole
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID:    1,
		employees: map[int64]models.Employee{},
		jobRoles: []models.JobRole{
			{JobRoleID: 1, JobRoleName: "Developer"},
			{JobRoleID: 2, JobRoleName: "QA Engineer"},
		},
	}
}

func (s *memoryStore) toDto(e models.Employee) models.EmployeeDto {
	dto := models.EmployeeDto{
		EmployeeID:     e.EmployeeID,
		EmployeeName:   e.EmployeeName,
		Email:          e.Email,
		JobRoleID:      e.JobRoleID,
		TypeID:         e.TypeID,
		TypeName:       e.TypeID.String(),
		BenchStartDate: e.BenchStartDate,
		BenchEndDate:   e.BenchEndDate,
		Skills:         []models.Skill{},
	}
	for _, role := range s.jobRoles {
		if role.JobRoleID == e.JobRoleID {
			dto.JobRoleName = role.JobRoleName
		}
	}
	for _, id := range e.SkillIDs {
		dto.Skills = append(dto.Skills, models.Skill{SkillID: id})
	}
	return dto
}

func (s *memoryStore) sorted() []models.EmployeeDto {
	list := make([]models.EmployeeDto, 0, len(s.employees))
	for _, e := range s.employees {
		list = append(list, s.toDto(e))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EmployeeID < list[j].EmployeeID })
	return list
}

func (s *memoryStore) filtered(search *string) []models.EmployeeDto {
	list := s.sorted()
	if search == nil || *search == "" {
		return list
	}
	var out []models.EmployeeDto
	for _, e := range list {
		if strings.Contains(strings.ToLower(e.EmployeeName), *search) || strings.Contains(strings.ToLower(e.Email), *search) {
			out = append(out, e)
		}
	}
	return out
}

func (s *memoryStore) GetAllEmployees(ctx context.Context) ([]models.EmployeeDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(), nil
}

func (s *memoryStore) GetEmployeeByID(ctx context.Context, id int64) (*models.EmployeeDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	dto := s.toDto(e)
	return &dto, nil
}

func (s *memoryStore) GetPaginatedEmployees(ctx context.Context, page, pageSize int, search *string, sortOrder, sortBy string) ([]models.EmployeeDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.filtered(search)
	start := (page - 1) * pageSize
	if start >= len(list) {
		return []models.EmployeeDto{}, nil
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], nil
}

func (s *memoryStore) TotalEmployees(ctx context.Context, search *string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.filtered(search))), nil
}

func (s *memoryStore) matches(excludeID int64, field func(models.Employee) string, value string) bool {
	for id, e := range s.employees {
		if id != excludeID && strings.EqualFold(field(e), strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}

func employeeName(e models.Employee) string  { return e.EmployeeName }
func employeeEmail(e models.Employee) string { return e.Email }

func (s *memoryStore) EmployeeNameExists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches(0, employeeName, name), nil
}

func (s *memoryStore) EmployeeNameExistsExcept(ctx context.Context, excludeID int64, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches(excludeID, employeeName, name), nil
}

func (s *memoryStore) EmployeeEmailExists(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches(0, employeeEmail, email), nil
}

func (s *memoryStore) EmployeeEmailExistsExcept(ctx context.Context, excludeID int64, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches(excludeID, employeeEmail, email), nil
}

func (s *memoryStore) Add(ctx context.Context, employee *models.Employee) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	employee.EmployeeID = s.nextID
	s.nextID++
	s.employees[employee.EmployeeID] = *employee
	return true, nil
}

func (s *memoryStore) Update(ctx context.Context, employee *models.Employee) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[employee.EmployeeID]; !ok {
		return false, nil
	}
	s.employees[employee.EmployeeID] = *employee
	return true, nil
}

func (s *memoryStore) UpdateEmployee(ctx context.Context, employee *models.Employee) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.employees[employee.EmployeeID]
	if !ok {
		return false, nil
	}
	existing.TypeID = employee.TypeID
	existing.BenchStartDate = employee.BenchStartDate
	existing.BenchEndDate = employee.BenchEndDate
	s.employees[employee.EmployeeID] = existing
	return true, nil
}

func (s *memoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return false, nil
	}
	delete(s.employees, id)
	return true, nil
}

func (s *memoryStore) GetEmployeesByDateRangeAndType(ctx context.Context, start, end time.Time, typeID models.AllocationTypeID) ([]models.EmployeeDto, error) {
	return nil, nil
}

func (s *memoryStore) GetEmployeesByJobRoleAndType(ctx context.Context, jobRoleID int64, typeID models.AllocationTypeID) ([]models.EmployeeDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.EmployeeDto
	for _, e := range s.sorted() {
		if e.JobRoleID == jobRoleID && e.TypeID == typeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memoryStore) GetEmployeeData(ctx context.Context, start, end time.Time) ([]models.EmployeeDataRow, error) {
	return nil, nil
}

func (s *memoryStore) InsertAllocation(ctx context.Context, allocation *models.Allocation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	allocation.AllocationID = int64(len(s.allocations) + 1)
	s.allocations = append(s.allocations, *allocation)
	return true, nil
}

func (s *memoryStore) GetAllocationByEmployeeID(ctx context.Context, employeeID int64) (*models.AllocationDetailDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.allocations) - 1; i >= 0; i-- {
		a := s.allocations[i]
		if a.EmployeeID == employeeID {
			return &models.AllocationDetailDto{
				AllocationID: a.AllocationID,
				EmployeeID:   a.EmployeeID,
				TypeID:       a.TypeID,
				TypeName:     a.TypeID.String(),
				StartDate:    a.StartDate,
				EndDate:      a.EndDate,
				Details:      a.Details,
			}, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) GetAllJobRoles(ctx context.Context) ([]models.JobRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.JobRole(nil), s.jobRoles...), nil
}

func (s *memoryStore) GetAllocationTypes(ctx context.Context) ([]models.AllocationType, error) {
	return []models.AllocationType{
		{TypeID: models.AllocationTypeBench, TypeName: "Bench"},
		{TypeID: models.AllocationTypeAllocated, TypeName: "Allocated"},
	}, nil
}

func (s *memoryStore) GetTrainings(ctx context.Context) ([]models.Training, error) {
	return nil, nil
}

func (s *memoryStore) GetInternalProjects(ctx context.Context) ([]models.InternalProject, error) {
	return nil, nil
}

func (s *memoryStore) GetSkills(ctx context.Context) ([]models.Skill, error) {
	return []models.Skill{{SkillID: 1, SkillName: "Go"}}, nil
}
