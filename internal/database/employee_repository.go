package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/lib/pq"
)

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db Querier
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db Querier) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

const employeeSelect = `
	SELECT e.employee_id, e.employee_name, e.email, e.job_role_id, jr.job_role_name,
	       e.type_id, t.type_name, e.bench_start_date, e.bench_end_date
	FROM employees e
	JOIN job_roles jr ON jr.job_role_id = e.job_role_id
	JOIN allocation_types t ON t.type_id = e.type_id
`

// employeeSortColumns whitelists the sortBy values accepted from clients
var employeeSortColumns = map[string]string{
	"name":           "e.employee_name",
	"email":          "e.email",
	"benchstartdate": "e.bench_start_date",
	"benchenddate":   "e.bench_end_date",
	"jobrole":        "jr.job_role_name",
	"type":           "t.type_name",
}

// GetAllEmployees returns every employee ordered by id
func (r *EmployeeRepository) GetAllEmployees(ctx context.Context) ([]models.EmployeeDto, error) {
	q := querierFrom(ctx, r.db)

	employees := []models.EmployeeDto{}
	if err := q.SelectContext(ctx, &employees, employeeSelect+` ORDER BY e.employee_id`); err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	if err := r.attachSkills(ctx, q, employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee by ID, returning nil when it does not exist
func (r *EmployeeRepository) GetEmployeeByID(ctx context.Context, id int64) (*models.EmployeeDto, error) {
	q := querierFrom(ctx, r.db)

	var employee models.EmployeeDto
	err := q.GetContext(ctx, &employee, employeeSelect+` WHERE e.employee_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	list := []models.EmployeeDto{employee}
	if err := r.attachSkills(ctx, q, list); err != nil {
		return nil, err
	}

	return &list[0], nil
}

// GetPaginatedEmployees returns one page of employees filtered by a case-insensitive
// substring of name or email. A nil or empty search applies no filter.
func (r *EmployeeRepository) GetPaginatedEmployees(ctx context.Context, page, pageSize int, search *string, sortOrder, sortBy string) ([]models.EmployeeDto, error) {
	q := querierFrom(ctx, r.db)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	where, args := employeeSearchClause(search)

	query := employeeSelect + where + " ORDER BY " + employeeOrderClause(sortOrder, sortBy)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	employees := []models.EmployeeDto{}
	if err := q.SelectContext(ctx, &employees, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get paginated employees: %w", err)
	}

	if err := r.attachSkills(ctx, q, employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// TotalEmployees counts the employees matching search
func (r *EmployeeRepository) TotalEmployees(ctx context.Context, search *string) (int64, error) {
	q := querierFrom(ctx, r.db)

	where, args := employeeSearchClause(search)

	var count int64
	if err := q.QueryRowxContext(ctx, `SELECT COUNT(*) FROM employees e`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// EmployeeNameExists reports whether any employee already has name
func (r *EmployeeRepository) EmployeeNameExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE LOWER(employee_name) = LOWER($1))`, strings.TrimSpace(name))
}

// EmployeeNameExistsExcept reports whether an employee other than excludeID has name
func (r *EmployeeRepository) EmployeeNameExistsExcept(ctx context.Context, excludeID int64, name string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE LOWER(employee_name) = LOWER($1) AND employee_id <> $2)`, strings.TrimSpace(name), excludeID)
}

// EmployeeEmailExists reports whether any employee already has email
func (r *EmployeeRepository) EmployeeEmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1))`, strings.TrimSpace(email))
}

// EmployeeEmailExistsExcept reports whether an employee other than excludeID has email
func (r *EmployeeRepository) EmployeeEmailExistsExcept(ctx context.Context, excludeID int64, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1) AND employee_id <> $2)`, strings.TrimSpace(email), excludeID)
}

func (r *EmployeeRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var found bool
	if err := querierFrom(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return found, nil
}

// Add inserts the employee and its skill links. On success employee.EmployeeID is set.
func (r *EmployeeRepository) Add(ctx context.Context, employee *models.Employee) (bool, error) {
	q := querierFrom(ctx, r.db)

	now := time.Now()
	query := `
		INSERT INTO employees (
			employee_name, email, job_role_id, type_id,
			bench_start_date, bench_end_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING employee_id
	`

	err := q.QueryRowxContext(ctx, query,
		employee.EmployeeName,
		employee.Email,
		employee.JobRoleID,
		employee.TypeID,
		employee.BenchStartDate,
		employee.BenchEndDate,
		now,
		now,
	).Scan(&employee.EmployeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to add employee: %w", err)
	}

	employee.CreatedAt = now
	employee.UpdatedAt = now

	if err := insertSkills(ctx, q, employee.EmployeeID, employee.SkillIDs); err != nil {
		return false, err
	}

	return true, nil
}

// Update rewrites the editable employee columns and replaces its skill links
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) (bool, error) {
	q := querierFrom(ctx, r.db)

	query := `
		UPDATE employees
		SET employee_name = $1,
		    email = $2,
		    job_role_id = $3,
		    bench_start_date = $4,
		    bench_end_date = $5,
		    updated_at = $6
		WHERE employee_id = $7
	`

	result, err := q.ExecContext(ctx, query,
		employee.EmployeeName,
		employee.Email,
		employee.JobRoleID,
		employee.BenchStartDate,
		employee.BenchEndDate,
		time.Now(),
		employee.EmployeeID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM employee_skills WHERE employee_id = $1`, employee.EmployeeID); err != nil {
		return false, fmt.Errorf("failed to clear employee skills: %w", err)
	}
	if err := insertSkills(ctx, q, employee.EmployeeID, employee.SkillIDs); err != nil {
		return false, err
	}

	return true, nil
}

// UpdateEmployee persists an allocation type switch: type and bench dates only
func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, employee *models.Employee) (bool, error) {
	query := `
		UPDATE employees
		SET type_id = $1,
		    bench_start_date = $2,
		    bench_end_date = $3,
		    updated_at = $4
		WHERE employee_id = $5
	`

	result, err := querierFrom(ctx, r.db).ExecContext(ctx, query,
		employee.TypeID,
		employee.BenchStartDate,
		employee.BenchEndDate,
		time.Now(),
		employee.EmployeeID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update employee allocation type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete removes an employee. Skill links and allocations cascade.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := querierFrom(ctx, r.db).ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetEmployeesByDateRangeAndType returns employees of typeID whose bench period
// overlaps [start, end]
func (r *EmployeeRepository) GetEmployeesByDateRangeAndType(ctx context.Context, start, end time.Time, typeID models.AllocationTypeID) ([]models.EmployeeDto, error) {
	q := querierFrom(ctx, r.db)

	query := employeeSelect + `
		WHERE e.type_id = $1
		  AND e.bench_start_date <= $3
		  AND (e.bench_end_date IS NULL OR e.bench_end_date >= $2)
		ORDER BY e.bench_start_date, e.employee_id
	`

	employees := []models.EmployeeDto{}
	if err := q.SelectContext(ctx, &employees, query, typeID, start, end); err != nil {
		return nil, fmt.Errorf("failed to get employees by date range: %w", err)
	}

	if err := r.attachSkills(ctx, q, employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployeesByJobRoleAndType returns employees with the given job role and type
func (r *EmployeeRepository) GetEmployeesByJobRoleAndType(ctx context.Context, jobRoleID int64, typeID models.AllocationTypeID) ([]models.EmployeeDto, error) {
	q := querierFrom(ctx, r.db)

	query := employeeSelect + `
		WHERE e.job_role_id = $1 AND e.type_id = $2
		ORDER BY e.employee_name
	`

	employees := []models.EmployeeDto{}
	if err := q.SelectContext(ctx, &employees, query, jobRoleID, typeID); err != nil {
		return nil, fmt.Errorf("failed to get employees by job role: %w", err)
	}

	if err := r.attachSkills(ctx, q, employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployeeData returns the allocation report for allocations overlapping [start, end].
// DaysInRange counts the inclusive days of each allocation clipped to the range.
func (r *EmployeeRepository) GetEmployeeData(ctx context.Context, start, end time.Time) ([]models.EmployeeDataRow, error) {
	query := `
		SELECT e.employee_id, e.employee_name, e.email, jr.job_role_name, t.type_name,
		       COALESCE(tr.training_name, ip.project_name, 'Bench') AS assignment_name,
		       a.start_date, a.end_date,
		       (LEAST(COALESCE(a.end_date, $2::date), $2::date)
		        - GREATEST(a.start_date, $1::date) + 1) AS days_in_range
		FROM allocations a
		JOIN employees e ON e.employee_id = a.employee_id
		JOIN job_roles jr ON jr.job_role_id = e.job_role_id
		JOIN allocation_types t ON t.type_id = a.type_id
		LEFT JOIN trainings tr ON tr.training_id = a.training_id
		LEFT JOIN internal_projects ip ON ip.internal_project_id = a.internal_project_id
		WHERE a.start_date <= $2::date
		  AND (a.end_date IS NULL OR a.end_date >= $1::date)
		ORDER BY e.employee_name, a.start_date
	`

	rows := []models.EmployeeDataRow{}
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &rows, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to get employee data: %w", err)
	}

	return rows, nil
}

// attachSkills loads the skills of every employee in one query
func (r *EmployeeRepository) attachSkills(ctx context.Context, q Querier, employees []models.EmployeeDto) error {
	if len(employees) == 0 {
		return nil
	}

	ids := make([]int64, len(employees))
	index := make(map[int64]int, len(employees))
	for i := range employees {
		ids[i] = employees[i].EmployeeID
		index[employees[i].EmployeeID] = i
		employees[i].Skills = []models.Skill{}
	}

	var links []struct {
		EmployeeID int64  `db:"employee_id"`
		SkillID    int64  `db:"skill_id"`
		SkillName  string `db:"skill_name"`
	}

	query := `
		SELECT es.employee_id, s.skill_id, s.skill_name
		FROM employee_skills es
		JOIN skills s ON s.skill_id = es.skill_id
		WHERE es.employee_id = ANY($1)
		ORDER BY s.skill_name
	`
	if err := q.SelectContext(ctx, &links, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to get employee skills: %w", err)
	}

	for _, link := range links {
		if i, ok := index[link.EmployeeID]; ok {
			employees[i].Skills = append(employees[i].Skills, models.Skill{SkillID: link.SkillID, SkillName: link.SkillName})
		}
	}

	return nil
}

func insertSkills(ctx context.Context, q Querier, employeeID int64, skillIDs []int64) error {
	if len(skillIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO employee_skills (employee_id, skill_id)
		SELECT $1, UNNEST($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	if _, err := q.ExecContext(ctx, query, employeeID, pq.Array(skillIDs)); err != nil {
		return fmt.Errorf("failed to add employee skills: %w", err)
	}

	return nil
}

// employeeSearchClause builds the WHERE clause for the name/email search.
// The search term is matched as a literal substring.
func employeeSearchClause(search *string) (string, []interface{}) {
	if search == nil || strings.TrimSpace(*search) == "" {
		return "", nil
	}

	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(*search))) + "%"
	return ` WHERE (LOWER(e.employee_name) LIKE $1 OR LOWER(e.email) LIKE $1)`, []interface{}{pattern}
}

func employeeOrderClause(sortOrder, sortBy string) string {
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "desc") {
		direction = "DESC"
	}

	column, ok := employeeSortColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return "e.employee_id " + direction
	}

	return column + " " + direction + ", e.employee_id " + direction
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
