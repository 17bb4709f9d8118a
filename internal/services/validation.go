package services

import (
	"context"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
)

// EmployeeRules checks employee payloads in a fixed order: name, email,
// bench start (create only), then bench end against start. The first failure wins.
type EmployeeRules struct {
	employees EmployeeStore
	now       func() time.Time
}

// NewEmployeeRules creates employee rules that read the current time from now
func NewEmployeeRules(employees EmployeeStore, now func() time.Time) *EmployeeRules {
	if now == nil {
		now = time.Now
	}
	return &EmployeeRules{
		employees: employees,
		now:       now,
	}
}

// ValidateNew checks a create payload. MsgNone means the payload is valid.
func (r *EmployeeRules) ValidateNew(ctx context.Context, dto *models.AddEmployeeDto) (Message, error) {
	exists, err := r.employees.EmployeeNameExists(ctx, dto.EmployeeName)
	if err != nil {
		return MsgNone, err
	}
	if exists {
		return MsgEmployeeNameExists, nil
	}

	exists, err = r.employees.EmployeeEmailExists(ctx, dto.Email)
	if err != nil {
		return MsgNone, err
	}
	if exists {
		return MsgEmailExists, nil
	}

	if isPastDate(dto.BenchStartDate, r.now()) {
		return MsgBenchStartPast, nil
	}

	if endsBeforeStart(dto.BenchStartDate, dto.BenchEndDate) {
		return MsgBenchEndBeforeStart, nil
	}

	return MsgNone, nil
}

// ValidateEdit checks a modify payload. Uniqueness ignores the edited employee and
// the start date may lie in the past.
func (r *EmployeeRules) ValidateEdit(ctx context.Context, dto *models.ModifyEmployeeDto) (Message, error) {
	exists, err := r.employees.EmployeeNameExistsExcept(ctx, dto.EmployeeID, dto.EmployeeName)
	if err != nil {
		return MsgNone, err
	}
	if exists {
		return MsgModifyNameExists, nil
	}

	exists, err = r.employees.EmployeeEmailExistsExcept(ctx, dto.EmployeeID, dto.Email)
	if err != nil {
		return MsgNone, err
	}
	if exists {
		return MsgModifyEmailExists, nil
	}

	if endsBeforeStart(dto.BenchStartDate, dto.BenchEndDate) {
		return MsgBenchEndBeforeStart, nil
	}

	return MsgNone, nil
}

// today returns the current calendar day
func (r *EmployeeRules) today() time.Time {
	return dateOnly(r.now())
}

// dateOnly truncates t to midnight in its own location
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// isPastDate reports whether day falls before the calendar day of now,
// both read in day's location
func isPastDate(day, now time.Time) bool {
	return dateOnly(day).Before(dateOnly(now.In(day.Location())))
}

// endsBeforeStart reports whether end is set and falls on an earlier day than start
func endsBeforeStart(start time.Time, end *time.Time) bool {
	if end == nil {
		return false
	}
	return dateOnly(end.In(start.Location())).Before(dateOnly(start))
}
