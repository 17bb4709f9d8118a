package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// day returns midnight UTC offset days from testNow
func day(offset int) time.Time {
	return time.Date(2026, 10, 16+offset, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func newAddDto() *models.AddEmployeeDto {
	return &models.AddEmployeeDto{
		EmployeeName:   "Alice",
		Email:          "alice@x.com",
		JobRoleID:      1,
		BenchStartDate: day(1),
	}
}

func TestValidateNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Name Checked First", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExists", mock.Anything, "Alice").Return(true, nil)
		rules := NewEmployeeRules(store, fixedClock)

		dto := newAddDto()
		dto.BenchStartDate = day(-3)
		dto.BenchEndDate = timePtr(day(-5))

		msg, err := rules.ValidateNew(ctx, dto)
		require.NoError(t, err)
		assert.Equal(t, MsgEmployeeNameExists, msg)
		assert.Equal(t, "Employee name already exists", msg.Text())
		store.AssertNotCalled(t, "EmployeeEmailExists", mock.Anything, mock.Anything)
	})

	t.Run("Email Checked Second", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExists", mock.Anything, "Alice").Return(false, nil)
		store.On("EmployeeEmailExists", mock.Anything, "alice@x.com").Return(true, nil)
		rules := NewEmployeeRules(store, fixedClock)

		msg, err := rules.ValidateNew(ctx, newAddDto())
		require.NoError(t, err)
		assert.Equal(t, "Email address already exists", msg.Text())
	})

	t.Run("Past Start Wins Over End Ordering", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExists", mock.Anything, mock.Anything).Return(false, nil)
		store.On("EmployeeEmailExists", mock.Anything, mock.Anything).Return(false, nil)
		rules := NewEmployeeRules(store, fixedClock)

		dto := newAddDto()
		dto.BenchStartDate = day(-1)
		dto.BenchEndDate = timePtr(day(-2))

		msg, err := rules.ValidateNew(ctx, dto)
		require.NoError(t, err)
		assert.Equal(t, "Bench start date cannot be past date.", msg.Text())
	})

	t.Run("Today Is Not Past", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExists", mock.Anything, mock.Anything).Return(false, nil)
		store.On("EmployeeEmailExists", mock.Anything, mock.Anything).Return(false, nil)
		rules := NewEmployeeRules(store, fixedClock)

		dto := newAddDto()
		dto.BenchStartDate = day(0)

		msg, err := rules.ValidateNew(ctx, dto)
		require.NoError(t, err)
		assert.Equal(t, MsgNone, msg)
	})

	t.Run("End Before Start", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExists", mock.Anything, mock.Anything).Return(false, nil)
		store.On("EmployeeEmailExists", mock.Anything, mock.Anything).Return(false, nil)
		rules := NewEmployeeRules(store, fixedClock)

		dto := newAddDto()
		dto.BenchStartDate = day(5)
		dto.BenchEndDate = timePtr(day(4))

		msg, err := rules.ValidateNew(ctx, dto)
		require.NoError(t, err)
		assert.Equal(t, "Bench end date cannot be less that bench start date.", msg.Text())
		assert.Equal(t, models.FailureInvalidDateRange, msg.Kind())
	})

	t.Run("Store Error Propagates", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExists", mock.Anything, mock.Anything).Return(false, dbErr)
		rules := NewEmployeeRules(store, fixedClock)

		_, err := rules.ValidateNew(ctx, newAddDto())
		assert.Same(t, dbErr, err)
	})
}

func TestValidateEdit(t *testing.T) {
	ctx := context.Background()

	newDto := func() *models.ModifyEmployeeDto {
		return &models.ModifyEmployeeDto{
			EmployeeID:     7,
			EmployeeName:   "Alice",
			Email:          "alice@x.com",
			JobRoleID:      1,
			BenchStartDate: day(-30),
		}
	}

	t.Run("Name Excludes Self", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExistsExcept", mock.Anything, int64(7), "Alice").Return(true, nil)
		rules := NewEmployeeRules(store, fixedClock)

		msg, err := rules.ValidateEdit(ctx, newDto())
		require.NoError(t, err)
		assert.Equal(t, "Employee name already exists.", msg.Text())
	})

	t.Run("Email Excludes Self", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExistsExcept", mock.Anything, int64(7), "Alice").Return(false, nil)
		store.On("EmployeeEmailExistsExcept", mock.Anything, int64(7), "alice@x.com").Return(true, nil)
		rules := NewEmployeeRules(store, fixedClock)

		msg, err := rules.ValidateEdit(ctx, newDto())
		require.NoError(t, err)
		assert.Equal(t, "Email address already exists.", msg.Text())
	})

	t.Run("Past Start Allowed", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExistsExcept", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		store.On("EmployeeEmailExistsExcept", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		rules := NewEmployeeRules(store, fixedClock)

		msg, err := rules.ValidateEdit(ctx, newDto())
		require.NoError(t, err)
		assert.Equal(t, MsgNone, msg)
	})

	t.Run("End Before Start", func(t *testing.T) {
		store := new(mockEmployeeStore)
		store.On("EmployeeNameExistsExcept", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		store.On("EmployeeEmailExistsExcept", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		rules := NewEmployeeRules(store, fixedClock)

		dto := newDto()
		dto.BenchEndDate = timePtr(day(-31))

		msg, err := rules.ValidateEdit(ctx, dto)
		require.NoError(t, err)
		assert.Equal(t, MsgBenchEndBeforeStart, msg)
	})
}

func TestDateHelpers(t *testing.T) {
	colombo := time.FixedZone("Asia/Colombo", 5*3600+1800)

	t.Run("Past Date", func(t *testing.T) {
		assert.True(t, isPastDate(day(-1), testNow))
		assert.False(t, isPastDate(day(0), testNow))
		assert.False(t, isPastDate(day(0).Add(23*time.Hour), testNow))
		assert.False(t, isPastDate(day(1), testNow))
	})

	t.Run("Past Date Uses The Date's Location", func(t *testing.T) {
		// 20:00 UTC on the 16th is already the 17th in Colombo
		now := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)
		assert.True(t, isPastDate(time.Date(2026, 10, 16, 0, 0, 0, 0, colombo), now))
		assert.False(t, isPastDate(time.Date(2026, 10, 17, 0, 0, 0, 0, colombo), now))
	})

	t.Run("End Before Start", func(t *testing.T) {
		assert.False(t, endsBeforeStart(day(1), nil))
		assert.False(t, endsBeforeStart(day(1), timePtr(day(1))))
		assert.False(t, endsBeforeStart(day(1).Add(10*time.Hour), timePtr(day(1))))
		assert.True(t, endsBeforeStart(day(1), timePtr(day(0))))
	})
}
