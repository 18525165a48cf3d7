package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/config"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/payroll"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

// fakeTimesheetService returns canned period totals.
type fakeTimesheetService struct {
	totals timesheet.PeriodTotals
}

func (f *fakeTimesheetService) GetDaySummary(ctx context.Context, employeeID, date string) (timesheet.DaySummary, error) {
	return timesheet.DaySummary{}, nil
}

func (f *fakeTimesheetService) GetPeriodSummary(ctx context.Context, employeeID, startDate, endDate string) (timesheet.PeriodSummary, error) {
	return timesheet.PeriodSummary{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Totals:     f.totals,
	}, nil
}

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		Timezone:             "UTC",
		Location:             time.UTC,
		DailyBaselineMinutes: 480,
		OvertimeMultiplier:   decimal.RequireFromString("1.5"),
		CurrencyMinorUnits:   2,
	}
}

func newTestPayrollService(baseSalary string, totals timesheet.PeriodTotals) payroll.Service {
	employees := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", FullName: "Test Employee", BaseSalary: decimal.RequireFromString(baseSalary)},
		},
	}
	return NewPayrollService(testAttendanceConfig(), employees, &fakeTimesheetService{totals: totals})
}

func TestPayrollService_Compute_BusinessDaysFromCalendar(t *testing.T) {
	t.Parallel()
	svc := newTestPayrollService("8400", timesheet.PeriodTotals{})

	// August 2026: 31 days, starts on a Saturday, 21 weekdays
	result, err := svc.ComputePayroll(context.Background(), "emp-1", 8, 2026)
	require.NoError(t, err)
	assert.Equal(t, 21, result.BusinessDays)

	// February 2026: 28 days, 20 weekdays
	result, err = svc.ComputePayroll(context.Background(), "emp-1", 2, 2026)
	require.NoError(t, err)
	assert.Equal(t, 20, result.BusinessDays)
}

func TestPayrollService_Compute_HourlyRate(t *testing.T) {
	t.Parallel()
	svc := newTestPayrollService("8400", timesheet.PeriodTotals{})

	// 8400 / (8h * 21 business days) = 50 per hour
	result, err := svc.ComputePayroll(context.Background(), "emp-1", 8, 2026)
	require.NoError(t, err)
	assert.True(t, result.HourlyRate.Equal(decimal.RequireFromString("50")),
		"expected rate 50, got %s", result.HourlyRate)
}

func TestPayrollService_Compute_OvertimePremium(t *testing.T) {
	t.Parallel()
	svc := newTestPayrollService("8400", timesheet.PeriodTotals{
		WorkedMinutes:   720,
		OvertimeMinutes: 240,
	})

	result, err := svc.ComputePayroll(context.Background(), "emp-1", 8, 2026)
	require.NoError(t, err)

	// rate 50: regular 480 min = 400, overtime 50 * 1.5 * 4h = 300
	assert.True(t, result.RegularPay.Equal(decimal.RequireFromString("400")),
		"expected regular 400, got %s", result.RegularPay)
	assert.True(t, result.OvertimePay.Equal(decimal.RequireFromString("300")),
		"expected overtime 300, got %s", result.OvertimePay)
	assert.True(t, result.TotalPay.Equal(decimal.RequireFromString("700")),
		"expected total 700, got %s", result.TotalPay)
}

func TestPayrollService_Compute_RoundsFinalTotalOnly(t *testing.T) {
	t.Parallel()
	svc := newTestPayrollService("1000", timesheet.PeriodTotals{
		WorkedMinutes: 100,
	})

	result, err := svc.ComputePayroll(context.Background(), "emp-1", 8, 2026)
	require.NoError(t, err)

	// rate = 1000/168 is non-terminating; intermediates keep full precision
	expectedRaw := decimal.RequireFromString("1000").
		Div(decimal.NewFromInt(168)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(60))
	assert.True(t, result.RegularPay.Equal(expectedRaw),
		"expected unrounded regular pay %s, got %s", expectedRaw, result.RegularPay)
	assert.True(t, result.TotalPay.Equal(expectedRaw.Round(2)),
		"expected total %s, got %s", expectedRaw.Round(2), result.TotalPay)
}

func TestPayrollService_Compute_InvalidMonth(t *testing.T) {
	t.Parallel()
	svc := newTestPayrollService("8400", timesheet.PeriodTotals{})

	_, err := svc.ComputePayroll(context.Background(), "emp-1", 13, 2026)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = svc.ComputePayroll(context.Background(), "emp-1", 0, 2026)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestPayrollService_Compute_NoBaseSalary(t *testing.T) {
	t.Parallel()
	svc := newTestPayrollService("0", timesheet.PeriodTotals{})

	_, err := svc.ComputePayroll(context.Background(), "emp-1", 8, 2026)
	assert.ErrorIs(t, err, payroll.ErrNoBaseSalary)
}

func TestPayrollService_Compute_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc := newTestPayrollService("8400", timesheet.PeriodTotals{})

	_, err := svc.ComputePayroll(context.Background(), "emp-missing", 8, 2026)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
