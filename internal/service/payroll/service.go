package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/config"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/payroll"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	cfg        config.AttendanceConfig
	employees  employee.Repository
	timesheets timesheet.Service
}

func NewPayrollService(cfg config.AttendanceConfig, employeeRepo employee.Repository, timesheetService timesheet.Service) payroll.Service {
	return &PayrollServiceImpl{
		cfg:        cfg,
		employees:  employeeRepo,
		timesheets: timesheetService,
	}
}

var sixty = decimal.NewFromInt(60)

// ComputePayroll implements payroll.Service. All intermediate figures stay at
// full decimal precision; only the final total is rounded, half up, to the
// currency's minor unit.
func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, employeeID string, month, year int) (payroll.Result, error) {
	if month < 1 || month > 12 || year < 1 {
		return payroll.Result{}, payroll.ErrInvalidPeriod
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Result{}, err
	}

	if emp.BaseSalary.LessThanOrEqual(decimal.Zero) {
		return payroll.Result{}, payroll.ErrNoBaseSalary
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.cfg.Location)
	periodEnd := periodStart.AddDate(0, 1, -1)

	summary, err := s.timesheets.GetPeriodSummary(ctx, employeeID,
		periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02"))
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to aggregate period: %w", err)
	}

	businessDays := countBusinessDays(periodStart, periodEnd)

	baselineHours := decimal.NewFromInt(int64(s.cfg.DailyBaselineMinutes)).Div(sixty)
	monthlyBaseHours := baselineHours.Mul(decimal.NewFromInt(int64(businessDays)))
	hourlyRate := emp.BaseSalary.Div(monthlyBaseHours)

	workedMinutes := summary.Totals.WorkedMinutes
	overtimeMinutes := summary.Totals.OvertimeMinutes
	regularMinutes := workedMinutes - overtimeMinutes

	regularPay := hourlyRate.Mul(decimal.NewFromInt(int64(regularMinutes))).Div(sixty)
	overtimePay := hourlyRate.
		Mul(s.cfg.OvertimeMultiplier).
		Mul(decimal.NewFromInt(int64(overtimeMinutes))).
		Div(sixty)
	totalPay := regularPay.Add(overtimePay).Round(s.cfg.CurrencyMinorUnits)

	return payroll.Result{
		EmployeeID:      employeeID,
		PeriodMonth:     month,
		PeriodYear:      year,
		BusinessDays:    businessDays,
		BaseSalary:      emp.BaseSalary,
		WorkedMinutes:   workedMinutes,
		OvertimeMinutes: overtimeMinutes,
		HourlyRate:      hourlyRate,
		RegularPay:      regularPay,
		OvertimePay:     overtimePay,
		TotalPay:        totalPay,
	}, nil
}

// countBusinessDays counts Monday through Friday in [start, end]. Computed
// from the calendar each call so months of different length never drift.
func countBusinessDays(start, end time.Time) int {
	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}
