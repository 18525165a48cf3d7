package payroll

import (
	"github.com/shopspring/decimal"
)

// Result is a derived payroll figure for one employee and month; never
// persisted, consumed by the report renderer.
type Result struct {
	EmployeeID      string          `json:"employee_id"`
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	BusinessDays    int             `json:"business_days"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	WorkedMinutes   int             `json:"worked_minutes"`
	OvertimeMinutes int             `json:"overtime_minutes"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	RegularPay      decimal.Decimal `json:"regular_pay"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	TotalPay        decimal.Decimal `json:"total_pay"`
}
