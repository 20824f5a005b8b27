package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is the payroll_records table row. Consumptions is the raw
// jsonb column.
type PayrollRecord struct {
	PayrollID     string          `db:"payroll_id"`
	EmployeeID    string          `db:"employee_id"`
	WorkDate      time.Time       `db:"work_date"`
	StartTime     string          `db:"start_time"`
	EndTime       string          `db:"end_time"`
	WorkedHours   int             `db:"worked_hours"`
	WorkedMinutes int             `db:"worked_minutes"`
	GrossPay      decimal.Decimal `db:"gross_pay"`
	Consumptions  []byte          `db:"consumptions"`
	CashAdvance   decimal.Decimal `db:"cash_advance"`
	Imbalance     decimal.Decimal `db:"imbalance"`
	DebtOwed      decimal.Decimal `db:"debt_owed"`
	TotalDeduct   decimal.Decimal `db:"total_deductions"`
	NetPay        decimal.Decimal `db:"net_pay"`
	Status        string          `db:"status"`
	ProcessedBy   string          `db:"processed_by"`
	AuditFields
}
