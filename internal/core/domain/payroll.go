package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus is the lifecycle state of a payroll record.
type PayrollStatus string

const (
	PayrollPending   PayrollStatus = "PENDING"
	PayrollProcessed PayrollStatus = "PROCESSED"
	PayrollPaid      PayrollStatus = "PAID"
)

// ValidPayrollStatus reports whether s is a known payroll status.
func ValidPayrollStatus(s PayrollStatus) bool {
	switch s {
	case PayrollPending, PayrollProcessed, PayrollPaid:
		return true
	}
	return false
}

// ErrInvalidTimeFormat indicates a shift time that is not a valid 24-hour "HH:MM".
var ErrInvalidTimeFormat = errors.New("time must be in 24-hour HH:MM format")

// ErrNegativeAmount indicates a wage, deduction or advance below zero.
var ErrNegativeAmount = errors.New("monetary amount must not be negative")

// Consumption is a single itemized deduction taken against a shift's pay.
type Consumption struct {
	Amount      decimal.Decimal `json:"amount"` // >= 0
	Description string          `json:"description"`
}

// PayrollRecord is one computed pay entry for an employee's shift.
// The derived fields (worked time, gross, total deductions, net) must always
// equal the result of Recompute over the current inputs.
type PayrollRecord struct {
	PayrollID     string          `json:"payrollID"`
	EmployeeID    string          `json:"employeeID"`
	WorkDate      time.Time       `json:"workDate"`
	StartTime     string          `json:"startTime"` // "HH:MM"
	EndTime       string          `json:"endTime"`   // "HH:MM"
	WorkedHours   int             `json:"workedHours"`
	WorkedMinutes int             `json:"workedMinutes"`
	GrossPay      decimal.Decimal `json:"grossPay"`
	Consumptions  []Consumption   `json:"consumptions"`
	CashAdvance   decimal.Decimal `json:"cashAdvance"`
	Imbalance     decimal.Decimal `json:"imbalance"` // reconciliation adjustment, default 0
	DebtOwed      decimal.Decimal `json:"debtOwed"`  // credit owed to the employee
	TotalDeduct   decimal.Decimal `json:"totalDeductions"`
	NetPay        decimal.Decimal `json:"netPay"` // may be negative, never clamped
	Status        PayrollStatus   `json:"status"`
	ProcessedBy   string          `json:"processedBy"` // UserID Reference
	AuditFields
}

var shiftTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseShiftTime converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseShiftTime(s string) (int, error) {
	m := shiftTimeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidTimeFormat
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes, nil
}

const minutesPerDay = 24 * 60

// WorkedDuration computes the whole hours and remainder minutes between two
// shift times. A shift whose end is earlier than its start is treated as
// crossing midnight.
func WorkedDuration(startTime, endTime string) (hours, minutes int, err error) {
	startMin, err := ParseShiftTime(startTime)
	if err != nil {
		return 0, 0, err
	}
	endMin, err := ParseShiftTime(endTime)
	if err != nil {
		return 0, 0, err
	}
	if endMin < startMin {
		endMin += minutesPerDay
	}
	total := endMin - startMin
	return total / 60, total % 60, nil
}

// Recompute derives worked time, gross pay, total deductions and net pay
// from the record's current inputs and the given hourly wage. All four
// derived fields are always recomputed together; a partial recomputation
// would leave the record inconsistent.
func (r *PayrollRecord) Recompute(hourlyWage decimal.Decimal) error {
	if hourlyWage.IsNegative() || r.CashAdvance.IsNegative() || r.Imbalance.IsNegative() || r.DebtOwed.IsNegative() {
		return ErrNegativeAmount
	}

	hours, minutes, err := WorkedDuration(r.StartTime, r.EndTime)
	if err != nil {
		return err
	}

	totalMinutes := hours*60 + minutes
	// gross = (hours + minutes/60) * wage, computed as totalMinutes/60 * wage
	gross := decimal.NewFromInt(int64(totalMinutes)).
		Div(decimal.NewFromInt(60)).
		Mul(hourlyWage)

	totalConsumptions := decimal.Zero
	for _, c := range r.Consumptions {
		if c.Amount.IsNegative() {
			return ErrNegativeAmount
		}
		totalConsumptions = totalConsumptions.Add(c.Amount)
	}

	r.WorkedHours = hours
	r.WorkedMinutes = minutes
	r.GrossPay = gross
	r.TotalDeduct = totalConsumptions.Add(r.CashAdvance).Add(r.Imbalance)
	r.NetPay = gross.Sub(r.TotalDeduct).Add(r.DebtOwed)
	return nil
}
