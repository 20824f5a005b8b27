package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// WorkDateFormat is the wire format for payroll work dates.
const WorkDateFormat = "2006-01-02"

// ConsumptionPayload is one itemized deduction on a payroll request.
type ConsumptionPayload struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// CreatePayrollRequest defines the payload for creating a payroll record.
// Derived fields are never accepted from the client.
type CreatePayrollRequest struct {
	EmployeeID   string               `json:"employeeID" binding:"required"`
	WorkDate     string               `json:"workDate" binding:"required"`
	StartTime    string               `json:"startTime" binding:"required"`
	EndTime      string               `json:"endTime" binding:"required"`
	Consumptions []ConsumptionPayload `json:"consumptions"`
	CashAdvance  decimal.Decimal      `json:"cashAdvance"`
	Imbalance    decimal.Decimal      `json:"imbalance"`
	DebtOwed     decimal.Decimal      `json:"debtOwed"`
}

// UpdatePayrollRequest defines the data allowed for updating a payroll
// record. Any change to an input triggers a full recomputation of the
// derived fields.
type UpdatePayrollRequest struct {
	WorkDate     *string               `json:"workDate"`
	StartTime    *string               `json:"startTime"`
	EndTime      *string               `json:"endTime"`
	Consumptions *[]ConsumptionPayload `json:"consumptions"`
	CashAdvance  *decimal.Decimal      `json:"cashAdvance"`
	Imbalance    *decimal.Decimal      `json:"imbalance"`
	DebtOwed     *decimal.Decimal      `json:"debtOwed"`
}

// UpdatePayrollStatusRequest moves a payroll record through its lifecycle.
type UpdatePayrollStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PROCESSED PAID"`
}

// PayrollResponse is the public representation of a payroll record.
type PayrollResponse struct {
	PayrollID       string               `json:"payrollID"`
	EmployeeID      string               `json:"employeeID"`
	WorkDate        string               `json:"workDate"`
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	WorkedHours     int                  `json:"workedHours"`
	WorkedMinutes   int                  `json:"workedMinutes"`
	GrossPay        decimal.Decimal      `json:"grossPay"`
	Consumptions    []ConsumptionPayload `json:"consumptions"`
	CashAdvance     decimal.Decimal      `json:"cashAdvance"`
	Imbalance       decimal.Decimal      `json:"imbalance"`
	DebtOwed        decimal.Decimal      `json:"debtOwed"`
	TotalDeductions decimal.Decimal      `json:"totalDeductions"`
	NetPay          decimal.Decimal      `json:"netPay"`
	Status          string               `json:"status"`
	ProcessedBy     string               `json:"processedBy"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToPayrollResponse converts a domain.PayrollRecord to its public representation.
func ToPayrollResponse(r *domain.PayrollRecord) PayrollResponse {
	consumptions := make([]ConsumptionPayload, len(r.Consumptions))
	for i, c := range r.Consumptions {
		consumptions[i] = ConsumptionPayload{Amount: c.Amount, Description: c.Description}
	}
	return PayrollResponse{
		PayrollID:       r.PayrollID,
		EmployeeID:      r.EmployeeID,
		WorkDate:        r.WorkDate.Format(WorkDateFormat),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		WorkedHours:     r.WorkedHours,
		WorkedMinutes:   r.WorkedMinutes,
		GrossPay:        r.GrossPay,
		Consumptions:    consumptions,
		CashAdvance:     r.CashAdvance,
		Imbalance:       r.Imbalance,
		DebtOwed:        r.DebtOwed,
		TotalDeductions: r.TotalDeduct,
		NetPay:          r.NetPay,
		Status:          string(r.Status),
		ProcessedBy:     r.ProcessedBy,
		CreatedAt:       r.CreatedAt,
	}
}

// ToPayrollResponseList converts a slice of domain payroll records.
func ToPayrollResponseList(records []domain.PayrollRecord) []PayrollResponse {
	out := make([]PayrollResponse, len(records))
	for i := range records {
		out[i] = ToPayrollResponse(&records[i])
	}
	return out
}

// ToDomainConsumptions converts request consumptions to domain values.
func ToDomainConsumptions(payloads []ConsumptionPayload) []domain.Consumption {
	out := make([]domain.Consumption, len(payloads))
	for i, p := range payloads {
		out[i] = domain.Consumption{Amount: p.Amount, Description: p.Description}
	}
	return out
}
