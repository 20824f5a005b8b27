package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the payroll-relevant profile attached to a user.
// Exactly one employee record may reference a given user.
type Employee struct {
	EmployeeID string          `json:"employeeID"`
	UserID     string          `json:"userID"`
	HourlyWage decimal.Decimal `json:"hourlyWage"` // non-negative
	IsActive   bool            `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
