package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the employees table row.
type Employee struct {
	EmployeeID string          `db:"employee_id"`
	UserID     string          `db:"user_id"`
	HourlyWage decimal.Decimal `db:"hourly_wage"`
	IsActive   bool            `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
