package dto

import (
	"github.com/shopspring/decimal"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// CreateEmployeeRequest attaches a payroll profile to an existing user.
type CreateEmployeeRequest struct {
	UserID     string          `json:"userID" binding:"required"`
	HourlyWage decimal.Decimal `json:"hourlyWage" binding:"required"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
type UpdateEmployeeRequest struct {
	HourlyWage *decimal.Decimal `json:"hourlyWage"`
}

// EmployeeResponse is the public representation of an employee.
type EmployeeResponse struct {
	EmployeeID string          `json:"employeeID"`
	UserID     string          `json:"userID"`
	HourlyWage decimal.Decimal `json:"hourlyWage"`
	IsActive   bool            `json:"isActive"`
}

// ToEmployeeResponse converts a domain.Employee to its public representation.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		UserID:     e.UserID,
		HourlyWage: e.HourlyWage,
		IsActive:   e.IsActive,
	}
}

// ToEmployeeResponseList converts a slice of domain employees.
func ToEmployeeResponseList(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return out
}
