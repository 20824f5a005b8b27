package services

import (
	"context"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves a page of employees with the total match count.
	ListEmployees(ctx context.Context, params dto.ListParams) ([]domain.Employee, int64, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee attaches a payroll profile to a user.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)

	// UpdateEmployee updates an employee's wage.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.Employee, error)

	// SetEmployeeActive toggles the employee's active flag.
	SetEmployeeActive(ctx context.Context, employeeID string, active bool, requestingUserID string) (*domain.Employee, error)
}

// EmployeeLifecycleSvc defines operations for managing employee lifecycle
type EmployeeLifecycleSvc interface {
	// DeleteEmployee marks an employee as deleted (soft delete).
	DeleteEmployee(ctx context.Context, employeeID string, requestingUserID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeLifecycleSvc
}
