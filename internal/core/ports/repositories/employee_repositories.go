package repositories

import (
	"context"
	"time"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUserID retrieves the employee record attached to a user.
	FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)

	// FindEmployees retrieves a page of employees with an optional free-text
	// search over the owning user's name and email, plus the total match count.
	FindEmployees(ctx context.Context, limit, offset int, search string) ([]domain.Employee, int64, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// SetEmployeeActive toggles the employee's active flag.
	SetEmployeeActive(ctx context.Context, employeeID string, active bool, updatedAt time.Time, updatedBy string) error
}

// EmployeeLifecycleManager defines operations for managing employee lifecycle
type EmployeeLifecycleManager interface {
	// MarkEmployeeDeleted marks an employee as deleted (soft delete).
	MarkEmployeeDeleted(ctx context.Context, employeeID string, deletedAt time.Time, deletedBy string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeLifecycleManager
}
