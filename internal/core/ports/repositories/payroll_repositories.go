package repositories

import (
	"context"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// PayrollReader defines read operations for payroll records
type PayrollReader interface {
	// FindPayrollByID retrieves a specific payroll record by its ID.
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)

	// FindPayrolls retrieves a page of payroll records, newest work date
	// first, with an optional free-text search over the employee's name and
	// the record status, plus the total match count.
	FindPayrolls(ctx context.Context, limit, offset int, search string) ([]domain.PayrollRecord, int64, error)
}

// PayrollWriter defines write operations for payroll records
type PayrollWriter interface {
	// SavePayroll persists a new payroll record with its derived fields.
	SavePayroll(ctx context.Context, record domain.PayrollRecord) error

	// UpdatePayroll rewrites a payroll record, derived fields included.
	UpdatePayroll(ctx context.Context, record domain.PayrollRecord) error

	// DeletePayroll removes a payroll record.
	DeletePayroll(ctx context.Context, payrollID string) error
}

// PayrollRepositoryFacade combines all payroll-related repository interfaces
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
