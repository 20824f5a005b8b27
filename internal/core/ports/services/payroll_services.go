package services

import (
	"context"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// PayrollReaderSvc defines read operations for payroll records
type PayrollReaderSvc interface {
	// GetPayrollByID retrieves a payroll record by ID.
	GetPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)

	// ListPayrolls retrieves a page of payroll records with the total match count.
	ListPayrolls(ctx context.Context, params dto.ListParams) ([]domain.PayrollRecord, int64, error)
}

// PayrollWriterSvc defines write operations for payroll records
type PayrollWriterSvc interface {
	// CreatePayroll computes and persists a payroll record for an active
	// employee's shift.
	CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, processorUserID string) (*domain.PayrollRecord, error)

	// UpdatePayroll applies input changes and recomputes every derived field.
	// Rejected once the record is PAID.
	UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, requestingUserID string) (*domain.PayrollRecord, error)

	// UpdatePayrollStatus moves a record through PENDING -> PROCESSED -> PAID.
	UpdatePayrollStatus(ctx context.Context, payrollID string, status domain.PayrollStatus, requestingUserID string) (*domain.PayrollRecord, error)

	// DeletePayroll removes a record. Rejected once the record is PAID.
	DeletePayroll(ctx context.Context, payrollID string, requestingUserID string) error
}

// PayrollSvcFacade combines all payroll-related service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
