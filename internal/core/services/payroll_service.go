package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

type payrollService struct {
	payrollRepo  portsrepo.PayrollRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewPayrollService creates a new payroll service.
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade) ports.PayrollSvcFacade {
	return &payrollService{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

var _ ports.PayrollSvcFacade = (*payrollService)(nil)

// statusRank orders the payroll lifecycle. Records only move forward.
var statusRank = map[domain.PayrollStatus]int{
	domain.PayrollPending:   0,
	domain.PayrollProcessed: 1,
	domain.PayrollPaid:      2,
}

func errPayrollImmutable() *apperrors.AppError {
	return &apperrors.AppError{
		Status:  http.StatusBadRequest,
		Code:    apperrors.CodeValidationFailed,
		Message: "paid payroll records cannot be modified",
		Err:     apperrors.ErrImmutable,
	}
}

func (s *payrollService) GetPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	record, err := s.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payroll record not found")
		}
		return nil, err
	}
	return record, nil
}

func (s *payrollService) ListPayrolls(ctx context.Context, params dto.ListParams) ([]domain.PayrollRecord, int64, error) {
	return s.payrollRepo.FindPayrolls(ctx, params.Limit, params.Offset(), params.Search)
}

func (s *payrollService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, processorUserID string) (*domain.PayrollRecord, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("employee not found")
		}
		return nil, err
	}
	if !employee.IsActive {
		return nil, apperrors.NewBadRequestError("cannot record payroll for an inactive employee")
	}

	workDate, err := time.Parse(dto.WorkDateFormat, req.WorkDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("workDate must be in YYYY-MM-DD format")
	}

	now := time.Now()
	record := domain.PayrollRecord{
		PayrollID:    uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		WorkDate:     workDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Consumptions: dto.ToDomainConsumptions(req.Consumptions),
		CashAdvance:  req.CashAdvance,
		Imbalance:    req.Imbalance,
		DebtOwed:     req.DebtOwed,
		Status:       domain.PayrollPending,
		ProcessedBy:  processorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     processorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: processorUserID,
		},
	}

	if err := record.Recompute(employee.HourlyWage); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.payrollRepo.SavePayroll(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *payrollService) UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, requestingUserID string) (*domain.PayrollRecord, error) {
	record, err := s.GetPayrollByID(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if record.Status == domain.PayrollPaid {
		return nil, errPayrollImmutable()
	}

	if req.WorkDate != nil {
		workDate, err := time.Parse(dto.WorkDateFormat, *req.WorkDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("workDate must be in YYYY-MM-DD format")
		}
		record.WorkDate = workDate
	}
	if req.StartTime != nil {
		record.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		record.EndTime = *req.EndTime
	}
	if req.Consumptions != nil {
		record.Consumptions = dto.ToDomainConsumptions(*req.Consumptions)
	}
	if req.CashAdvance != nil {
		record.CashAdvance = *req.CashAdvance
	}
	if req.Imbalance != nil {
		record.Imbalance = *req.Imbalance
	}
	if req.DebtOwed != nil {
		record.DebtOwed = *req.DebtOwed
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, record.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("employee not found")
		}
		return nil, err
	}

	if err := record.Recompute(employee.HourlyWage); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = requestingUserID

	if err := s.payrollRepo.UpdatePayroll(ctx, *record); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payroll record not found")
		}
		return nil, err
	}
	return record, nil
}

func (s *payrollService) UpdatePayrollStatus(ctx context.Context, payrollID string, status domain.PayrollStatus, requestingUserID string) (*domain.PayrollRecord, error) {
	if !domain.ValidPayrollStatus(status) {
		return nil, apperrors.NewBadRequestError("invalid payroll status")
	}

	record, err := s.GetPayrollByID(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if record.Status == domain.PayrollPaid {
		return nil, errPayrollImmutable()
	}
	if statusRank[status] < statusRank[record.Status] {
		return nil, apperrors.NewBadRequestError("payroll status cannot move backwards")
	}

	record.Status = status
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = requestingUserID

	if err := s.payrollRepo.UpdatePayroll(ctx, *record); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payroll record not found")
		}
		return nil, err
	}
	return record, nil
}

func (s *payrollService) DeletePayroll(ctx context.Context, payrollID string, requestingUserID string) error {
	record, err := s.GetPayrollByID(ctx, payrollID)
	if err != nil {
		return err
	}
	if record.Status == domain.PayrollPaid {
		return errPayrollImmutable()
	}

	if err := s.payrollRepo.DeletePayroll(ctx, payrollID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("payroll record not found")
		}
		return err
	}
	return nil
}
