package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) ports.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

var _ ports.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListParams) ([]domain.Employee, int64, error) {
	return s.employeeRepo.FindEmployees(ctx, params.Limit, params.Offset(), params.Search)
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	if req.HourlyWage.IsNegative() {
		return nil, apperrors.NewBadRequestError("hourly wage must not be negative")
	}

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("user not found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewBadRequestError("cannot create an employee profile for a deactivated user")
	}

	if _, err := s.employeeRepo.FindEmployeeByUserID(ctx, req.UserID); err == nil {
		return nil, apperrors.NewConflictError("user already has an employee profile")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		UserID:     req.UserID,
		HourlyWage: req.HourlyWage,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("user already has an employee profile")
		}
		return nil, err
	}
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.HourlyWage != nil {
		if req.HourlyWage.IsNegative() {
			return nil, apperrors.NewBadRequestError("hourly wage must not be negative")
		}
		employee.HourlyWage = *req.HourlyWage
	}

	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = requestingUserID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) SetEmployeeActive(ctx context.Context, employeeID string, active bool, requestingUserID string) (*domain.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.employeeRepo.SetEmployeeActive(ctx, employeeID, active, now, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, err
	}

	employee.IsActive = active
	employee.LastUpdatedAt = now
	employee.LastUpdatedBy = requestingUserID
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string, requestingUserID string) error {
	if err := s.employeeRepo.MarkEmployeeDeleted(ctx, employeeID, time.Now(), requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("employee not found")
		}
		return err
	}
	return nil
}
