package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/utils"
)

type userService struct {
	userRepo        portsrepo.UserRepositoryFacade
	roleRepo        portsrepo.RoleRepositoryFacade
	defaultRoleName string
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, roleRepo portsrepo.RoleRepositoryFacade, defaultRoleName string) ports.UserSvcFacade {
	return &userService{
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		defaultRoleName: defaultRoleName,
	}
}

var _ ports.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, params dto.ListParams) ([]domain.User, int64, error) {
	return s.userRepo.FindUsers(ctx, params.Limit, params.Offset(), params.Search)
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.roleRepo.FindRoleByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("role not found")
		}
		return nil, err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("a user with this email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
		RoleID:       req.RoleID,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this email already exists")
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	defaultRole, err := s.roleRepo.FindRoleByName(ctx, s.defaultRoleName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default role %q: %w", s.defaultRoleName, err)
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("a user with this email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
		RoleID:       defaultRole.RoleID,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this email already exists")
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = &hash
	}
	if req.RoleID != nil {
		if _, err := s.roleRepo.FindRoleByID(ctx, *req.RoleID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewBadRequestError("role not found")
			}
			return nil, err
		}
		user.RoleID = *req.RoleID
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this email already exists")
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) SetUserActive(ctx context.Context, userID string, active bool, requestingUserID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.userRepo.SetUserActive(ctx, userID, active, now, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}

	user.IsActive = active
	user.LastUpdatedAt = now
	user.LastUpdatedBy = requestingUserID
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("user not found")
		}
		return err
	}
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(apperrors.CodeInvalidCredentials, "invalid email or password")
		}
		return nil, err
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError(apperrors.CodeInvalidCredentials, "invalid email or password")
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError(apperrors.CodeUserDeactivated, "user account is deactivated")
	}
	return user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, email, name, providerUserID string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, providerUserID)
	if err == nil {
		if !user.IsActive {
			return nil, apperrors.NewUnauthorizedError(apperrors.CodeUserDeactivated, "user account is deactivated")
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// Google verified the email, so an existing local account with the same
	// address belongs to the same person.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		if !user.IsActive {
			return nil, apperrors.NewUnauthorizedError(apperrors.CodeUserDeactivated, "user account is deactivated")
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	defaultRole, err := s.roleRepo.FindRoleByName(ctx, s.defaultRoleName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default role %q: %w", s.defaultRoleName, err)
	}

	now := time.Now()
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:         userID,
		Name:           name,
		Email:          email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &providerUserID,
		RoleID:         defaultRole.RoleID,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this email already exists")
		}
		return nil, err
	}
	return &newUser, nil
}
