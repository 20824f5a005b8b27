package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// recordTimeout bounds the background write of one audit entry.
const recordTimeout = 5 * time.Second

type activityService struct {
	activityRepo portsrepo.ActivityLogRepositoryFacade
	logger       *slog.Logger
}

// NewActivityService creates a new audit log service.
func NewActivityService(activityRepo portsrepo.ActivityLogRepositoryFacade, logger *slog.Logger) ports.ActivitySvcFacade {
	return &activityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

var _ ports.ActivitySvcFacade = (*activityService)(nil)

// Record appends an audit entry in the background. The write is detached
// from the request context so a finished request cannot cancel it; failures
// are logged and dropped rather than surfaced to the caller.
func (s *activityService) Record(ctx context.Context, entry domain.ActivityLog) {
	if entry.LogID == "" {
		entry.LogID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.Status == "" {
		entry.Status = domain.ActivitySuccess
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		writeCtx, cancel := context.WithTimeout(detached, recordTimeout)
		defer cancel()
		if err := s.activityRepo.SaveActivityLog(writeCtx, entry); err != nil {
			s.logger.Error("failed to record activity log entry",
				slog.String("action", entry.Action),
				slog.String("resource", entry.Resource),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (s *activityService) GetActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error) {
	entry, err := s.activityRepo.FindActivityLogByID(ctx, logID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("activity log entry not found")
		}
		return nil, err
	}
	return entry, nil
}

func (s *activityService) ListActivityLogs(ctx context.Context, params dto.ListParams) ([]domain.ActivityLog, int64, error) {
	return s.activityRepo.FindActivityLogs(ctx, params.Limit, params.Offset(), params.Search)
}

func (s *activityService) PurgeActivityLogs(ctx context.Context, olderThanDays int, requestingUserID string) (int64, error) {
	if olderThanDays < 1 {
		return 0, apperrors.NewBadRequestError("olderThanDays must be at least 1")
	}

	before := time.Now().AddDate(0, 0, -olderThanDays)
	purged, err := s.activityRepo.PurgeActivityLogs(ctx, before)
	if err != nil {
		return 0, err
	}

	s.logger.Info("purged activity log entries",
		slog.Int64("purged", purged),
		slog.Int("olderThanDays", olderThanDays),
		slog.String("requestedBy", requestingUserID),
	)
	return purged, nil
}
