package services

import (
	"context"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// ActivityRecorderSvc appends audit entries.
type ActivityRecorderSvc interface {
	// Record appends an audit entry asynchronously. It never blocks the
	// caller and never returns an error; failures are logged and dropped.
	Record(ctx context.Context, entry domain.ActivityLog)
}

// ActivityReaderSvc defines read operations for the audit log
type ActivityReaderSvc interface {
	// GetActivityLogByID retrieves a single audit entry.
	GetActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error)

	// ListActivityLogs retrieves a page of audit entries with the total match count.
	ListActivityLogs(ctx context.Context, params dto.ListParams) ([]domain.ActivityLog, int64, error)
}

// ActivityPurgerSvc removes old audit entries on explicit administrative request.
type ActivityPurgerSvc interface {
	// PurgeActivityLogs removes entries older than the given number of days
	// and returns the number removed.
	PurgeActivityLogs(ctx context.Context, olderThanDays int, requestingUserID string) (int64, error)
}

// ActivitySvcFacade combines the audit log service interfaces
type ActivitySvcFacade interface {
	ActivityRecorderSvc
	ActivityReaderSvc
	ActivityPurgerSvc
}
