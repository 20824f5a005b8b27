package repositories

import (
	"context"
	"time"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// ActivityLogReader defines read operations for the audit log
type ActivityLogReader interface {
	// FindActivityLogByID retrieves a single audit entry.
	FindActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error)

	// FindActivityLogs retrieves a page of audit entries, newest first, with
	// an optional free-text search over actor, action and resource, plus the
	// total match count.
	FindActivityLogs(ctx context.Context, limit, offset int, search string) ([]domain.ActivityLog, int64, error)
}

// ActivityLogWriter defines write operations for the audit log
type ActivityLogWriter interface {
	// SaveActivityLog appends one audit entry. Entries are never updated.
	SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error

	// PurgeActivityLogs removes entries created before the cutoff and
	// returns the number removed.
	PurgeActivityLogs(ctx context.Context, before time.Time) (int64, error)
}

// ActivityLogRepositoryFacade combines the audit log repository interfaces
type ActivityLogRepositoryFacade interface {
	ActivityLogReader
	ActivityLogWriter
}
