package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	"github.com/staffdeck/payroll_hr_app/internal/models"
)

type PgxActivityLogRepository struct {
	db *pgxpool.Pool
}

func newPgxActivityLogRepository(db *pgxpool.Pool) portsrepo.ActivityLogRepositoryFacade {
	return &PgxActivityLogRepository{db: db}
}

var _ portsrepo.ActivityLogRepositoryFacade = (*PgxActivityLogRepository)(nil)

func toDomainActivityLog(m models.ActivityLog) domain.ActivityLog {
	return domain.ActivityLog{
		LogID:      m.LogID,
		ActorID:    m.ActorID,
		ActorName:  m.ActorName,
		ActorEmail: m.ActorEmail,
		Action:     m.Action,
		Resource:   m.Resource,
		ResourceID: m.ResourceID,
		Detail:     m.Detail,
		Status:     domain.ActivityStatus(m.Status),
		IP:         m.IP,
		UserAgent:  m.UserAgent,
		CreatedAt:  m.CreatedAt,
	}
}

const activityColumns = `log_id, actor_id, actor_name, actor_email, action, resource, resource_id, detail, status, ip, user_agent, created_at`

func scanActivityLog(row pgx.Row) (*models.ActivityLog, error) {
	var m models.ActivityLog
	err := row.Scan(
		&m.LogID,
		&m.ActorID,
		&m.ActorName,
		&m.ActorEmail,
		&m.Action,
		&m.Resource,
		&m.ResourceID,
		&m.Detail,
		&m.Status,
		&m.IP,
		&m.UserAgent,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxActivityLogRepository) SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	query := `
        INSERT INTO activity_logs (log_id, actor_id, actor_name, actor_email, action, resource, resource_id, detail, status, ip, user_agent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		entry.LogID,
		entry.ActorID,
		entry.ActorName,
		entry.ActorEmail,
		entry.Action,
		entry.Resource,
		entry.ResourceID,
		entry.Detail,
		string(entry.Status),
		entry.IP,
		entry.UserAgent,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity log entry: %w", err)
	}
	return nil
}

func (r *PgxActivityLogRepository) FindActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_logs WHERE log_id = $1;`
	m, err := scanActivityLog(r.db.QueryRow(ctx, query, logID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find activity log by ID %s: %w", logID, err)
	}
	d := toDomainActivityLog(*m)
	return &d, nil
}

func (r *PgxActivityLogRepository) FindActivityLogs(ctx context.Context, limit, offset int, search string) ([]domain.ActivityLog, int64, error) {
	limit, offset = normalizePage(limit, offset)
	pattern := searchPattern(search)

	var total int64
	countQuery := `
        SELECT COUNT(*) FROM activity_logs
        WHERE $1 = '' OR actor_name ILIKE $2 OR actor_email ILIKE $2 OR action ILIKE $2 OR resource ILIKE $2;
    `
	if err := r.db.QueryRow(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	query := `
        SELECT ` + activityColumns + ` FROM activity_logs
        WHERE $1 = '' OR actor_name ILIKE $2 OR actor_email ILIKE $2 OR action ILIKE $2 OR resource ILIKE $2
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.db.Query(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.ActivityLog{}
	for rows.Next() {
		m, err := scanActivityLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity log row: %w", err)
		}
		entries = append(entries, toDomainActivityLog(*m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating activity log rows: %w", rows.Err())
	}

	return entries, total, nil
}

func (r *PgxActivityLogRepository) PurgeActivityLogs(ctx context.Context, before time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM activity_logs WHERE created_at < $1;`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge activity logs: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
