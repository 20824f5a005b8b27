package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	"github.com/staffdeck/payroll_hr_app/internal/models"
)

type PgxPermissionRepository struct {
	db *pgxpool.Pool
}

func newPgxPermissionRepository(db *pgxpool.Pool) portsrepo.PermissionRepositoryFacade {
	return &PgxPermissionRepository{db: db}
}

var _ portsrepo.PermissionRepositoryFacade = (*PgxPermissionRepository)(nil)

func toDomainPermission(m models.Permission) domain.Permission {
	return domain.Permission{
		PermissionID: m.PermissionID,
		Name:         m.Name,
		Module:       m.Module,
		Action:       domain.PermissionAction(m.Action),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const permissionColumns = `permission_id, name, module, action, created_at, created_by, last_updated_at, last_updated_by`

func scanPermission(row pgx.Row) (*models.Permission, error) {
	var m models.Permission
	err := row.Scan(
		&m.PermissionID,
		&m.Name,
		&m.Module,
		&m.Action,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPermissionRepository) SavePermission(ctx context.Context, permission domain.Permission) error {
	query := `
        INSERT INTO permissions (permission_id, name, module, action, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		permission.PermissionID,
		permission.Name,
		permission.Module,
		string(permission.Action),
		permission.CreatedAt,
		permission.CreatedBy,
		permission.LastUpdatedAt,
		permission.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save permission: %w", err)
	}
	return nil
}

func (r *PgxPermissionRepository) FindPermissionByID(ctx context.Context, permissionID string) (*domain.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE permission_id = $1;`
	m, err := scanPermission(r.db.QueryRow(ctx, query, permissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find permission by ID %s: %w", permissionID, err)
	}
	d := toDomainPermission(*m)
	return &d, nil
}

func (r *PgxPermissionRepository) FindPermissionByName(ctx context.Context, name string) (*domain.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE lower(name) = lower($1);`
	m, err := scanPermission(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find permission by name: %w", err)
	}
	d := toDomainPermission(*m)
	return &d, nil
}

func (r *PgxPermissionRepository) FindPermissions(ctx context.Context, limit, offset int, search string) ([]domain.Permission, int64, error) {
	limit, offset = normalizePage(limit, offset)
	pattern := searchPattern(search)

	var total int64
	countQuery := `SELECT COUNT(*) FROM permissions WHERE $1 = '' OR name ILIKE $2 OR module ILIKE $2;`
	if err := r.db.QueryRow(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count permissions: %w", err)
	}

	query := `
        SELECT ` + permissionColumns + ` FROM permissions
        WHERE $1 = '' OR name ILIKE $2 OR module ILIKE $2
        ORDER BY module, action
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.db.Query(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	permissions := []domain.Permission{}
	for rows.Next() {
		m, err := scanPermission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan permission row: %w", err)
		}
		permissions = append(permissions, toDomainPermission(*m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating permission rows: %w", rows.Err())
	}

	return permissions, total, nil
}

func (r *PgxPermissionRepository) UpdatePermission(ctx context.Context, permission domain.Permission) error {
	query := `
        UPDATE permissions
        SET name = $1, module = $2, action = $3, last_updated_at = $4, last_updated_by = $5
        WHERE permission_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		permission.Name,
		permission.Module,
		string(permission.Action),
		permission.LastUpdatedAt,
		permission.LastUpdatedBy,
		permission.PermissionID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to execute update permission query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("permission not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPermissionRepository) DeletePermission(ctx context.Context, permissionID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM permissions WHERE permission_id = $1;`, permissionID)
	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("permission not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
