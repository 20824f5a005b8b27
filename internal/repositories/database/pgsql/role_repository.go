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

type PgxRoleRepository struct {
	BaseRepository
}

func newPgxRoleRepository(db *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

func toDomainRole(m models.Role) domain.Role {
	return domain.Role{
		RoleID:   m.RoleID,
		Name:     m.Name,
		IsActive: m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

const roleColumns = `role_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanRole(row pgx.Row) (*models.Role, error) {
	var m models.Role
	err := row.Scan(
		&m.RoleID,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// loadGrants populates Permissions for each role in place.
func (r *PgxRoleRepository) loadGrants(ctx context.Context, roles []domain.Role) error {
	if len(roles) == 0 {
		return nil
	}
	roleIDs := make([]string, len(roles))
	index := make(map[string]*domain.Role, len(roles))
	for i := range roles {
		roleIDs[i] = roles[i].RoleID
		index[roles[i].RoleID] = &roles[i]
	}

	query := `
        SELECT rp.role_id, p.permission_id, p.name, p.module, p.action, p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
        FROM role_permissions rp
        JOIN permissions p ON p.permission_id = rp.permission_id
        WHERE rp.role_id = ANY($1);
    `
	rows, err := r.Pool.Query(ctx, query, roleIDs)
	if err != nil {
		return fmt.Errorf("failed to query role grants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var roleID string
		var m models.Permission
		if err := rows.Scan(&roleID, &m.PermissionID, &m.Name, &m.Module, &m.Action, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return fmt.Errorf("failed to scan role grant row: %w", err)
		}
		if role, ok := index[roleID]; ok {
			role.Permissions = append(role.Permissions, toDomainPermission(m))
		}
	}
	return rows.Err()
}

func (r *PgxRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE role_id = $1 AND deleted_at IS NULL;`
	m, err := scanRole(r.Pool.QueryRow(ctx, query, roleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role by ID %s: %w", roleID, err)
	}
	roles := []domain.Role{toDomainRole(*m)}
	if err := r.loadGrants(ctx, roles); err != nil {
		return nil, err
	}
	return &roles[0], nil
}

func (r *PgxRoleRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE lower(name) = lower($1) AND deleted_at IS NULL;`
	m, err := scanRole(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role by name: %w", err)
	}
	roles := []domain.Role{toDomainRole(*m)}
	if err := r.loadGrants(ctx, roles); err != nil {
		return nil, err
	}
	return &roles[0], nil
}

func (r *PgxRoleRepository) FindRoles(ctx context.Context, limit, offset int, search string) ([]domain.Role, int64, error) {
	limit, offset = normalizePage(limit, offset)
	pattern := searchPattern(search)

	var total int64
	countQuery := `SELECT COUNT(*) FROM roles WHERE deleted_at IS NULL AND ($1 = '' OR name ILIKE $2);`
	if err := r.Pool.QueryRow(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count roles: %w", err)
	}

	query := `
        SELECT ` + roleColumns + ` FROM roles
        WHERE deleted_at IS NULL AND ($1 = '' OR name ILIKE $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.Pool.Query(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		m, err := scanRole(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, toDomainRole(*m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating role rows: %w", rows.Err())
	}

	if err := r.loadGrants(ctx, roles); err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

func (r *PgxRoleRepository) CountRolesWithPermission(ctx context.Context, permissionID string) (int64, error) {
	var count int64
	query := `
        SELECT COUNT(*)
        FROM role_permissions rp
        JOIN roles ro ON ro.role_id = rp.role_id
        WHERE rp.permission_id = $1 AND ro.deleted_at IS NULL;
    `
	if err := r.Pool.QueryRow(ctx, query, permissionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count roles with permission %s: %w", permissionID, err)
	}
	return count, nil
}

func (r *PgxRoleRepository) SaveRole(ctx context.Context, role domain.Role, permissionIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
        INSERT INTO roles (role_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err = tx.Exec(ctx, query,
		role.RoleID,
		role.Name,
		role.IsActive,
		role.CreatedAt,
		role.CreatedBy,
		role.LastUpdatedAt,
		role.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save role: %w", err)
	}

	if err := insertGrants(ctx, tx, role.RoleID, permissionIDs); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxRoleRepository) UpdateRole(ctx context.Context, role domain.Role, permissionIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
        UPDATE roles
        SET name = $1, last_updated_at = $2, last_updated_by = $3
        WHERE role_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query, role.Name, role.LastUpdatedAt, role.LastUpdatedBy, role.RoleID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to execute update role query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("role not found or already deleted: %w", apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1;`, role.RoleID); err != nil {
		return fmt.Errorf("failed to clear role grants: %w", err)
	}
	if err := insertGrants(ctx, tx, role.RoleID, permissionIDs); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertGrants(ctx context.Context, tx pgx.Tx, roleID string, permissionIDs []string) error {
	for _, permissionID := range permissionIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
			roleID, permissionID,
		)
		if err != nil {
			return fmt.Errorf("failed to grant permission %s to role %s: %w", permissionID, roleID, err)
		}
	}
	return nil
}

func (r *PgxRoleRepository) SetRoleActive(ctx context.Context, roleID string, active bool, updatedAt time.Time, updatedBy string) error {
	query := `
        UPDATE roles
        SET is_active = $1, last_updated_at = $2, last_updated_by = $3
        WHERE role_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, active, updatedAt, updatedBy, roleID)
	if err != nil {
		return fmt.Errorf("failed to set role active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("role not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRoleRepository) MarkRoleDeleted(ctx context.Context, roleID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE roles
        SET deleted_at = $1, is_active = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE role_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, roleID)
	if err != nil {
		return fmt.Errorf("failed to mark role as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("role not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
