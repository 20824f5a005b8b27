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

type PgxEmployeeRepository struct {
	db *pgxpool.Pool
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{db: db}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func toDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID: m.EmployeeID,
		UserID:     m.UserID,
		HourlyWage: m.HourlyWage,
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

const employeeColumns = `employee_id, user_id, hourly_wage, is_active, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.UserID,
		&m.HourlyWage,
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

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
        INSERT INTO employees (employee_id, user_id, hourly_wage, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		employee.EmployeeID,
		employee.UserID,
		employee.HourlyWage,
		employee.IsActive,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1 AND deleted_at IS NULL;`
	m, err := scanEmployee(r.db.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	d := toDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1 AND deleted_at IS NULL;`
	m, err := scanEmployee(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by user ID %s: %w", userID, err)
	}
	d := toDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, limit, offset int, search string) ([]domain.Employee, int64, error) {
	limit, offset = normalizePage(limit, offset)
	pattern := searchPattern(search)

	var total int64
	countQuery := `
        SELECT COUNT(*)
        FROM employees e
        JOIN users u ON u.user_id = e.user_id
        WHERE e.deleted_at IS NULL AND ($1 = '' OR u.name ILIKE $2 OR u.email ILIKE $2);
    `
	if err := r.db.QueryRow(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
        SELECT e.employee_id, e.user_id, e.hourly_wage, e.is_active, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by, e.deleted_at
        FROM employees e
        JOIN users u ON u.user_id = e.user_id
        WHERE e.deleted_at IS NULL AND ($1 = '' OR u.name ILIKE $2 OR u.email ILIKE $2)
        ORDER BY e.created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.db.Query(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, toDomainEmployee(*m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}

	return employees, total, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
        UPDATE employees
        SET hourly_wage = $1, last_updated_at = $2, last_updated_by = $3
        WHERE employee_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		employee.HourlyWage,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
		employee.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update employee query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) SetEmployeeActive(ctx context.Context, employeeID string, active bool, updatedAt time.Time, updatedBy string) error {
	query := `
        UPDATE employees
        SET is_active = $1, last_updated_at = $2, last_updated_by = $3
        WHERE employee_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, active, updatedAt, updatedBy, employeeID)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) MarkEmployeeDeleted(ctx context.Context, employeeID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE employees
        SET deleted_at = $1, is_active = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE employee_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, employeeID)
	if err != nil {
		return fmt.Errorf("failed to mark employee as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
