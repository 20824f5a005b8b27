package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	"github.com/staffdeck/payroll_hr_app/internal/models"
)

type PgxPayrollRepository struct {
	db *pgxpool.Pool
}

func newPgxPayrollRepository(db *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{db: db}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

func toModelPayroll(d domain.PayrollRecord) (models.PayrollRecord, error) {
	consumptions := d.Consumptions
	if consumptions == nil {
		consumptions = []domain.Consumption{}
	}
	raw, err := json.Marshal(consumptions)
	if err != nil {
		return models.PayrollRecord{}, fmt.Errorf("failed to encode consumptions: %w", err)
	}
	return models.PayrollRecord{
		PayrollID:     d.PayrollID,
		EmployeeID:    d.EmployeeID,
		WorkDate:      d.WorkDate,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		WorkedHours:   d.WorkedHours,
		WorkedMinutes: d.WorkedMinutes,
		GrossPay:      d.GrossPay,
		Consumptions:  raw,
		CashAdvance:   d.CashAdvance,
		Imbalance:     d.Imbalance,
		DebtOwed:      d.DebtOwed,
		TotalDeduct:   d.TotalDeduct,
		NetPay:        d.NetPay,
		Status:        string(d.Status),
		ProcessedBy:   d.ProcessedBy,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}, nil
}

func toDomainPayroll(m models.PayrollRecord) (domain.PayrollRecord, error) {
	consumptions := []domain.Consumption{}
	if len(m.Consumptions) > 0 {
		if err := json.Unmarshal(m.Consumptions, &consumptions); err != nil {
			return domain.PayrollRecord{}, fmt.Errorf("failed to decode consumptions for payroll %s: %w", m.PayrollID, err)
		}
	}
	return domain.PayrollRecord{
		PayrollID:     m.PayrollID,
		EmployeeID:    m.EmployeeID,
		WorkDate:      m.WorkDate,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		WorkedHours:   m.WorkedHours,
		WorkedMinutes: m.WorkedMinutes,
		GrossPay:      m.GrossPay,
		Consumptions:  consumptions,
		CashAdvance:   m.CashAdvance,
		Imbalance:     m.Imbalance,
		DebtOwed:      m.DebtOwed,
		TotalDeduct:   m.TotalDeduct,
		NetPay:        m.NetPay,
		Status:        domain.PayrollStatus(m.Status),
		ProcessedBy:   m.ProcessedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

const payrollColumns = `payroll_id, employee_id, work_date, start_time, end_time, worked_hours, worked_minutes, gross_pay, consumptions, cash_advance, imbalance, debt_owed, total_deductions, net_pay, status, processed_by, created_at, created_by, last_updated_at, last_updated_by`

func scanPayroll(row pgx.Row) (*models.PayrollRecord, error) {
	var m models.PayrollRecord
	err := row.Scan(
		&m.PayrollID,
		&m.EmployeeID,
		&m.WorkDate,
		&m.StartTime,
		&m.EndTime,
		&m.WorkedHours,
		&m.WorkedMinutes,
		&m.GrossPay,
		&m.Consumptions,
		&m.CashAdvance,
		&m.Imbalance,
		&m.DebtOwed,
		&m.TotalDeduct,
		&m.NetPay,
		&m.Status,
		&m.ProcessedBy,
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

func (r *PgxPayrollRepository) SavePayroll(ctx context.Context, record domain.PayrollRecord) error {
	m, err := toModelPayroll(record)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO payroll_records (payroll_id, employee_id, work_date, start_time, end_time, worked_hours, worked_minutes, gross_pay, consumptions, cash_advance, imbalance, debt_owed, total_deductions, net_pay, status, processed_by, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
    `
	_, err = r.db.Exec(ctx, query,
		m.PayrollID,
		m.EmployeeID,
		m.WorkDate,
		m.StartTime,
		m.EndTime,
		m.WorkedHours,
		m.WorkedMinutes,
		m.GrossPay,
		m.Consumptions,
		m.CashAdvance,
		m.Imbalance,
		m.DebtOwed,
		m.TotalDeduct,
		m.NetPay,
		m.Status,
		m.ProcessedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save payroll record: %w", err)
	}
	return nil
}

func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE payroll_id = $1;`
	m, err := scanPayroll(r.db.QueryRow(ctx, query, payrollID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll record by ID %s: %w", payrollID, err)
	}
	d, err := toDomainPayroll(*m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxPayrollRepository) FindPayrolls(ctx context.Context, limit, offset int, search string) ([]domain.PayrollRecord, int64, error) {
	limit, offset = normalizePage(limit, offset)
	pattern := searchPattern(search)

	var total int64
	countQuery := `
        SELECT COUNT(*)
        FROM payroll_records pr
        JOIN employees e ON e.employee_id = pr.employee_id
        JOIN users u ON u.user_id = e.user_id
        WHERE $1 = '' OR u.name ILIKE $2 OR pr.status ILIKE $2;
    `
	if err := r.db.QueryRow(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := `
        SELECT pr.payroll_id, pr.employee_id, pr.work_date, pr.start_time, pr.end_time, pr.worked_hours, pr.worked_minutes, pr.gross_pay, pr.consumptions, pr.cash_advance, pr.imbalance, pr.debt_owed, pr.total_deductions, pr.net_pay, pr.status, pr.processed_by, pr.created_at, pr.created_by, pr.last_updated_at, pr.last_updated_by
        FROM payroll_records pr
        JOIN employees e ON e.employee_id = pr.employee_id
        JOIN users u ON u.user_id = e.user_id
        WHERE $1 = '' OR u.name ILIKE $2 OR pr.status ILIKE $2
        ORDER BY pr.work_date DESC, pr.created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.db.Query(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	records := []domain.PayrollRecord{}
	for rows.Next() {
		m, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		d, err := toDomainPayroll(*m)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, d)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating payroll rows: %w", rows.Err())
	}

	return records, total, nil
}

func (r *PgxPayrollRepository) UpdatePayroll(ctx context.Context, record domain.PayrollRecord) error {
	m, err := toModelPayroll(record)
	if err != nil {
		return err
	}
	query := `
        UPDATE payroll_records
        SET work_date = $1, start_time = $2, end_time = $3, worked_hours = $4, worked_minutes = $5, gross_pay = $6, consumptions = $7, cash_advance = $8, imbalance = $9, debt_owed = $10, total_deductions = $11, net_pay = $12, status = $13, last_updated_at = $14, last_updated_by = $15
        WHERE payroll_id = $16;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.WorkDate,
		m.StartTime,
		m.EndTime,
		m.WorkedHours,
		m.WorkedMinutes,
		m.GrossPay,
		m.Consumptions,
		m.CashAdvance,
		m.Imbalance,
		m.DebtOwed,
		m.TotalDeduct,
		m.NetPay,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.PayrollID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update payroll query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payroll record not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPayrollRepository) DeletePayroll(ctx context.Context, payrollID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM payroll_records WHERE payroll_id = $1;`, payrollID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payroll record not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
