package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to the shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(db),
		RoleRepo:       newPgxRoleRepository(db),
		PermissionRepo: newPgxPermissionRepository(db),
		EmployeeRepo:   newPgxEmployeeRepository(db),
		PayrollRepo:    newPgxPayrollRepository(db),
		ActivityRepo:   newPgxActivityLogRepository(db),
	}
}
