package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee record.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves one employee.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByEmail retrieves one employee by unique email.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employees, newest first. When withLastCheckIn
	// is set, each row carries the employee's most recent check-in via
	// a single joined query.
	List(ctx context.Context, withLastCheckIn bool) ([]Employee, error)

	// ListActive retrieves employees with status active.
	ListActive(ctx context.Context) ([]Employee, error)

	// CountActive counts employees with status active.
	CountActive(ctx context.Context) (int64, error)

	// Update applies a partial update and returns the stored row.
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
}
