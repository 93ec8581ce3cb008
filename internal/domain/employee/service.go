package employee

import "context"

// EmployeeService defines business logic for employee operations.
// Employees are never hard-deleted; Deactivate preserves history.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, withLastCheckIn bool) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeactivateEmployee(ctx context.Context, id int64) (EmployeeResponse, error)
}
