package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (name, email, position, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.Name, newEmployee.Email, newEmployee.Position, newEmployee.Status,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, position, status, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, position, status, created_at, updated_at
		FROM employees
		WHERE email = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository. With enrichment the
// latest check-in per employee comes from a single joined query rather
// than one lookup per row.
func (e *employeeRepositoryImpl) List(ctx context.Context, withLastCheckIn bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, position, status, created_at, updated_at
		FROM employees
		ORDER BY created_at DESC
	`
	if withLastCheckIn {
		query = `
			SELECT e.id, e.name, e.email, e.position, e.status, e.created_at, e.updated_at,
				   MAX(t.created_at) AS last_check_in
			FROM employees e
			LEFT JOIN time_entries t ON t.employee_id = e.id
			GROUP BY e.id
			ORDER BY e.created_at DESC
		`
	}

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if withLastCheckIn {
			err = rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Status,
				&emp.CreatedAt, &emp.UpdatedAt, &emp.LastCheckIn)
		} else {
			err = rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Status,
				&emp.CreatedAt, &emp.UpdatedAt)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, position, status, created_at, updated_at
		FROM employees
		WHERE status = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Status,
			&emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// CountActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, employee.StatusActive).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// Update implements employee.EmployeeRepository with a partial SET
// clause built from the non-nil request fields.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Position != nil {
		setClauses = append(setClauses, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, position, status, created_at, updated_at
	`, strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	var emp employee.Employee
	err := q.QueryRow(ctx, query, args...).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}
