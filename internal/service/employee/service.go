package employee

import (
	"context"
	"fmt"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if err != employee.ErrEmployeeNotFound {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Status:   employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, withLastCheckIn bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, withLastCheckIn)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != current.Email {
		if _, err := s.employeeRepo.GetByEmail(ctx, *req.Email); err == nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		} else if err != employee.ErrEmployeeNotFound {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing email: %w", err)
		}
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService. Employees
// are never hard-deleted so their time entries stay reportable.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if current.Status == employee.StatusInactive {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyInactive
	}

	inactive := string(employee.StatusInactive)
	updated, err := s.employeeRepo.Update(ctx, employee.UpdateEmployeeRequest{
		ID:     id,
		Status: &inactive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}
