package employee

import (
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Position *string `json:"position,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update; nil fields are left
// untouched.
type UpdateEmployeeRequest struct {
	ID       int64   `json:"-"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Position *string `json:"position,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Position    *string `json:"position,omitempty"`
	Status      string  `json:"status"`
	LastCheckIn *string `json:"last_check_in,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Position:  e.Position,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
	if e.LastCheckIn != nil {
		s := e.LastCheckIn.Format(time.RFC3339)
		resp.LastCheckIn = &s
	}
	return resp
}
