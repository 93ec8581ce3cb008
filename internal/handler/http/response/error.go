package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/auth"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation errors first
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrWeekendDate):
		BadRequest(w, "Time entries cannot fall on a weekend", nil)

	// Default
	default:
		slog.Error("unhandled request error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
