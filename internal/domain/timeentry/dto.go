package timeentry

import (
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/timeutil"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/validator"
)

type CreateTimeEntryRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	BreakMinutes int     `json:"break_minutes"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else if timeutil.IsWeekend(date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "time entries cannot fall on a weekend",
		})
	}

	if validator.IsEmpty(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time is required",
		})
	} else if !validator.IsValidTimeOfDay(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be a valid time like 09:00 or 5:30 PM",
		})
	}

	if r.CheckOutTime != nil && *r.CheckOutTime != "" && !validator.IsValidTimeOfDay(*r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be a valid time like 17:00 or 5:30 PM",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateTimeEntryRequest carries a partial update; nil fields are left
// untouched. Total hours are recomputed, never accepted from input.
type UpdateTimeEntryRequest struct {
	ID           int64   `json:"-"`
	Date         *string `json:"date,omitempty"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if date, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		} else if timeutil.IsWeekend(date) {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "time entries cannot fall on a weekend",
			})
		}
	}

	if r.CheckInTime != nil && !validator.IsValidTimeOfDay(*r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be a valid time like 09:00 or 5:30 PM",
		})
	}

	if r.CheckOutTime != nil && *r.CheckOutTime != "" && !validator.IsValidTimeOfDay(*r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be a valid time like 17:00 or 5:30 PM",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryFilter struct {
	DateFrom   *string `json:"date_from,omitempty"` // YYYY-MM-DD
	DateTo     *string `json:"date_to,omitempty"`   // YYYY-MM-DD
	EmployeeID *int64  `json:"employee_id,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *TimeEntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.DateFrom != nil && *f.DateFrom != "" {
		if _, ok := validator.IsValidDate(*f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be in YYYY-MM-DD format",
			})
		}
	}

	if f.DateTo != nil && *f.DateTo != "" {
		if _, ok := validator.IsValidDate(*f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryResponse struct {
	ID           int64    `json:"id"`
	EmployeeID   int64    `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	BreakMinutes int      `json:"break_minutes"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func ToResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		Date:         e.Date.Format("2006-01-02"),
		CheckInTime:  e.CheckInTime,
		CheckOutTime: e.CheckOutTime,
		BreakMinutes: e.BreakMinutes,
		TotalHours:   e.TotalHours,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}
