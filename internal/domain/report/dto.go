package report

import (
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/validator"
)

const (
	TypeDaily    = "daily"
	TypeWeekly   = "weekly"
	TypeMonthly  = "monthly"
	TypeCustom   = "custom"
	TypeEmployee = "employee"
)

var validTypes = []string{TypeDaily, TypeWeekly, TypeMonthly, TypeCustom, TypeEmployee}

type ReportRequest struct {
	ReportType string `json:"report_type"`
	DateFrom   string `json:"date_from,omitempty"` // YYYY-MM-DD
	DateTo     string `json:"date_to,omitempty"`   // YYYY-MM-DD
	EmployeeID *int64 `json:"employee_id,omitempty"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReportType == "" {
		r.ReportType = TypeDaily // Default report type
	}
	if !validator.IsInSlice(r.ReportType, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "report_type",
			Message: "report_type must be one of: daily, weekly, monthly, custom, employee",
		})
	}

	if r.DateFrom != "" {
		if _, ok := validator.IsValidDate(r.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be in YYYY-MM-DD format",
			})
		}
	}

	if r.DateTo != "" {
		if _, ok := validator.IsValidDate(r.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be in YYYY-MM-DD format",
			})
		}
	}

	if r.DateFrom != "" && r.DateTo != "" {
		from, okFrom := validator.IsValidDate(r.DateFrom)
		to, okTo := validator.IsValidDate(r.DateTo)
		if okFrom && okTo && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must not be before date_from",
			})
		}
	}

	if r.ReportType == TypeEmployee && r.EmployeeID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required for an employee report",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ChartPoint is one calendar bucket of the chart series. Values maps
// employee id (as a decimal string, JSON object keys) to summed hours.
type ChartPoint struct {
	Label  string             `json:"label"`
	Values map[string]float64 `json:"values"`
}

// EmployeeSummary is one tabular row of the report.
type EmployeeSummary struct {
	EmployeeID        int64   `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	TotalDays         int     `json:"total_days"`
	TotalHours        float64 `json:"total_hours"`
	AvgDailyHours     float64 `json:"avg_daily_hours"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
}

// GrandTotal aggregates the summary rows. AvgDailyHours is the
// aggregate ratio, not a mean of per-row averages.
type GrandTotal struct {
	TotalDays         int     `json:"total_days"`
	TotalHours        float64 `json:"total_hours"`
	AvgDailyHours     float64 `json:"avg_daily_hours"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
}

type Report struct {
	Title      string                      `json:"title"`
	ReportType string                      `json:"report_type"`
	DateFrom   string                      `json:"date_from"`
	DateTo     string                      `json:"date_to"`
	Chart      []ChartPoint                `json:"chart"`
	Summary    []EmployeeSummary           `json:"summary"`
	GrandTotal GrandTotal                  `json:"grand_total"`
	Employees  []employee.EmployeeResponse `json:"employees"`
}
