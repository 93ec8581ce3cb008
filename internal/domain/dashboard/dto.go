package dashboard

import (
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
)

// Stats is the day-level dashboard snapshot. All hour values are
// rounded to two decimals.
type Stats struct {
	TotalHours          float64 `json:"total_hours"`
	ActiveEmployees     int64   `json:"active_employees"`
	CheckedInCount      int64   `json:"checked_in_count"`
	AvgHoursPerEmployee float64 `json:"avg_hours_per_employee"`
	WeeklyAvgHours      float64 `json:"weekly_avg_hours"`
}

// DashboardResponse pairs the day's entries with its statistics.
type DashboardResponse struct {
	Entries []timeentry.TimeEntryResponse `json:"entries"`
	Stats   Stats                         `json:"stats"`
}

// DayTotals are the per-day aggregates fetched in one query.
type DayTotals struct {
	TotalHours     float64
	CheckedInCount int64
}
