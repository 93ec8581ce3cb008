package dashboard

import (
	"context"
	"time"
)

// DashboardRepository exposes the aggregate queries behind the
// dashboard, one query per aggregate.
type DashboardRepository interface {
	// GetDayTotals returns total hours and open-entry count for one
	// calendar day. Open entries contribute zero hours.
	GetDayTotals(ctx context.Context, day time.Time) (DayTotals, error)

	// GetRangeTotalHours sums total hours over [from, to) exclusive of
	// the upper bound.
	GetRangeTotalHours(ctx context.Context, from, to time.Time) (float64, error)
}
