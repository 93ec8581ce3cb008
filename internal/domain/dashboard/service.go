package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	// GetDashboard returns the day's entries plus statistics.
	GetDashboard(ctx context.Context, date time.Time) (DashboardResponse, error)

	// GetStats computes the statistics alone.
	GetStats(ctx context.Context, date time.Time) (Stats, error)
}
