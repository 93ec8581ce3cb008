package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/dashboard"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetDayTotals returns the day's summed hours and open-entry count in
// a single query. Entries without a checkout have NULL total_hours and
// contribute zero.
func (r *dashboardRepositoryImpl) GetDayTotals(ctx context.Context, day time.Time) (dashboard.DayTotals, error) {
	q := GetQuerier(ctx, r.db)

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	query := `
		SELECT
			COALESCE(SUM(total_hours), 0) AS total_hours,
			COALESCE(SUM(CASE WHEN check_out_time IS NULL THEN 1 ELSE 0 END), 0) AS checked_in
		FROM time_entries
		WHERE date = $1
	`

	var totals dashboard.DayTotals
	err := q.QueryRow(ctx, query, startOfDay).Scan(&totals.TotalHours, &totals.CheckedInCount)
	if err != nil {
		return dashboard.DayTotals{}, fmt.Errorf("failed to get day totals: %w", err)
	}
	return totals, nil
}

// GetRangeTotalHours sums total hours over [from, to).
func (r *dashboardRepositoryImpl) GetRangeTotalHours(ctx context.Context, from, to time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_hours), 0)
		FROM time_entries
		WHERE date >= $1 AND date < $2
	`

	var total float64
	if err := q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to get range total hours: %w", err)
	}
	return total, nil
}
