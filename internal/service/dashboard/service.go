package dashboard

import (
	"context"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/dashboard"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

// workDaysPerWeek is the fixed divisor for the weekly average,
// regardless of how many entries the week actually holds.
const workDaysPerWeek = 5

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	entryRepo     timeentry.TimeEntryRepository
	employeeRepo  employee.EmployeeRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, entryRepo timeentry.TimeEntryRepository, employeeRepo employee.EmployeeRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		entryRepo:     entryRepo,
		employeeRepo:  employeeRepo,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date time.Time) (dashboard.DashboardResponse, error) {
	var (
		entries []timeentry.TimeEntry
		stats   dashboard.Stats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		entries, err = s.entryRepo.ListByDate(gCtx, date)
		return err
	})

	g.Go(func() error {
		var err error
		stats, err = s.GetStats(gCtx, date)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, timeentry.ToResponse(entry))
	}

	return dashboard.DashboardResponse{
		Entries: responses,
		Stats:   stats,
	}, nil
}

// GetStats implements dashboard.DashboardService. The three aggregates
// are independent, one query each, run concurrently.
func (s *DashboardServiceImpl) GetStats(ctx context.Context, date time.Time) (dashboard.Stats, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := timeutil.WeekStart(day)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var (
		dayTotals   dashboard.DayTotals
		weekHours   float64
		activeCount int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		dayTotals, err = s.dashboardRepo.GetDayTotals(gCtx, day)
		return err
	})

	g.Go(func() error {
		var err error
		weekHours, err = s.dashboardRepo.GetRangeTotalHours(gCtx, weekStart, weekEnd)
		return err
	})

	g.Go(func() error {
		var err error
		activeCount, err = s.employeeRepo.CountActive(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.Stats{}, err
	}

	stats := dashboard.Stats{
		TotalHours:      timeutil.Round2(dayTotals.TotalHours),
		ActiveEmployees: activeCount,
		CheckedInCount:  dayTotals.CheckedInCount,
	}
	if activeCount > 0 {
		stats.AvgHoursPerEmployee = timeutil.Round2(dayTotals.TotalHours / float64(activeCount))
		stats.WeeklyAvgHours = timeutil.Round2(weekHours / float64(activeCount*workDaysPerWeek))
	}

	return stats, nil
}
