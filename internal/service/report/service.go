package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/report"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/timeutil"
)

const shortDate = "Jan 2"

type ReportServiceImpl struct {
	entryRepo    timeentry.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewReportService(entryRepo timeentry.TimeEntryRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// bucket is one calendar period of the chart. An entry belongs to the
// bucket whose [start, end] range covers its date.
type bucket struct {
	label  string
	start  time.Time
	end    time.Time
	values map[string]float64
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.ReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	from, to := s.resolveRange(req)

	entries, err := s.entryRepo.ListByRange(ctx, from, to, req.EmployeeID)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to fetch time entries: %w", err)
	}

	activeEmployees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to fetch active employees: %w", err)
	}

	buckets := buildBuckets(req.ReportType, from, to)
	fillBuckets(buckets, entries)

	summary, err := s.buildSummary(ctx, req, entries, activeEmployees)
	if err != nil {
		return report.Report{}, err
	}

	chart := make([]report.ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		chart = append(chart, report.ChartPoint{Label: b.label, Values: b.values})
	}

	legend := make([]employee.EmployeeResponse, 0, len(activeEmployees))
	for _, emp := range activeEmployees {
		legend = append(legend, employee.ToResponse(emp))
	}

	return report.Report{
		Title:      reportTitle(req.ReportType),
		ReportType: req.ReportType,
		DateFrom:   from.Format("2006-01-02"),
		DateTo:     to.Format("2006-01-02"),
		Chart:      chart,
		Summary:    summary,
		GrandTotal: grandTotal(summary),
		Employees:  legend,
	}, nil
}

// resolveRange applies the trailing-7-days default when no explicit
// range is given. Both bounds are date-only, inclusive.
func (s *ReportServiceImpl) resolveRange(req report.ReportRequest) (time.Time, time.Time) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	to := today
	if req.DateTo != "" {
		to, _ = time.Parse("2006-01-02", req.DateTo)
	}
	from := to.AddDate(0, 0, -6)
	if req.DateFrom != "" {
		from, _ = time.Parse("2006-01-02", req.DateFrom)
	}
	return from, to
}

// buildBuckets produces the calendar periods for the requested
// granularity, every period present even when no entry lands in it.
// Weekly buckets are Monday-aligned and monthly buckets calendar-month
// aligned, both expanded outward to cover the full range.
func buildBuckets(reportType string, from, to time.Time) []bucket {
	var buckets []bucket

	switch reportType {
	case report.TypeWeekly:
		for ws := timeutil.WeekStart(from); !ws.After(to); ws = ws.AddDate(0, 0, 7) {
			we := ws.AddDate(0, 0, 6)
			buckets = append(buckets, bucket{
				label:  ws.Format(shortDate) + " - " + we.Format(shortDate),
				start:  ws,
				end:    we,
				values: map[string]float64{},
			})
		}
	case report.TypeMonthly:
		for ms := timeutil.MonthStart(from); !ms.After(to); ms = ms.AddDate(0, 1, 0) {
			buckets = append(buckets, bucket{
				label:  ms.Format("January 2006"),
				start:  ms,
				end:    ms.AddDate(0, 1, -1),
				values: map[string]float64{},
			})
		}
	default: // daily, custom, employee: one bucket per day, inclusive
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			buckets = append(buckets, bucket{
				label:  d.Format(shortDate),
				start:  d,
				end:    d,
				values: map[string]float64{},
			})
		}
	}

	return buckets
}

// fillBuckets adds each closed entry's hours into the bucket covering
// its date, keyed by employee id. Open entries carry no total and are
// excluded from the chart. Rounding happens once per bucket, not per
// accumulation, so multi-entry buckets carry no per-step drift.
func fillBuckets(buckets []bucket, entries []timeentry.TimeEntry) {
	for _, entry := range entries {
		if entry.TotalHours == nil {
			continue
		}
		date := truncateToDay(entry.Date)
		for i := range buckets {
			if date.Before(buckets[i].start) || date.After(buckets[i].end) {
				continue
			}
			key := strconv.FormatInt(entry.EmployeeID, 10)
			buckets[i].values[key] += *entry.TotalHours
			break
		}
	}

	for i := range buckets {
		for key, hours := range buckets[i].values {
			buckets[i].values[key] = timeutil.Round2(hours)
		}
	}
}

// buildSummary computes the per-employee rows. Scope is the filtered
// employee when given, otherwise every active employee; employees with
// no entries in range are skipped entirely.
func (s *ReportServiceImpl) buildSummary(ctx context.Context, req report.ReportRequest, entries []timeentry.TimeEntry, activeEmployees []employee.Employee) ([]report.EmployeeSummary, error) {
	scope := activeEmployees
	if req.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		scope = []employee.Employee{emp}
	}

	byEmployee := make(map[int64][]timeentry.TimeEntry)
	for _, entry := range entries {
		byEmployee[entry.EmployeeID] = append(byEmployee[entry.EmployeeID], entry)
	}

	summary := make([]report.EmployeeSummary, 0, len(scope))
	for _, emp := range scope {
		empEntries := byEmployee[emp.ID]
		if len(empEntries) == 0 {
			continue
		}

		row := report.EmployeeSummary{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
		}
		for _, entry := range empEntries {
			// Break minutes count even for entries still open.
			row.TotalBreakMinutes += entry.BreakMinutes
			if entry.TotalHours != nil {
				row.TotalDays++
				row.TotalHours += *entry.TotalHours
			}
		}
		row.TotalHours = timeutil.Round2(row.TotalHours)
		if row.TotalDays > 0 {
			row.AvgDailyHours = timeutil.Round2(row.TotalHours / float64(row.TotalDays))
		}
		summary = append(summary, row)
	}

	return summary, nil
}

// grandTotal sums the summary rows. The aggregate average is total
// hours over total days, not a mean of the per-row averages.
func grandTotal(summary []report.EmployeeSummary) report.GrandTotal {
	var total report.GrandTotal
	for _, row := range summary {
		total.TotalDays += row.TotalDays
		total.TotalHours += row.TotalHours
		total.TotalBreakMinutes += row.TotalBreakMinutes
	}
	total.TotalHours = timeutil.Round2(total.TotalHours)
	if total.TotalDays > 0 {
		total.AvgDailyHours = timeutil.Round2(total.TotalHours / float64(total.TotalDays))
	}
	return total
}

func reportTitle(reportType string) string {
	switch reportType {
	case report.TypeWeekly:
		return "Weekly Report"
	case report.TypeMonthly:
		return "Monthly Report"
	case report.TypeCustom:
		return "Custom Report"
	case report.TypeEmployee:
		return "Employee Report"
	default:
		return "Daily Report"
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
