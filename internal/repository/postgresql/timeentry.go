package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `
	t.id, t.employee_id, t.date, t.check_in_time, t.check_out_time,
	t.break_minutes, t.total_hours, t.created_at, t.updated_at,
	e.name AS employee_name
`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var entry timeentry.TimeEntry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.CheckInTime, &entry.CheckOutTime,
		&entry.BreakMinutes, &entry.TotalHours, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName,
	)
	return entry, err
}

// Create implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_entries (employee_id, date, check_in_time, check_out_time, break_minutes, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Date, entry.CheckInTime, entry.CheckOutTime,
		entry.BreakMinutes, entry.TotalHours,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry by id: %w", err)
	}

	return entry, nil
}

// List implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) List(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, t.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.DateFrom != nil && *filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND t.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil && *filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND t.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM time_entries t WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+timeEntryColumns+`
		FROM time_entries t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE %s
		ORDER BY t.date DESC, t.check_in_time DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListByDate implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]timeentry.TimeEntry, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return t.queryRange(ctx, day, day, nil)
}

// ListByRange implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time, employeeID *int64) ([]timeentry.TimeEntry, error) {
	return t.queryRange(ctx, from, to, employeeID)
}

func (t *timeEntryRepositoryImpl) queryRange(ctx context.Context, from, to time.Time, employeeID *int64) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.date >= $1 AND t.date <= $2
	`
	args := []interface{}{from, to}
	if employeeID != nil {
		query += " AND t.employee_id = $3"
		args = append(args, *employeeID)
	}
	query += " ORDER BY t.date ASC, t.check_in_time ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries by range: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Update implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) Update(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE time_entries
		SET employee_id = $1, date = $2, check_in_time = $3, check_out_time = $4,
			break_minutes = $5, total_hours = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Date, entry.CheckInTime, entry.CheckOutTime,
		entry.BreakMinutes, entry.TotalHours, entry.ID,
	).Scan(&entry.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	return entry, nil
}

// Delete implements timeentry.TimeEntryRepository.
func (t *timeEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}
