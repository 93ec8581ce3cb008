package timeentry

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	// Create inserts a new entry. TotalHours must already be derived by
	// the caller.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetByID retrieves one entry with employee-name enrichment.
	GetByID(ctx context.Context, id int64) (TimeEntry, error)

	// List retrieves entries matching the filter, newest first, with a
	// total count for pagination.
	List(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, int64, error)

	// ListByDate retrieves all entries on one calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]TimeEntry, error)

	// ListByRange retrieves all entries in [from, to] inclusive,
	// optionally limited to one employee, in date order. Used by the
	// report engine; not paginated.
	ListByRange(ctx context.Context, from, to time.Time, employeeID *int64) ([]TimeEntry, error)

	// Update persists a fully-populated entry.
	Update(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// Delete removes an entry permanently.
	Delete(ctx context.Context, id int64) error
}
