package timeentry

import "context"

// TimeEntryService defines business logic for time entries. Total
// hours are always recomputed from check-in, check-out and break
// minutes; weekend dates are rejected on create and update.
type TimeEntryService interface {
	CreateTimeEntry(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	GetTimeEntry(ctx context.Context, id int64) (TimeEntryResponse, error)
	ListTimeEntries(ctx context.Context, filter TimeEntryFilter) ([]TimeEntryResponse, int64, error)
	UpdateTimeEntry(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	DeleteTimeEntry(ctx context.Context, id int64) error

	// CheckoutTimeEntry closes an open entry at the current wall-clock
	// time. Checking out an already-closed entry is a no-op returning
	// the entry unchanged.
	CheckoutTimeEntry(ctx context.Context, id int64) (TimeEntryResponse, error)
}
