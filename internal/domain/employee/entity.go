package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID        int64
	Name      string
	Email     string
	Position  *string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join enrichment: most recent check-in timestamp, when requested.
	LastCheckIn *time.Time
}

// IsActive reports whether the employee is counted in dashboard and
// report aggregates.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
