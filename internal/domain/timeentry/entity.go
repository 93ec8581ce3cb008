package timeentry

import "time"

// TimeEntry is one work period for one employee on one calendar date.
// An entry is open while CheckOutTime is nil; TotalHours is derived on
// checkout and never user-supplied.
type TimeEntry struct {
	ID           int64
	EmployeeID   int64
	Date         time.Time
	CheckInTime  string
	CheckOutTime *string
	BreakMinutes int
	TotalHours   *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join enrichment
	EmployeeName *string
}

// IsOpen reports whether the entry is still awaiting checkout.
func (e *TimeEntry) IsOpen() bool {
	return e.CheckOutTime == nil || *e.CheckOutTime == ""
}
