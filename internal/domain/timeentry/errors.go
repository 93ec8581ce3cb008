package timeentry

import "errors"

var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrWeekendDate       = errors.New("time entries cannot fall on a weekend")
)
