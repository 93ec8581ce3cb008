package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// parseFormats are tried in order when normalizing a time-of-day
// string. Both 24-hour and 12-hour clock inputs are accepted.
var parseFormats = []string{"15:04", "3:04 PM", "3:04PM"}

// NormalizeTime converts a time-of-day string to 24-hour "HH:MM".
// Empty input stays empty; input that is already normalized comes
// back unchanged.
func NormalizeTime(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	upper := strings.ToUpper(trimmed)
	for _, format := range parseFormats {
		if parsed, err := time.Parse(format, upper); err == nil {
			return parsed.Format("15:04")
		}
	}
	return trimmed
}

// ToMinutes converts a normalized "HH:MM" string to minutes since
// midnight.
func ToMinutes(value string) int {
	parsed, err := time.Parse("15:04", NormalizeTime(value))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// ElapsedHours derives worked hours from a check-in, an optional
// check-out and a break. A nil or empty check-out yields nil: the
// entry is still open. A check-out at or before the check-in is read
// as a single crossing of midnight. The break comes off after the
// wrap and never triggers a second one; a break longer than the
// worked period clamps to zero.
func ElapsedHours(checkIn string, checkOut *string, breakMinutes int) *float64 {
	if checkOut == nil || strings.TrimSpace(*checkOut) == "" {
		return nil
	}

	minutes := ToMinutes(*checkOut) - ToMinutes(checkIn)
	if minutes <= 0 {
		minutes += 24 * 60
	}
	minutes -= breakMinutes
	if minutes < 0 {
		minutes = 0
	}

	hours := Round2(float64(minutes) / 60)
	return &hours
}

// FormatDuration renders minutes as "Hh Mm".
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// WeekStart returns the Monday of the week containing the date,
// truncated to midnight.
func WeekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// MonthStart returns the first day of the month containing the date,
// truncated to midnight.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Round2 rounds to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
