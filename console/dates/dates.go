// Package dates holds the date-only helpers the console needs: completed-years
// age from a birth date, and the calendar-date ⇄ timestamp boundary used by
// the edit form.
package dates

import (
	"time"

	"github.com/araddon/dateparse"
)

const dayFormat = "2006-01-02"

// Age returns the number of completed years between birthDate and now.
// The second return value is false when no age can be derived: empty input,
// an unparseable date, or a birth date in the future.
func Age(birthDate string, now time.Time) (int, bool) {
	if birthDate == "" {
		return 0, false
	}

	birth, err := dateparse.ParseIn(birthDate, time.UTC)
	if err != nil {
		return 0, false
	}

	now = now.UTC()
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}

// CalendarDate extracts the date portion of a stored timestamp string for
// editing, or "" when no date is stored.
func CalendarDate(timestamp string) string {
	if len(timestamp) < len(dayFormat) {
		return ""
	}
	return timestamp[:len(dayFormat)]
}

// Timestamp converts an edited calendar date back to the wire representation,
// midnight UTC of that day. The conversion is pure string work so the local
// timezone can never shift the date. Cleared or malformed input maps to "".
func Timestamp(day string) string {
	if day == "" {
		return ""
	}
	if _, err := time.Parse(dayFormat, day); err != nil {
		return ""
	}
	return day + "T00:00:00Z"
}
