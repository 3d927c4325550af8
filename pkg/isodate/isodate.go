// Package isodate checks the date and time text the API accepts.
package isodate

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a wall-clock time in HH:MM or HH:MM:SS form.
func ValidTime(s string) bool {
	if _, err := time.Parse(TimeLayout, s); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", s)
	return err == nil
}

// CheckDates returns an error naming the first field whose value is set
// but not a valid date.
func CheckDates(fields map[string]*string) error {
	for name, v := range fields {
		if v != nil && *v != "" && !ValidDate(*v) {
			return fmt.Errorf("%s: invalid date %q, expected YYYY-MM-DD", name, *v)
		}
	}
	return nil
}

// CheckTimes is CheckDates for time-of-day fields.
func CheckTimes(fields map[string]*string) error {
	for name, v := range fields {
		if v != nil && *v != "" && !ValidTime(*v) {
			return fmt.Errorf("%s: invalid time %q, expected HH:MM", name, *v)
		}
	}
	return nil
}
