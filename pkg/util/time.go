package util

import (
	"time"

	iso8601 "github.com/senseyeio/duration"
)

var durationReference = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseISO8601Duration converts a duration like PT15S or PT1M30S into a time.Duration.
// Calendar parts (years, months, days) are measured from a fixed UTC reference date.
func ParseISO8601Duration(value string) (time.Duration, error) {
	duration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	return duration.Shift(durationReference).Sub(durationReference), nil
}
