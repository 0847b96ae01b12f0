package domain

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time with no date component, stored as minutes
// since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("invalid time %q, expected HH:MM", s)}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("time %q out of range", s)}
	}
	return TimeOfDay(h*60 + m), nil
}

// TimeOfDayFromClock extracts the clock portion of an instant.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// MinusMinutes shifts the time back by m minutes, wrapping across
// midnight.
func (t TimeOfDay) MinusMinutes(m int) TimeOfDay {
	shifted := (int(t) - m) % minutesPerDay
	if shifted < 0 {
		shifted += minutesPerDay
	}
	return TimeOfDay(shifted)
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid reports whether t falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// DurationMinutes returns the elapsed minutes between start and end.
// An end earlier than start means the session crossed midnight, so the
// elapsed time wraps around the day boundary. Equal times yield zero;
// write paths must reject that before persisting.
func DurationMinutes(start, end TimeOfDay) int {
	if end < start {
		return (minutesPerDay - int(start)) + int(end)
	}
	return int(end) - int(start)
}
