package repository

import (
	"database/sql"
	"time"
)

// dateLayout stores calendar dates without a time component.
const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil for NULL, empty, or unparsable values.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite-storable value.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableStringToValue converts a *string to a SQLite-storable value.
func nullableStringToValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// nullableFloatToValue converts a *float64 to a SQLite-storable value.
func nullableFloatToValue(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullStringToPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullFloatToPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
