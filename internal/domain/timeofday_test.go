package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q should fail", tt.in)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve, "parse failures are validation errors")
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestTimeOfDayString_RoundTrips(t *testing.T) {
	for _, s := range []string{"00:05", "09:30", "18:45", "23:59"} {
		parsed, err := ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}
}

func TestDurationMinutes_SameDay(t *testing.T) {
	start, _ := ParseTimeOfDay("09:00")
	end, _ := ParseTimeOfDay("10:30")
	assert.Equal(t, 90, DurationMinutes(start, end))
}

func TestDurationMinutes_CrossesMidnight(t *testing.T) {
	start, _ := ParseTimeOfDay("23:30")
	end, _ := ParseTimeOfDay("01:15")
	// (24h - 23:30) + 01:15 = 30 + 75
	assert.Equal(t, 105, DurationMinutes(start, end))
}

func TestDurationMinutes_EqualTimesYieldZero(t *testing.T) {
	at, _ := ParseTimeOfDay("12:00")
	assert.Equal(t, 0, DurationMinutes(at, at))
}

func TestDurationMinutes_FullDayMinusOne(t *testing.T) {
	start, _ := ParseTimeOfDay("00:01")
	end, _ := ParseTimeOfDay("00:00")
	assert.Equal(t, 1439, DurationMinutes(start, end))
}
