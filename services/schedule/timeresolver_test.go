package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *TimeResolver {
	t.Helper()
	r, err := NewTimeResolver(DefaultTimeZone, nil)
	require.NoError(t, err)
	return r
}

func july(day int) CivilDate {
	return CivilDate{Year: 2025, Month: time.July, Day: day}
}

func TestResolveRowRule(t *testing.T) {
	r := newTestResolver(t)
	tests := []struct {
		name      string
		label     string
		row       int
		wantStart string
		wantEnd   string
	}{
		{"day row keeps hour", "9:00-close", 7, "2025-07-07T09:00:00-07:00", "2025-07-07T14:30:00-07:00"},
		{"night row adds twelve", "9:00-close", 18, "2025-07-07T21:00:00-07:00", "2025-07-08T02:30:00-07:00"},
		{"noon on eleven o'clock row", "12:00-close", 11, "2025-07-07T12:00:00-07:00", "2025-07-07T17:30:00-07:00"},
		{"noon on row ten", "12:00-close", 10, "2025-07-07T12:00:00-07:00", "2025-07-07T17:30:00-07:00"},
		{"noon on night row", "12:00-close", 20, "2025-07-07T12:00:00-07:00", "2025-07-07T17:30:00-07:00"},
		{"minutes kept", "10:30-4:00", 8, "2025-07-07T10:30:00-07:00", "2025-07-07T16:00:00-07:00"},
		{"crosses midnight", "11:00-close", 25, "2025-07-07T23:00:00-07:00", "2025-07-08T04:30:00-07:00"},
		{"unclassified row keeps hour", "9:00-close", 30, "2025-07-07T09:00:00-07:00", "2025-07-07T14:30:00-07:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := r.Resolve(tt.label, tt.row, july(7))
			require.NoError(t, err)
			assert.False(t, iv.AllDay)
			assert.Equal(t, tt.wantStart, iv.Start.Format(time.RFC3339))
			assert.Equal(t, tt.wantEnd, iv.End.Format(time.RFC3339))
			assert.Equal(t, ShiftDuration, iv.End.Sub(iv.Start))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := newTestResolver(t)
	for _, row := range []int{5, 7, 11, 18, 25} {
		first, err := r.Resolve("9:00-close", row, july(9))
		require.NoError(t, err)
		second, err := r.Resolve("9:00-close", row, july(9))
		require.NoError(t, err)
		assert.True(t, first.Start.Equal(second.Start))
		assert.True(t, first.End.Equal(second.End))
	}
}

func TestResolveRequestsOff(t *testing.T) {
	r := newTestResolver(t)
	for _, label := range []string{"Requests Off", "requests off", "REQUESTS OFF"} {
		iv, err := r.Resolve(label, 5, july(7))
		require.NoError(t, err)
		assert.True(t, iv.AllDay)
		assert.True(t, iv.Start.Equal(iv.End))
		assert.Equal(t, july(7), CivilDateOf(iv.Start))
		assert.Equal(t, 0, iv.Start.Hour())
		assert.Equal(t, 0, iv.Start.Minute())
	}
}

func TestResolveNoTime(t *testing.T) {
	r := newTestResolver(t)
	_, err := r.Resolve("Manager", 7, july(7))
	assert.ErrorIs(t, err, ErrNoTimeFound)

	iv := r.DefaultWindow(july(7))
	assert.Equal(t, "2025-07-07T09:00:00-07:00", iv.Start.Format(time.RFC3339))
	assert.Equal(t, "2025-07-07T17:00:00-07:00", iv.End.Format(time.RFC3339))
}

func TestParseStartTime(t *testing.T) {
	h, m, ok := ParseStartTime("Open 6:45-close")
	require.True(t, ok)
	assert.Equal(t, 6, h)
	assert.Equal(t, 45, m)

	_, _, ok = ParseStartTime("9-close")
	assert.False(t, ok)
	_, _, ok = ParseStartTime("9:00 - close")
	assert.False(t, ok)
}

func TestDayBounds(t *testing.T) {
	r := newTestResolver(t)
	start, end := r.DayBounds(july(7))
	assert.Equal(t, "2025-07-07T00:00:00-07:00", start.Format(time.RFC3339))
	assert.Equal(t, july(7), CivilDateOf(end))
	assert.Equal(t, 24*time.Hour-time.Millisecond, end.Sub(start))
}

func TestNewTimeResolverBadZone(t *testing.T) {
	_, err := NewTimeResolver("Not/AZone", nil)
	assert.Error(t, err)

	r, err := NewTimeResolver("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeZone, r.Location().String())
}
