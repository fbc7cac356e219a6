package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	// Embedded zone data keeps America/Phoenix resolvable on hosts without tzdata.
	_ "time/tzdata"
)

// ErrNoTimeFound means the label carries no start time; callers fall back to the default window.
var ErrNoTimeFound = errors.New("no time found in shift label")

const (
	// ShiftDuration is the fixed length of a timed shift.
	ShiftDuration = 5*time.Hour + 30*time.Minute
	// RequestsOffLabel marks the all-day time off row.
	RequestsOffLabel = "requests off"
	// DefaultTimeZone is the zone shifts are worked in.
	DefaultTimeZone = "America/Phoenix"

	defaultStartHour = 9
	defaultEndHour   = 17
)

// "10:00-4:00", "9:00-close"
var shiftTimePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})-(close|\d{1,2}:\d{2})`)

// Interval is a resolved shift window.
type Interval struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// TimeResolver infers shift intervals from labels and row positions.
type TimeResolver struct {
	loc  *time.Location
	rows RowTable
}

// NewTimeResolver returns a resolver for the named zone.
func NewTimeResolver(zone string, rows RowTable) (*TimeResolver, error) {
	if zone == "" {
		zone = DefaultTimeZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", zone, err)
	}
	if rows == nil {
		rows = DefaultRowTable
	}
	return &TimeResolver{loc: loc, rows: rows}, nil
}

// Location returns the zone all intervals are expressed in.
func (r *TimeResolver) Location() *time.Location {
	return r.loc
}

// IsRequestsOff reports whether label is the all-day time off label.
func IsRequestsOff(label string) bool {
	return strings.EqualFold(label, RequestsOffLabel)
}

// ParseStartTime extracts the raw start hour and minute from a label.
func ParseStartTime(label string) (hour, minute int, ok bool) {
	m := shiftTimePattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// To24Hour applies the row based AM/PM rule to a raw hour. row is 1-based.
// Day rows keep the hour (12 is noon), night rows add 12 except to 12,
// every other row keeps the raw hour.
func (r *TimeResolver) To24Hour(hour, row int) int {
	switch r.rows.ClassifyOriginal(row) {
	case RoleNightShift:
		if hour != 12 {
			return hour + 12
		}
		return hour
	default:
		return hour
	}
}

// Resolve returns the interval for a shift label found on the 1-based row, on date.
func (r *TimeResolver) Resolve(label string, row int, date CivilDate) (Interval, error) {
	if IsRequestsOff(label) {
		day := date.At(0, 0, r.loc)
		return Interval{Start: day, End: day, AllDay: true}, nil
	}

	hour, minute, ok := ParseStartTime(label)
	if !ok {
		return Interval{}, ErrNoTimeFound
	}

	start := date.At(r.To24Hour(hour, row), minute, r.loc)
	return Interval{Start: start, End: start.Add(ShiftDuration)}, nil
}

// DefaultWindow is the 09:00-17:00 interval used when a label has no time.
func (r *TimeResolver) DefaultWindow(date CivilDate) Interval {
	return Interval{
		Start: date.At(defaultStartHour, 0, r.loc),
		End:   date.At(defaultEndHour, 0, r.loc),
	}
}

// DayBounds returns the first and last instant of date in the resolver's zone.
func (r *TimeResolver) DayBounds(date CivilDate) (time.Time, time.Time) {
	start := date.At(0, 0, r.loc)
	end := time.Date(date.Year, date.Month, date.Day, 23, 59, 59, int(999*time.Millisecond), r.loc)
	return start, end
}
