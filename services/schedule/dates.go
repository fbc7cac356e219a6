package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	dateLabelPattern = regexp.MustCompile(`(\d+)\s*-\s*(\w+)`)
	weekYearPattern  = regexp.MustCompile(`_(\d{4})\s*$`)
)

var monthAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March, "Apr": time.April,
	"May": time.May, "Jun": time.June, "Jul": time.July, "Aug": time.August,
	"Sep": time.September, "Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// CivilDate is a calendar day without time or zone.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCivilDate validates the day against the month's length.
func NewCivilDate(year int, month time.Month, day int) (CivilDate, bool) {
	if month < time.January || month > time.December || day < 1 {
		return CivilDate{}, false
	}
	if day > time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day() {
		return CivilDate{}, false
	}
	return CivilDate{Year: year, Month: month, Day: day}, true
}

// CivilDateOf returns the calendar day of t in its own location.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// ParseCivilDate parses "2006-01-02".
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return CivilDate{}, err
	}
	return CivilDateOf(t), nil
}

// At returns the instant of hour:minute on this day in loc. Out of range hours roll over.
func (d CivilDate) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDateLabel extracts the day and month from labels like "7 - Jul".
func ParseDateLabel(label string) (day int, month time.Month, ok bool) {
	m := dateLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	month, ok = monthAbbrev[m[2]]
	if !ok {
		return 0, 0, false
	}
	return day, month, true
}

// WeekYear extracts the year from tab names like "week 28_2025".
func WeekYear(week string) (int, bool) {
	m := weekYearPattern.FindStringSubmatch(week)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// ResolveDateLabel combines a date label with a year into a validated civil date.
func ResolveDateLabel(label string, year int) (CivilDate, bool) {
	day, month, ok := ParseDateLabel(label)
	if !ok {
		return CivilDate{}, false
	}
	return NewCivilDate(year, month, day)
}
