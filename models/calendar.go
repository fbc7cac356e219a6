package models

import "time"

// EventTime is either a zoned instant or a date-only value ("2006-01-02").
type EventTime struct {
	DateTime time.Time `json:"dateTime,omitempty"`
	Date     string    `json:"date,omitempty"`
}

// IsDateOnly reports whether the value carries no time of day.
func (t EventTime) IsDateOnly() bool {
	return t.Date != ""
}

// String returns the RFC 3339 instant or the date.
func (t EventTime) String() string {
	if t.IsDateOnly() {
		return t.Date
	}
	if t.DateTime.IsZero() {
		return ""
	}
	return t.DateTime.Format(time.RFC3339)
}

// CalendarEventRef is an event as known to the calendar backend.
type CalendarEventRef struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	ColorID     string    `json:"colorId,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
}

// EventPayload is the body of an insert call.
type EventPayload struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	ColorID     string    `json:"colorId,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	TimeZone    string    `json:"timeZone,omitempty"`
}

// CalendarEventSummary is the flattened shape returned by GET /events.
type CalendarEventSummary struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Summarize flattens an event for listing.
func Summarize(e CalendarEventRef) CalendarEventSummary {
	return CalendarEventSummary{ID: e.ID, Summary: e.Summary, Start: e.Start.String(), End: e.End.String()}
}
