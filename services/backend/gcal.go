package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"shiftsync/models"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// wallClockLayout is the zone-less form sent alongside an explicit timeZone.
const wallClockLayout = "2006-01-02T15:04:05"

// GoogleCalendar implements CalendarBackend on the Calendar v3 API.
type GoogleCalendar struct {
	svc        *calendar.Service
	calendarID string
}

func NewGoogleCalendar(svc *calendar.Service, calendarID string) *GoogleCalendar {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleCalendar{svc: svc, calendarID: calendarID}
}

// ListEvents returns every single event in the window, following pagination.
func (g *GoogleCalendar) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEventRef, error) {
	var out []models.CalendarEventRef
	pageToken := ""
	for {
		call := g.svc.Events.List(g.calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		events, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		for _, item := range events.Items {
			ref, err := fromGoogleEvent(item)
			if err != nil {
				return nil, err
			}
			out = append(out, ref)
		}
		if events.NextPageToken == "" {
			return out, nil
		}
		pageToken = events.NextPageToken
	}
}

// InsertEvent creates an event from payload.
func (g *GoogleCalendar) InsertEvent(ctx context.Context, payload models.EventPayload) (models.CalendarEventRef, error) {
	created, err := g.svc.Events.Insert(g.calendarID, toGoogleEvent(payload)).Context(ctx).Do()
	if err != nil {
		return models.CalendarEventRef{}, fmt.Errorf("failed to insert event %q: %w", payload.Summary, err)
	}
	return fromGoogleEvent(created)
}

// DeleteEvent removes an event by id.
func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return wrapNotFound(fmt.Errorf("failed to delete event %s: %w", eventID, err))
	}
	return nil
}

// GetEvent fetches an event by id.
func (g *GoogleCalendar) GetEvent(ctx context.Context, eventID string) (models.CalendarEventRef, error) {
	ev, err := g.svc.Events.Get(g.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return models.CalendarEventRef{}, wrapNotFound(fmt.Errorf("failed to get event %s: %w", eventID, err))
	}
	return fromGoogleEvent(ev)
}

// wrapNotFound joins ErrNotFound to 404 and 410 API errors.
func wrapNotFound(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return errors.Join(ErrNotFound, err)
	}
	return err
}

func toGoogleDateTime(t models.EventTime, zone string) *calendar.EventDateTime {
	if t.IsDateOnly() {
		return &calendar.EventDateTime{Date: t.Date}
	}
	if zone == "" {
		return &calendar.EventDateTime{DateTime: t.DateTime.Format(time.RFC3339)}
	}
	return &calendar.EventDateTime{DateTime: t.DateTime.Format(wallClockLayout), TimeZone: zone}
}

func toGoogleEvent(p models.EventPayload) *calendar.Event {
	return &calendar.Event{
		Summary:     p.Summary,
		Description: p.Description,
		ColorId:     p.ColorID,
		Start:       toGoogleDateTime(p.Start, p.TimeZone),
		End:         toGoogleDateTime(p.End, p.TimeZone),
	}
}

func fromGoogleDateTime(dt *calendar.EventDateTime) (models.EventTime, error) {
	if dt == nil {
		return models.EventTime{}, nil
	}
	if dt.DateTime == "" {
		return models.EventTime{Date: dt.Date}, nil
	}
	t, err := time.Parse(time.RFC3339, dt.DateTime)
	if err != nil {
		return models.EventTime{}, fmt.Errorf("failed to parse event time %q: %w", dt.DateTime, err)
	}
	if dt.TimeZone != "" {
		if loc, err := time.LoadLocation(dt.TimeZone); err == nil {
			t = t.In(loc)
		}
	}
	return models.EventTime{DateTime: t}, nil
}

func fromGoogleEvent(ev *calendar.Event) (models.CalendarEventRef, error) {
	start, err := fromGoogleDateTime(ev.Start)
	if err != nil {
		return models.CalendarEventRef{}, err
	}
	end, err := fromGoogleDateTime(ev.End)
	if err != nil {
		return models.CalendarEventRef{}, err
	}
	return models.CalendarEventRef{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
		ColorID:     ev.ColorId,
		Start:       start,
		End:         end,
	}, nil
}
