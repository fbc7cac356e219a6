package synchronizer

import (
	"errors"
	"fmt"
	"time"

	"shiftsync/models"
	"shiftsync/services/schedule"
)

// SummaryPrefix marks events created by this service.
const SummaryPrefix = "DB-"

// candidate is a resolved selection ready for the calendar stage.
type candidate struct {
	selection models.Selection
	resolved  models.ResolvedShift
	day       schedule.CivilDate
	payload   models.EventPayload
}

// Summary returns the event title for a shift label.
func Summary(shift string) string {
	return SummaryPrefix + shift
}

// Description returns the event body for a shift.
func Description(shift, employee, date string) string {
	return fmt.Sprintf("Shift: %s\nEmployee: %s\nDate: %s", shift, employee, date)
}

func dropped(sel models.Selection, reason string) *models.DroppedEvent {
	return &models.DroppedEvent{Shift: sel.Shift, Date: sel.Date, Reason: reason}
}

// year picks the calendar year for a selection: the week tab's year when named, else today's.
func (s *DefaultSynchronizer) year(sel models.Selection) int {
	if sel.Week != "" {
		if y, ok := schedule.WeekYear(sel.Week); ok {
			return y
		}
	}
	return s.now().In(s.Resolver.Location()).Year()
}

// resolve looks up the selection's row, parses its date label and infers the interval.
func (s *DefaultSynchronizer) resolve(req Request, sel models.Selection) (candidate, *models.DroppedEvent) {
	rec, ok := schedule.FindRecord(req.Records, sel.Shift, sel.Week)
	if !ok {
		return candidate{}, dropped(sel, models.ReasonUnknownShift)
	}

	day, ok := schedule.ResolveDateLabel(sel.Date, s.year(sel))
	if !ok {
		return candidate{}, dropped(sel, models.ReasonUnparseableDate)
	}

	iv, err := s.Resolver.Resolve(sel.Shift, rec.OriginalRow, day)
	defaultWindow := false
	if err != nil {
		if !errors.Is(err, schedule.ErrNoTimeFound) {
			return candidate{}, dropped(sel, models.ReasonUnparseableDate)
		}
		iv = s.Resolver.DefaultWindow(day)
		defaultWindow = true
	}

	resolved := models.ResolvedShift{
		Shift:         sel.Shift,
		Week:          rec.Week,
		Date:          sel.Date,
		Employee:      req.Employee,
		Start:         iv.Start,
		End:           iv.End,
		AllDay:        iv.AllDay,
		DefaultWindow: defaultWindow,
	}
	return candidate{
		selection: sel,
		resolved:  resolved,
		day:       day,
		payload:   s.payload(resolved, day, req.ColorID),
	}, nil
}

func (s *DefaultSynchronizer) payload(r models.ResolvedShift, day schedule.CivilDate, colorID string) models.EventPayload {
	p := models.EventPayload{
		Summary:     Summary(r.Shift),
		Description: Description(r.Shift, r.Employee, r.Date),
		ColorID:     colorID,
	}
	if r.AllDay {
		p.Start = models.EventTime{Date: day.String()}
		p.End = models.EventTime{Date: day.String()}
		if p.ColorID == "" {
			p.ColorID = s.DefaultAllDayColor
		}
		return p
	}
	p.Start = models.EventTime{DateTime: r.Start}
	p.End = models.EventTime{DateTime: r.End}
	p.TimeZone = s.Resolver.Location().String()
	return p
}

// SameDay reports whether an event starts on day, comparing dates in loc.
func SameDay(t models.EventTime, day schedule.CivilDate, loc *time.Location) bool {
	if t.IsDateOnly() {
		d, err := schedule.ParseCivilDate(t.Date)
		return err == nil && d == day
	}
	if t.DateTime.IsZero() {
		return false
	}
	return schedule.CivilDateOf(t.DateTime.In(loc)) == day
}

// IsDuplicate reports whether events holds one with exactly summary on day.
func IsDuplicate(events []models.CalendarEventRef, summary string, day schedule.CivilDate, loc *time.Location) bool {
	for _, ev := range events {
		if ev.Summary == summary && SameDay(ev.Start, day, loc) {
			return true
		}
	}
	return false
}
