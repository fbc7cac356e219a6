package export

import (
	"time"

	"shiftsync/models"
	"shiftsync/services/synchronizer"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const productID = "-//shiftsync//Shift Export//EN"

// eventUID is stable for the same shift at the same start, so re-imports replace rather than duplicate.
func eventUID(r models.ResolvedShift) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(synchronizer.Summary(r.Shift)+"|"+r.Start.UTC().Format(time.RFC3339))).String() + "@shiftsync"
}

// ICS renders resolved shifts as an iCalendar document.
func ICS(shifts []models.ResolvedShift, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, r := range shifts {
		ev := cal.AddEvent(eventUID(r))
		ev.SetDtStampTime(now)
		ev.SetSummary(synchronizer.Summary(r.Shift))
		ev.SetDescription(synchronizer.Description(r.Shift, r.Employee, r.Date))
		if r.AllDay {
			ev.SetAllDayStartAt(r.Start)
			// DTEND is exclusive in iCalendar.
			ev.SetAllDayEndAt(r.Start.AddDate(0, 0, 1))
			continue
		}
		ev.SetStartAt(r.Start)
		ev.SetEndAt(r.End)
	}
	return cal.Serialize()
}
