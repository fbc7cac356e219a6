package synchronizer

import (
	"context"

	"shiftsync/models"
	"shiftsync/services/backend"
)

// Request is one synchronization call.
type Request struct {
	SessionID  string
	Employee   string
	Selections []models.Selection
	ColorID    string
	// Records are the parsed shift rows used to find each selection's row.
	Records []models.ShiftRecord
}

// Synchronizer creates calendar events for selected shifts.
type Synchronizer interface {
	// Sync processes every selection and records created events in the session's undo ledger.
	Sync(ctx context.Context, cal backend.CalendarBackend, req Request) models.SyncResult
	// Resolve turns selections into intervals without touching a calendar.
	Resolve(req Request) ([]models.ResolvedShift, []models.DroppedEvent)
}
