package backend

import (
	"context"
	"errors"
	"time"

	"shiftsync/models"

	"golang.org/x/oauth2"
)

// ErrNotFound signals that the requested event does not exist.
var ErrNotFound = errors.New("not found")

// TabInfo describes one sheet of a spreadsheet.
type TabInfo struct {
	Title  string
	Hidden bool
}

// SpreadsheetBackend reads week tabs.
type SpreadsheetBackend interface {
	// ListTabs returns every tab with its visibility.
	ListTabs(ctx context.Context) ([]TabInfo, error)
	// ReadTab returns the A:Z cell range of a tab. Rows may be ragged.
	ReadTab(ctx context.Context, title string) ([][]string, error)
}

// CalendarBackend reads and writes events of one calendar.
type CalendarBackend interface {
	// ListEvents returns single events overlapping [timeMin, timeMax].
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEventRef, error)
	// InsertEvent creates an event and returns it with its id.
	InsertEvent(ctx context.Context, payload models.EventPayload) (models.CalendarEventRef, error)
	// DeleteEvent removes an event by id.
	DeleteEvent(ctx context.Context, eventID string) error
	// GetEvent fetches an event by id. A missing event yields ErrNotFound.
	GetEvent(ctx context.Context, eventID string) (models.CalendarEventRef, error)
}

// Factory builds per-request backends bound to a user's OAuth token.
type Factory interface {
	Spreadsheet(ctx context.Context, token *oauth2.Token) (SpreadsheetBackend, error)
	Calendar(ctx context.Context, token *oauth2.Token) (CalendarBackend, error)
}
