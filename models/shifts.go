package models

import "time"

// Selection is one (shift, date) pair picked by the user.
type Selection struct {
	Shift string `json:"shift"`
	Date  string `json:"date"`
	// Week optionally restricts the shift lookup to one tab.
	Week string `json:"week,omitempty"`
}

// AddShiftsRequest is the body of POST /add-shifts.
type AddShiftsRequest struct {
	EmployeeName string      `json:"employeeName"`
	Shifts       []Selection `json:"shifts"`
	ColorID      string      `json:"colorId,omitempty"`
}

// ResolvedShift is a single selection instantiated with a concrete interval.
type ResolvedShift struct {
	Shift         string    `json:"shift"`
	Week          string    `json:"week"`
	Date          string    `json:"date"`
	Employee      string    `json:"employee"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	AllDay        bool      `json:"allDay"`
	DefaultWindow bool      `json:"defaultWindow,omitempty"`
}

// Skip and drop reasons.
const (
	ReasonDuplicate       = "duplicate"
	ReasonUnknownShift    = "unknown_shift"
	ReasonUnparseableDate = "unparseable_date"
	ReasonBackendError    = "backend_error"
)

// SkippedEvent is a selection not created because it already exists.
type SkippedEvent struct {
	Shift  string `json:"shift"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// DroppedEvent is a selection that could not be interpreted or whose backend call failed.
type DroppedEvent struct {
	Shift  string `json:"shift"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// SyncResult collects the outcome of one synchronization request.
type SyncResult struct {
	Added   []UndoEvent    `json:"addedEvents"`
	Skipped []SkippedEvent `json:"skippedEvents"`
	Dropped []DroppedEvent `json:"droppedEvents"`
}
