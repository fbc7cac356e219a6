package models

// DateHeader is a date label from a tab's header row, e.g. "7 - Jul".
type DateHeader = string

// WeekTab is one week's raw grid as read from the spreadsheet.
type WeekTab struct {
	ID   string     `json:"id"`
	Rows [][]string `json:"rows"`
}

// Cell returns the cell at (row, col) or "" when the grid is too short.
func (t WeekTab) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// ShiftRecord is one parsed shift row of a week tab.
type ShiftRecord struct {
	Shift       string                `json:"shift"`
	Dates       map[DateHeader]string `json:"dates"`
	Week        string                `json:"week"`
	OriginalRow int                   `json:"originalRow"`
}

// TabSchedule is the parse result of a single week tab.
type TabSchedule struct {
	Week        string        `json:"week"`
	DateHeaders []DateHeader  `json:"dateHeaders"`
	Records     []ShiftRecord `json:"records"`
}

// ScheduleResponse is the aggregated view of every parsed week tab.
type ScheduleResponse struct {
	Schedule    []ShiftRecord `json:"schedule"`
	Shifts      []string      `json:"shifts"`
	DateHeaders []DateHeader  `json:"dateHeaders"`
	HTMLTables  []string      `json:"htmlTables"`
}
