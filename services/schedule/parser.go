package schedule

import "shiftsync/models"

// GridParser turns week tabs into shift records.
type GridParser struct {
	rows RowTable
}

func NewGridParser(rows RowTable) *GridParser {
	if rows == nil {
		rows = DefaultRowTable
	}
	return &GridParser{rows: rows}
}

// Rows returns the classification table the parser uses.
func (p *GridParser) Rows() RowTable {
	return p.rows
}

// DateHeaders returns the non-empty header cells after the first column, in column order.
func (p *GridParser) DateHeaders(tab models.WeekTab) []models.DateHeader {
	if DateHeaderRow >= len(tab.Rows) {
		return nil
	}
	row := tab.Rows[DateHeaderRow]
	headers := make([]models.DateHeader, 0, len(row))
	for col := 1; col < len(row); col++ {
		if row[col] != "" {
			headers = append(headers, row[col])
		}
	}
	return headers
}

// ParseTab extracts the date headers and shift records of a tab.
func (p *GridParser) ParseTab(tab models.WeekTab) models.TabSchedule {
	headers := p.DateHeaders(tab)
	out := models.TabSchedule{Week: tab.ID, DateHeaders: headers, Records: []models.ShiftRecord{}}

	for index, row := range tab.Rows {
		if !p.rows.Classify(index).IsShift() {
			continue
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}

		dates := make(map[models.DateHeader]string)
		for col := 1; col < len(row); col++ {
			if col-1 >= len(headers) {
				break
			}
			if header := headers[col-1]; header != "" && row[col] != "" {
				dates[header] = row[col]
			}
		}

		out.Records = append(out.Records, models.ShiftRecord{
			Shift:       row[0],
			Dates:       dates,
			Week:        tab.ID,
			OriginalRow: index + 1,
		})
	}
	return out
}

// Aggregate flattens tab schedules in order and collects the distinct shift labels
// and date keys in first-seen order.
func Aggregate(tabs []models.TabSchedule) (records []models.ShiftRecord, shifts []string, dateHeaders []models.DateHeader) {
	records = []models.ShiftRecord{}
	shifts = []string{}
	dateHeaders = []models.DateHeader{}
	seenShift := make(map[string]bool)
	seenDate := make(map[string]bool)

	for _, tab := range tabs {
		for _, rec := range tab.Records {
			records = append(records, rec)
			if !seenShift[rec.Shift] {
				seenShift[rec.Shift] = true
				shifts = append(shifts, rec.Shift)
			}
			for _, header := range tab.DateHeaders {
				if _, ok := rec.Dates[header]; ok && !seenDate[header] {
					seenDate[header] = true
					dateHeaders = append(dateHeaders, header)
				}
			}
		}
	}
	return records, shifts, dateHeaders
}

// FindRecord returns the first record labelled shift, optionally restricted to week.
func FindRecord(records []models.ShiftRecord, shift, week string) (models.ShiftRecord, bool) {
	for _, rec := range records {
		if rec.Shift != shift {
			continue
		}
		if week != "" && rec.Week != week {
			continue
		}
		return rec, true
	}
	return models.ShiftRecord{}, false
}
