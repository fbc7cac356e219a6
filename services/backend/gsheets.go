package backend

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// tabRange is the cell range read from every tab.
const tabRange = "A:Z"

// GoogleSheets implements SpreadsheetBackend on the Sheets v4 API.
type GoogleSheets struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewGoogleSheets(svc *sheets.Service, spreadsheetID string) *GoogleSheets {
	return &GoogleSheets{svc: svc, spreadsheetID: spreadsheetID}
}

// ListTabs returns the title and visibility of every sheet.
func (g *GoogleSheets) ListTabs(ctx context.Context) ([]TabInfo, error) {
	meta, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", g.spreadsheetID, err)
	}
	tabs := make([]TabInfo, 0, len(meta.Sheets))
	for _, sheet := range meta.Sheets {
		if sheet.Properties == nil {
			continue
		}
		tabs = append(tabs, TabInfo{Title: sheet.Properties.Title, Hidden: sheet.Properties.Hidden})
	}
	return tabs, nil
}

// ReadTab returns the A:Z values of a tab as strings.
func (g *GoogleSheets) ReadTab(ctx context.Context, title string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, A1Range(title, tabRange)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %q: %w", title, err)
	}
	return stringGrid(resp.Values), nil
}

// A1Range quotes a sheet title for A1 notation.
func A1Range(title, cells string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'!" + cells
}

func stringGrid(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprint(v)
			}
		}
		rows[i] = cells
	}
	return rows
}
