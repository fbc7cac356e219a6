package backend

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// maxColumns mirrors the A:Z range read from Google Sheets.
const maxColumns = 26

// XLSXSpreadsheet implements SpreadsheetBackend on a local workbook.
// The file is reopened on every call so edits are picked up without a restart.
type XLSXSpreadsheet struct {
	path string
}

func NewXLSXSpreadsheet(path string) *XLSXSpreadsheet {
	return &XLSXSpreadsheet{path: path}
}

func (x *XLSXSpreadsheet) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", x.path, err)
	}
	return f, nil
}

// ListTabs returns every sheet with its visibility.
func (x *XLSXSpreadsheet) ListTabs(ctx context.Context) ([]TabInfo, error) {
	f, err := x.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tabs []TabInfo
	for _, name := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		visible, err := f.GetSheetVisible(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read visibility of %q: %w", name, err)
		}
		tabs = append(tabs, TabInfo{Title: name, Hidden: !visible})
	}
	return tabs, nil
}

// ReadTab returns the formatted cell values of columns A through Z.
func (x *XLSXSpreadsheet) ReadTab(ctx context.Context, title string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := x.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(title)
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %q: %w", title, err)
	}
	for i, row := range rows {
		if len(row) > maxColumns {
			rows[i] = row[:maxColumns]
		}
	}
	return trimTrailingEmptyRows(rows), nil
}

// trimTrailingEmptyRows drops trailing empty rows, as the Sheets values API does.
func trimTrailingEmptyRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && len(rows[end-1]) == 0 {
		end--
	}
	return rows[:end]
}
