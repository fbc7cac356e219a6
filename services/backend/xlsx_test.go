package backend_test

import (
	"context"
	"path/filepath"
	"testing"

	"shiftsync/services/backend"
	"shiftsync/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"
)

func weekGrid() [][]string {
	grid := make([][]string, 18)
	grid[0] = []string{"Week 28", "Mon", "Tue"}
	grid[2] = []string{"", "7 - Jul", "8 - Jul"}
	grid[4] = []string{"Requests Off", "Ann"}
	grid[6] = []string{"9:00-close", "Ann", "Bob"}
	grid[17] = []string{"9:00-close", "", "Cat"}
	return grid
}

func writeGrid(t *testing.T, f *excelize.File, sheet string, grid [][]string) {
	t.Helper()
	for r, row := range grid {
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
}

func buildWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "week 28_2025"))
	writeGrid(t, f, "week 28_2025", weekGrid())

	_, err := f.NewSheet("Summary")
	require.NoError(t, err)
	_, err = f.NewSheet("week 27_2025")
	require.NoError(t, err)
	writeGrid(t, f, "week 27_2025", weekGrid())
	require.NoError(t, f.SetSheetVisible("week 27_2025", false))

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXListTabs(t *testing.T) {
	src := backend.NewXLSXSpreadsheet(buildWorkbook(t))

	tabs, err := src.ListTabs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []backend.TabInfo{
		{Title: "week 28_2025"},
		{Title: "Summary"},
		{Title: "week 27_2025", Hidden: true},
	}, tabs)
	assert.Equal(t, []string{"week 28_2025"}, schedule.WeekTabTitles(tabs))
}

func TestXLSXReadTab(t *testing.T) {
	src := backend.NewXLSXSpreadsheet(buildWorkbook(t))

	rows, err := src.ReadTab(context.Background(), "week 28_2025")
	require.NoError(t, err)
	require.Len(t, rows, 18)
	assert.Equal(t, []string{"", "7 - Jul", "8 - Jul"}, rows[2])
	assert.Equal(t, []string{"9:00-close", "", "Cat"}, rows[17])
	assert.Empty(t, rows[1])

	_, err = src.ReadTab(context.Background(), "missing")
	assert.Error(t, err)
}

func TestXLSXReadTabTruncatesToZ(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "first"))
	require.NoError(t, f.SetCellValue("Sheet1", "Z1", "last"))
	require.NoError(t, f.SetCellValue("Sheet1", "AB1", "overflow"))
	path := filepath.Join(t.TempDir(), "wide.xlsx")
	require.NoError(t, f.SaveAs(path))

	rows, err := backend.NewXLSXSpreadsheet(path).ReadTab(context.Background(), "Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 26)
	assert.Equal(t, "last", rows[0][25])
}

func TestXLSXMissingFile(t *testing.T) {
	_, err := backend.NewXLSXSpreadsheet(filepath.Join(t.TempDir(), "nope.xlsx")).ListTabs(context.Background())
	assert.Error(t, err)
}

// gridSource serves fixed grids the way the Sheets values API returns them.
type gridSource map[string][][]string

func (g gridSource) ListTabs(context.Context) ([]backend.TabInfo, error) {
	return []backend.TabInfo{{Title: "week 28_2025"}}, nil
}

func (g gridSource) ReadTab(_ context.Context, title string) ([][]string, error) {
	return g[title], nil
}

func TestXLSXMatchesInMemoryGrid(t *testing.T) {
	svc := schedule.NewService(nil, nil, zaptest.NewLogger(t))

	fromFile, err := svc.Build(context.Background(), backend.NewXLSXSpreadsheet(buildWorkbook(t)))
	require.NoError(t, err)
	fromGrid, err := svc.Build(context.Background(), gridSource{"week 28_2025": weekGrid()})
	require.NoError(t, err)

	assert.Equal(t, fromGrid.Schedule, fromFile.Schedule)
	assert.Equal(t, fromGrid.Shifts, fromFile.Shifts)
	assert.Equal(t, fromGrid.DateHeaders, fromFile.DateHeaders)
	assert.Len(t, fromFile.Schedule, 3)
}
