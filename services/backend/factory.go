package backend

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleFactory builds Google API backends from a user's token.
// When XLSXPath is set the spreadsheet is read from that workbook instead.
type GoogleFactory struct {
	OAuth         *oauth2.Config
	SpreadsheetID string
	CalendarID    string
	XLSXPath      string
}

func (f *GoogleFactory) clientOption(ctx context.Context, token *oauth2.Token) (option.ClientOption, error) {
	if token == nil {
		return nil, fmt.Errorf("missing oauth token")
	}
	return option.WithHTTPClient(f.OAuth.Client(ctx, token)), nil
}

// Spreadsheet returns the schedule source.
func (f *GoogleFactory) Spreadsheet(ctx context.Context, token *oauth2.Token) (SpreadsheetBackend, error) {
	if f.XLSXPath != "" {
		return NewXLSXSpreadsheet(f.XLSXPath), nil
	}
	opt, err := f.clientOption(ctx, token)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return NewGoogleSheets(svc, f.SpreadsheetID), nil
}

// Calendar returns the target calendar.
func (f *GoogleFactory) Calendar(ctx context.Context, token *oauth2.Token) (CalendarBackend, error) {
	opt, err := f.clientOption(ctx, token)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return NewGoogleCalendar(svc, f.CalendarID), nil
}
