package schedule

import (
	"context"
	"sort"
	"strings"

	"shiftsync/models"
	"shiftsync/services/backend"

	"go.uber.org/zap"
)

// Service discovers, fetches and parses week tabs.
type Service struct {
	Parser       *GridParser
	FallbackTabs []string
	Logger       *zap.Logger
}

func NewService(parser *GridParser, fallbackTabs []string, logger *zap.Logger) *Service {
	if parser == nil {
		parser = NewGridParser(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Parser: parser, FallbackTabs: fallbackTabs, Logger: logger}
}

// WeekTabTitles filters visible tabs whose title mentions "week", sorted.
func WeekTabTitles(tabs []backend.TabInfo) []string {
	titles := []string{}
	for _, tab := range tabs {
		if tab.Hidden {
			continue
		}
		if strings.Contains(strings.ToLower(tab.Title), "week") {
			titles = append(titles, tab.Title)
		}
	}
	sort.Strings(titles)
	return titles
}

// DiscoverTabs lists week tabs, falling back to the configured names when metadata is unavailable.
func (s *Service) DiscoverTabs(ctx context.Context, src backend.SpreadsheetBackend) []string {
	tabs, err := src.ListTabs(ctx)
	if err != nil {
		s.Logger.Error("Error getting sheet metadata, using fallback week tabs",
			zap.Error(err), zap.Int("fallbackTabs", len(s.FallbackTabs)))
		return append([]string(nil), s.FallbackTabs...)
	}
	titles := WeekTabTitles(tabs)
	s.Logger.Info("Found week tabs", zap.Strings("tabs", titles), zap.Int("count", len(titles)))
	return titles
}

// FetchTabs reads every discovered tab in order. Tabs that fail to load or are empty are skipped.
func (s *Service) FetchTabs(ctx context.Context, src backend.SpreadsheetBackend) ([]models.WeekTab, error) {
	titles := s.DiscoverTabs(ctx, src)
	tabs := make([]models.WeekTab, 0, len(titles))
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := src.ReadTab(ctx, title)
		if err != nil {
			s.Logger.Error("Error fetching data from tab", zap.String("tab", title), zap.Error(err))
			continue
		}
		if len(rows) == 0 {
			continue
		}
		tabs = append(tabs, models.WeekTab{ID: title, Rows: rows})
	}
	return tabs, nil
}

// Records parses every week tab and returns the flattened shift records.
func (s *Service) Records(ctx context.Context, src backend.SpreadsheetBackend) ([]models.ShiftRecord, error) {
	tabs, err := s.FetchTabs(ctx, src)
	if err != nil {
		return nil, err
	}
	parsed := make([]models.TabSchedule, 0, len(tabs))
	for _, tab := range tabs {
		parsed = append(parsed, s.Parser.ParseTab(tab))
	}
	records, _, _ := Aggregate(parsed)
	return records, nil
}

// Build parses and renders every week tab.
func (s *Service) Build(ctx context.Context, src backend.SpreadsheetBackend) (models.ScheduleResponse, error) {
	tabs, err := s.FetchTabs(ctx, src)
	if err != nil {
		return models.ScheduleResponse{}, err
	}

	parsed := make([]models.TabSchedule, 0, len(tabs))
	tables := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		ts := s.Parser.ParseTab(tab)
		s.Logger.Debug("Parsed tab",
			zap.String("tab", tab.ID),
			zap.Strings("dateHeaders", ts.DateHeaders),
			zap.Int("shifts", len(ts.Records)))
		parsed = append(parsed, ts)

		table, err := s.Parser.RenderTab(tab)
		if err != nil {
			s.Logger.Error("Error rendering tab", zap.String("tab", tab.ID), zap.Error(err))
			continue
		}
		tables = append(tables, table)
	}

	records, shifts, headers := Aggregate(parsed)
	s.Logger.Info("Built schedule", zap.Int("shifts", len(records)), zap.Int("tabs", len(parsed)))
	return models.ScheduleResponse{
		Schedule:    records,
		Shifts:      shifts,
		DateHeaders: headers,
		HTMLTables:  tables,
	}, nil
}
