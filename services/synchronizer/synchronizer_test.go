package synchronizer

import (
	"context"
	"testing"
	"time"

	"shiftsync/models"
	"shiftsync/services/schedule"
	"shiftsync/services/undo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testRecords = []models.ShiftRecord{
	{Shift: "9:00-close", Week: "week 28_2025", OriginalRow: 7},
	{Shift: "11:00-close", Week: "week 28_2025", OriginalRow: 25},
	{Shift: "Requests Off", Week: "week 28_2025", OriginalRow: 5},
	{Shift: "Manager", Week: "week 28_2025", OriginalRow: 8},
}

func newTestSync(t *testing.T, concurrency int) (*DefaultSynchronizer, *undo.MemoryLedger) {
	t.Helper()
	resolver, err := schedule.NewTimeResolver(schedule.DefaultTimeZone, nil)
	require.NoError(t, err)
	ledger := undo.NewMemoryLedger()
	return &DefaultSynchronizer{
		Resolver:           resolver,
		Ledger:             ledger,
		Locker:             NewMemoryLocker(),
		Concurrency:        concurrency,
		DefaultAllDayColor: "10",
		Now:                func() time.Time { return time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC) },
		Logger:             zaptest.NewLogger(t),
	}, ledger
}

func request(sels ...models.Selection) Request {
	return Request{SessionID: "sess-1", Employee: "Ann", Selections: sels, Records: testRecords}
}

func phoenix(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Phoenix")
	require.NoError(t, err)
	return loc
}

func TestSyncCreatesTimedEvent(t *testing.T) {
	s, ledger := newTestSync(t, 1)
	cal := &fakeCalendar{}

	res := s.Sync(context.Background(), cal, request(models.Selection{Shift: "9:00-close", Date: "7 - Jul"}))

	require.Len(t, res.Added, 1)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Dropped)
	assert.Equal(t, models.UndoEvent{
		Shift:     "9:00-close",
		Date:      "7 - Jul",
		EventID:   "evt-1",
		StartTime: "2025-07-07T09:00:00-07:00",
		EndTime:   "2025-07-07T14:30:00-07:00",
	}, res.Added[0])

	require.Len(t, cal.inserted, 1)
	p := cal.inserted[0]
	assert.Equal(t, "DB-9:00-close", p.Summary)
	assert.Equal(t, "Shift: 9:00-close\nEmployee: Ann\nDate: 7 - Jul", p.Description)
	assert.Equal(t, "America/Phoenix", p.TimeZone)
	assert.False(t, p.Start.IsDateOnly())
	assert.Equal(t, schedule.ShiftDuration, payloadDuration(p))
	assert.Empty(t, p.ColorID)

	n, err := ledger.Len(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func payloadDuration(p models.EventPayload) time.Duration {
	return p.End.DateTime.Sub(p.Start.DateTime)
}

func TestSyncRequestsOffIsAllDay(t *testing.T) {
	s, _ := newTestSync(t, 1)
	cal := &fakeCalendar{}

	res := s.Sync(context.Background(), cal, request(models.Selection{Shift: "Requests Off", Date: "8 - Jul"}))
	require.Len(t, res.Added, 1)

	p := cal.inserted[0]
	assert.Equal(t, models.EventTime{Date: "2025-07-08"}, p.Start)
	assert.Equal(t, models.EventTime{Date: "2025-07-08"}, p.End)
	assert.Equal(t, "10", p.ColorID)
	assert.Empty(t, p.TimeZone)
}

func TestSyncKeepsRequestedColor(t *testing.T) {
	s, _ := newTestSync(t, 1)
	cal := &fakeCalendar{}
	req := request(models.Selection{Shift: "Requests Off", Date: "8 - Jul"}, models.Selection{Shift: "9:00-close", Date: "8 - Jul"})
	req.ColorID = "5"

	res := s.Sync(context.Background(), cal, req)
	require.Len(t, res.Added, 2)
	assert.Equal(t, "5", cal.inserted[0].ColorID)
	assert.Equal(t, "5", cal.inserted[1].ColorID)
}

func TestSyncDefaultWindow(t *testing.T) {
	s, _ := newTestSync(t, 1)
	cal := &fakeCalendar{}

	res := s.Sync(context.Background(), cal, request(models.Selection{Shift: "Manager", Date: "9 - Jul"}))
	require.Len(t, res.Added, 1)
	assert.Equal(t, "2025-07-09T09:00:00-07:00", res.Added[0].StartTime)
	assert.Equal(t, "2025-07-09T17:00:00-07:00", res.Added[0].EndTime)
}

func TestSyncSkipsExistingDuplicates(t *testing.T) {
	s, ledger := newTestSync(t, 1)
	loc := phoenix(t)
	cal := &fakeCalendar{events: []models.CalendarEventRef{{
		ID:      "existing",
		Summary: "DB-9:00-close",
		Start:   models.EventTime{DateTime: time.Date(2025, time.July, 7, 9, 0, 0, 0, loc)},
	}}}

	sel := models.Selection{Shift: "9:00-close", Date: "7 - Jul"}
	res := s.Sync(context.Background(), cal, request(sel, sel))

	assert.Empty(t, res.Added)
	require.Len(t, res.Skipped, 2)
	for _, sk := range res.Skipped {
		assert.Equal(t, models.ReasonDuplicate, sk.Reason)
	}
	assert.Zero(t, cal.insertedCount())

	n, err := ledger.Len(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Zero(t, n, "no batch is recorded when nothing was created")
}

func TestSyncIdenticalSelectionsCreateOnce(t *testing.T) {
	for _, concurrency := range []int{1, 4} {
		s, _ := newTestSync(t, concurrency)
		cal := &fakeCalendar{listDelay: 5 * time.Millisecond}
		sel := models.Selection{Shift: "9:00-close", Date: "7 - Jul"}

		res := s.Sync(context.Background(), cal, request(sel, sel, sel))
		assert.Len(t, res.Added, 1, "concurrency %d", concurrency)
		assert.Len(t, res.Skipped, 2, "concurrency %d", concurrency)
		assert.Equal(t, 1, cal.insertedCount())
	}
}

func TestSyncDuplicateMatchesCivilDay(t *testing.T) {
	loc := phoenix(t)
	tests := []struct {
		name     string
		existing models.CalendarEventRef
		dup      bool
	}{
		{"all day same date", models.CalendarEventRef{Summary: "DB-9:00-close", Start: models.EventTime{Date: "2025-07-07"}}, true},
		{"late evening same local day", models.CalendarEventRef{Summary: "DB-9:00-close", Start: models.EventTime{DateTime: time.Date(2025, time.July, 8, 6, 30, 0, 0, time.UTC)}}, true},
		{"other day", models.CalendarEventRef{Summary: "DB-9:00-close", Start: models.EventTime{DateTime: time.Date(2025, time.July, 8, 9, 0, 0, 0, loc)}}, false},
		{"other summary", models.CalendarEventRef{Summary: "DB-9:00-close ", Start: models.EventTime{Date: "2025-07-07"}}, false},
		{"summary without prefix", models.CalendarEventRef{Summary: "9:00-close", Start: models.EventTime{Date: "2025-07-07"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSync(t, 1)
			cal := &fakeCalendar{events: []models.CalendarEventRef{tt.existing}}
			res := s.Sync(context.Background(), cal, request(models.Selection{Shift: "9:00-close", Date: "7 - Jul"}))
			if tt.dup {
				assert.Len(t, res.Skipped, 1)
				assert.Empty(t, res.Added)
			} else {
				assert.Len(t, res.Added, 1)
				assert.Empty(t, res.Skipped)
			}
		})
	}
}

func TestSyncDropsUninterpretableSelections(t *testing.T) {
	s, _ := newTestSync(t, 1)
	cal := &fakeCalendar{}

	res := s.Sync(context.Background(), cal, request(
		models.Selection{Shift: "7:00-close", Date: "7 - Jul"},
		models.Selection{Shift: "9:00-close", Date: "31 - Feb"},
		models.Selection{Shift: "9:00-close", Date: "someday"},
		models.Selection{Shift: "9:00-close", Date: "7 - Jul", Week: "week 40_2025"},
	))

	assert.Empty(t, res.Added)
	assert.Equal(t, []models.DroppedEvent{
		{Shift: "7:00-close", Date: "7 - Jul", Reason: models.ReasonUnknownShift},
		{Shift: "9:00-close", Date: "31 - Feb", Reason: models.ReasonUnparseableDate},
		{Shift: "9:00-close", Date: "someday", Reason: models.ReasonUnparseableDate},
		{Shift: "9:00-close", Date: "7 - Jul", Reason: models.ReasonUnknownShift},
	}, res.Dropped)
	assert.Zero(t, cal.insertedCount())
}

func TestSyncBackendErrorsDropItem(t *testing.T) {
	s, _ := newTestSync(t, 1)
	cal := &fakeCalendar{insertErr: map[string]error{"DB-11:00-close": errBackend}}

	res := s.Sync(context.Background(), cal, request(
		models.Selection{Shift: "11:00-close", Date: "7 - Jul"},
		models.Selection{Shift: "9:00-close", Date: "7 - Jul"},
	))
	require.Len(t, res.Added, 1)
	assert.Equal(t, "9:00-close", res.Added[0].Shift)
	assert.Equal(t, []models.DroppedEvent{{Shift: "11:00-close", Date: "7 - Jul", Reason: models.ReasonBackendError}}, res.Dropped)

	cal = &fakeCalendar{listErr: errBackend}
	res = s.Sync(context.Background(), cal, request(models.Selection{Shift: "9:00-close", Date: "7 - Jul"}))
	assert.Empty(t, res.Added)
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, models.ReasonBackendError, res.Dropped[0].Reason)
}

func TestSyncYearFromWeekTab(t *testing.T) {
	s, _ := newTestSync(t, 1)
	records := append([]models.ShiftRecord(nil), testRecords...)
	records = append(records, models.ShiftRecord{Shift: "9:00-close", Week: "week 2_2026", OriginalRow: 7})
	cal := &fakeCalendar{}

	req := request(
		models.Selection{Shift: "9:00-close", Date: "5 - Jan", Week: "week 2_2026"},
		models.Selection{Shift: "9:00-close", Date: "5 - Jan"},
	)
	req.Records = records
	res := s.Sync(context.Background(), cal, req)

	require.Len(t, res.Added, 2)
	assert.Equal(t, "2026-01-05T09:00:00-07:00", res.Added[0].StartTime)
	assert.Equal(t, "2025-01-05T09:00:00-07:00", res.Added[1].StartTime)
}

func TestSyncParallelPreservesOrder(t *testing.T) {
	s, _ := newTestSync(t, 3)
	cal := &fakeCalendar{listDelay: time.Millisecond}

	var sels []models.Selection
	for day := 1; day <= 9; day++ {
		sels = append(sels, models.Selection{Shift: "9:00-close", Date: time.Date(2025, time.July, day, 0, 0, 0, 0, time.UTC).Format("2 - Jan")})
	}
	res := s.Sync(context.Background(), cal, request(sels...))

	require.Len(t, res.Added, len(sels))
	for i, ev := range res.Added {
		assert.Equal(t, sels[i].Date, ev.Date)
	}
	assert.Zero(t, s.Locker.(*MemoryLocker).held())
}

func TestResolve(t *testing.T) {
	s, _ := newTestSync(t, 1)
	resolved, dropped := s.Resolve(request(
		models.Selection{Shift: "11:00-close", Date: "7 - Jul"},
		models.Selection{Shift: "nope", Date: "7 - Jul"},
		models.Selection{Shift: "Manager", Date: "7 - Jul"},
	))

	require.Len(t, resolved, 2)
	assert.Equal(t, "2025-07-07T23:00:00-07:00", resolved[0].Start.Format(time.RFC3339))
	assert.Equal(t, "2025-07-08T04:30:00-07:00", resolved[0].End.Format(time.RFC3339))
	assert.Equal(t, "Ann", resolved[0].Employee)
	assert.True(t, resolved[1].DefaultWindow)
	require.Len(t, dropped, 1)
	assert.Equal(t, models.ReasonUnknownShift, dropped[0].Reason)
}

func TestLockKey(t *testing.T) {
	day := schedule.CivilDate{Year: 2025, Month: time.July, Day: 7}
	assert.Equal(t, "Ann|DB-9:00-close|2025-07-07", LockKey("Ann", "DB-9:00-close", day))
}
