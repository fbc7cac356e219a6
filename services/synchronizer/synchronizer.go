package synchronizer

import (
	"context"
	"time"

	"shiftsync/models"
	"shiftsync/services/backend"
	"shiftsync/services/schedule"
	"shiftsync/services/undo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSynchronizer implements Synchronizer.
type DefaultSynchronizer struct {
	Resolver           *schedule.TimeResolver
	Ledger             undo.Ledger
	Locker             Locker
	Concurrency        int
	DefaultAllDayColor string
	Now                func() time.Time
	Logger             *zap.Logger
}

type outcome struct {
	added   *models.UndoEvent
	skipped *models.SkippedEvent
	dropped *models.DroppedEvent
}

func (s *DefaultSynchronizer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSynchronizer) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// LockKey scopes the duplicate check of one employee's summary on one day.
func LockKey(employee, summary string, day schedule.CivilDate) string {
	return employee + "|" + summary + "|" + day.String()
}

// Sync resolves each selection, skips duplicates, creates the rest and appends the
// created events to the session's undo ledger as one batch.
func (s *DefaultSynchronizer) Sync(ctx context.Context, cal backend.CalendarBackend, req Request) models.SyncResult {
	log := s.logger().With(zap.String("employee", req.Employee))
	log.Info("Starting to process shifts", zap.Int("selections", len(req.Selections)), zap.Int("concurrency", s.Concurrency))

	outcomes := runStage(ctx, len(req.Selections), s.Concurrency, func(ctx context.Context, i int) outcome {
		return s.process(ctx, cal, req, req.Selections[i], log)
	})

	result := models.SyncResult{
		Added:   []models.UndoEvent{},
		Skipped: []models.SkippedEvent{},
		Dropped: []models.DroppedEvent{},
	}
	for _, o := range outcomes {
		switch {
		case o.added != nil:
			result.Added = append(result.Added, *o.added)
		case o.skipped != nil:
			result.Skipped = append(result.Skipped, *o.skipped)
		case o.dropped != nil:
			result.Dropped = append(result.Dropped, *o.dropped)
		}
	}

	if len(result.Added) > 0 && s.Ledger != nil {
		batch := models.UndoBatch{
			ID:           uuid.New().String(),
			Timestamp:    s.now(),
			EmployeeName: req.Employee,
			Events:       result.Added,
		}
		if err := s.Ledger.Append(ctx, req.SessionID, batch); err != nil {
			log.Error("Failed to record undo batch", zap.String("batchId", batch.ID), zap.Error(err))
		}
	}

	log.Info("Finished processing shifts",
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("dropped", len(result.Dropped)))
	return result
}

func (s *DefaultSynchronizer) process(ctx context.Context, cal backend.CalendarBackend, req Request, sel models.Selection, log *zap.Logger) outcome {
	c, drop := s.resolve(req, sel)
	if drop != nil {
		log.Debug("Dropping selection", zap.String("shift", sel.Shift), zap.String("date", sel.Date), zap.String("reason", drop.Reason))
		return outcome{dropped: drop}
	}
	return s.apply(ctx, cal, req.Employee, c, log)
}

// apply runs the duplicate check and insert for one candidate under its lock.
func (s *DefaultSynchronizer) apply(ctx context.Context, cal backend.CalendarBackend, employee string, c candidate, log *zap.Logger) outcome {
	log = log.With(zap.String("shift", c.selection.Shift), zap.String("date", c.selection.Date))

	if s.Locker != nil {
		unlock, err := s.Locker.Lock(ctx, LockKey(employee, c.payload.Summary, c.day))
		if err != nil {
			log.Error("Error acquiring sync lock", zap.Error(err))
			return outcome{dropped: dropped(c.selection, models.ReasonBackendError)}
		}
		defer unlock()
	}

	dayStart, dayEnd := s.Resolver.DayBounds(c.day)
	existing, err := cal.ListEvents(ctx, dayStart, dayEnd)
	if err != nil {
		log.Error("Error listing existing events", zap.Error(err))
		return outcome{dropped: dropped(c.selection, models.ReasonBackendError)}
	}

	if IsDuplicate(existing, c.payload.Summary, c.day, s.Resolver.Location()) {
		log.Info("Skipping duplicate event", zap.String("summary", c.payload.Summary))
		return outcome{skipped: &models.SkippedEvent{
			Shift:  c.selection.Shift,
			Date:   c.selection.Date,
			Reason: models.ReasonDuplicate,
		}}
	}

	created, err := cal.InsertEvent(ctx, c.payload)
	if err != nil {
		log.Error("Error adding shift", zap.Error(err))
		return outcome{dropped: dropped(c.selection, models.ReasonBackendError)}
	}
	log.Info("Successfully created event", zap.String("eventId", created.ID))

	return outcome{added: &models.UndoEvent{
		Shift:     c.selection.Shift,
		Date:      c.selection.Date,
		EventID:   created.ID,
		StartTime: c.resolved.Start.Format(time.RFC3339),
		EndTime:   c.resolved.End.Format(time.RFC3339),
	}}
}

// Resolve returns the resolved interval of every interpretable selection, in input order.
func (s *DefaultSynchronizer) Resolve(req Request) ([]models.ResolvedShift, []models.DroppedEvent) {
	resolved := []models.ResolvedShift{}
	drops := []models.DroppedEvent{}
	for _, sel := range req.Selections {
		c, drop := s.resolve(req, sel)
		if drop != nil {
			drops = append(drops, *drop)
			continue
		}
		resolved = append(resolved, c.resolved)
	}
	return resolved, drops
}
