package undo

import (
	"context"

	"shiftsync/models"
	"shiftsync/services/backend"

	"go.uber.org/zap"
)

// Service reverses the most recent batch of a session.
type Service struct {
	Ledger Ledger
	Logger *zap.Logger
}

func NewService(ledger Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Ledger: ledger, Logger: logger}
}

// Result reports what an undo removed.
type Result struct {
	EmployeeName string
	Attempted    int
	Deleted      []models.UndoEvent
}

// UndoLast pops the session's latest batch and deletes its events. A failed delete is
// logged and the remaining events are still attempted; the batch is not restored.
func (s *Service) UndoLast(ctx context.Context, cal backend.CalendarBackend, sessionID string) (Result, error) {
	batch, err := s.Ledger.PopLast(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	deleted := s.DeleteBatch(ctx, cal, batch)
	return Result{EmployeeName: batch.EmployeeName, Attempted: len(batch.Events), Deleted: deleted}, nil
}

// DeleteBatch deletes every event of batch in order and returns the ones that succeeded.
func (s *Service) DeleteBatch(ctx context.Context, cal backend.CalendarBackend, batch models.UndoBatch) []models.UndoEvent {
	deleted := make([]models.UndoEvent, 0, len(batch.Events))
	for _, ev := range batch.Events {
		if err := cal.DeleteEvent(ctx, ev.EventID); err != nil {
			s.Logger.Error("Error deleting event",
				zap.String("eventId", ev.EventID),
				zap.String("shift", ev.Shift),
				zap.String("date", ev.Date),
				zap.Error(err))
			continue
		}
		deleted = append(deleted, ev)
		s.Logger.Info("Deleted event", zap.String("shift", ev.Shift), zap.String("date", ev.Date))
	}
	return deleted
}
