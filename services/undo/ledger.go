package undo

import (
	"context"
	"errors"

	"shiftsync/models"
)

// ErrNothingToUndo is returned by PopLast when a session has no recorded batch.
var ErrNothingToUndo = errors.New("no recent events to undo")

// Ledger keeps the created-event batches of each session, newest last.
type Ledger interface {
	// Append records batch as the session's most recent batch.
	Append(ctx context.Context, sessionID string, batch models.UndoBatch) error
	// PopLast removes and returns the most recent batch.
	PopLast(ctx context.Context, sessionID string) (models.UndoBatch, error)
	// Len returns how many batches the session holds.
	Len(ctx context.Context, sessionID string) (int, error)
}
