package undo

import (
	"context"
	"sync"

	"shiftsync/models"
)

// MemoryLedger keeps batches in process memory.
type MemoryLedger struct {
	mu      sync.Mutex
	batches map[string][]models.UndoBatch
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{batches: make(map[string][]models.UndoBatch)}
}

func (l *MemoryLedger) Append(_ context.Context, sessionID string, batch models.UndoBatch) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.batches[sessionID] = append(l.batches[sessionID], batch)
	return nil
}

func (l *MemoryLedger) PopLast(_ context.Context, sessionID string) (models.UndoBatch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	list := l.batches[sessionID]
	if len(list) == 0 {
		return models.UndoBatch{}, ErrNothingToUndo
	}
	last := list[len(list)-1]
	if len(list) == 1 {
		delete(l.batches, sessionID)
	} else {
		l.batches[sessionID] = list[:len(list)-1]
	}
	return last, nil
}

func (l *MemoryLedger) Len(_ context.Context, sessionID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.batches[sessionID]), nil
}
