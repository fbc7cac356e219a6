package userRepo

import (
	"context"
	"sync"
	"time"

	"shiftsync/models"
)

// MemoryUserRepo keeps display names in process memory.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	names map[string]models.DisplayName
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{names: make(map[string]models.DisplayName)}
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*models.DisplayName, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[email]
	if !ok {
		return nil, nil
	}
	return &name, nil
}

func (r *MemoryUserRepo) Upsert(_ context.Context, email, firstName string) (*models.DisplayName, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	name, ok := r.names[email]
	if !ok {
		name = models.DisplayName{Email: email, CreatedAt: now}
	}
	name.FirstName = firstName
	name.UpdatedAt = now
	r.names[email] = name
	return &name, nil
}
