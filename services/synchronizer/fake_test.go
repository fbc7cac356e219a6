package synchronizer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"shiftsync/models"
	"shiftsync/services/backend"
)

var errBackend = errors.New("backend unavailable")

// fakeCalendar is an in-memory CalendarBackend.
type fakeCalendar struct {
	mu        sync.Mutex
	events    []models.CalendarEventRef
	inserted  []models.EventPayload
	nextID    int
	listErr   error
	insertErr map[string]error
	// listDelay widens the window between the duplicate check and the insert.
	listDelay time.Duration
}

func (f *fakeCalendar) ListEvents(_ context.Context, _, _ time.Time) ([]models.CalendarEventRef, error) {
	if f.listDelay > 0 {
		time.Sleep(f.listDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.CalendarEventRef(nil), f.events...), nil
}

func (f *fakeCalendar) InsertEvent(_ context.Context, p models.EventPayload) (models.CalendarEventRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.insertErr[p.Summary]; err != nil {
		return models.CalendarEventRef{}, err
	}
	f.nextID++
	ev := models.CalendarEventRef{
		ID:          fmt.Sprintf("evt-%d", f.nextID),
		Summary:     p.Summary,
		Description: p.Description,
		ColorID:     p.ColorID,
		Start:       p.Start,
		End:         p.End,
	}
	f.events = append(f.events, ev)
	f.inserted = append(f.inserted, p)
	return ev, nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, ev := range f.events {
		if ev.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return backend.ErrNotFound
}

func (f *fakeCalendar) GetEvent(_ context.Context, id string) (models.CalendarEventRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return models.CalendarEventRef{}, backend.ErrNotFound
}

func (f *fakeCalendar) insertedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}
