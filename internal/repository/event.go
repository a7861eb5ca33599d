package repository

import (
	"context"
	"sync"

	"github.com/atln0/GigBooker/internal/domain"
)

type EventRepository struct {
	mu     sync.RWMutex
	events map[string]*domain.Event
	order  []string
}

func NewEventRepo() *EventRepository {
	return &EventRepository{
		events: make(map[string]*domain.Event),
	}
}

func (r *EventRepository) Create(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[e.ID] = cloneEvent(e)
	r.order = append(r.order, e.ID)
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

// Update applies fn to a private copy and swaps it in whole, keeping
// asset lists consistent for concurrent readers.
func (r *EventRepository) Update(_ context.Context, id string, fn func(*domain.Event) error) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	next := cloneEvent(current)
	if err := fn(next); err != nil {
		return nil, err
	}

	r.events[id] = next
	return cloneEvent(next), nil
}

// List preserves creation order.
func (r *EventRepository) List(_ context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		if e, ok := r.events[id]; ok {
			out = append(out, cloneEvent(e))
		}
	}
	return out, nil
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	c.Assets = append([]domain.Asset(nil), e.Assets...)
	return &c
}
