// Package repository holds the process-memory stores. There is no
// durable backend: state lives for the lifetime of the process, and
// every write replaces whole records (copy-on-write), so concurrent
// readers never observe a partially-updated booking or event.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/atln0/GigBooker/internal/domain"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

func NewBookingRepo() *BookingRepository {
	return &BookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[b.ID] = cloneBooking(b)
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

// Update replaces the stored record under the store lock after applying
// fn to a private copy. fn returning an error leaves the record
// untouched; this is the single-booking atomic read-modify-write the
// lifecycle manager relies on.
func (r *BookingRepository) Update(_ context.Context, id string, fn func(*domain.Booking) error) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	next := cloneBooking(current)
	if err := fn(next); err != nil {
		return nil, err
	}

	r.bookings[id] = next
	return cloneBooking(next), nil
}

// List returns bookings newest first, matching the original inbox
// ordering.
func (r *BookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, cloneBooking(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.SelectedExtras = append([]string(nil), b.SelectedExtras...)
	return &c
}
