package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atln0/GigBooker/internal/domain"
)

func TestBookingRepository_CreateAndGet(t *testing.T) {
	repo := NewBookingRepo()

	booking := &domain.Booking{
		Offer:     domain.Offer{PromoterName: "X", SelectedExtras: []string{"1"}},
		ID:        "b1",
		Status:    domain.BookingStatusPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), booking))

	got, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	// stored record is isolated from later caller mutation
	got.Status = domain.BookingStatusDeclined
	got.SelectedExtras[0] = "mutated"

	again, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, again.Status)
	assert.Equal(t, []string{"1"}, again.SelectedExtras)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	repo := NewBookingRepo()

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_Update_AppliesOrLeavesUntouched(t *testing.T) {
	repo := NewBookingRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusPending,
	}))

	updated, err := repo.Update(context.Background(), "b1", func(b *domain.Booking) error {
		b.Status = domain.BookingStatusAccepted
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, updated.Status)

	_, err = repo.Update(context.Background(), "b1", func(b *domain.Booking) error {
		b.Status = domain.BookingStatusDeclined
		return assert.AnError
	})
	require.Error(t, err)

	got, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, got.Status)
}

func TestBookingRepository_List_NewestFirst(t *testing.T) {
	repo := NewBookingRepo()
	base := time.Now()

	for i, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, repo.Create(context.Background(), &domain.Booking{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	bookings, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "b3", bookings[0].ID)
	assert.Equal(t, "b1", bookings[2].ID)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := NewSessionRepo()

	session := &domain.Session{ID: "s1", Role: domain.RoleClient}
	require.NoError(t, repo.Create(context.Background(), session))

	updated, err := repo.SetSignature(context.Background(), "s1", "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.NotEmpty(t, updated.SignatureURL)

	require.NoError(t, repo.Delete(context.Background(), "s1"))

	_, err = repo.GetByID(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.NoError(t, repo.Delete(context.Background(), "s1"))
}

func TestProfileRepository_SeedAndIsolation(t *testing.T) {
	repo := NewProfileRepo()

	profile, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "DJ Nexus", profile.Name)

	profile.Extras[0].Price = 9999

	fresh, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 150.0, fresh.Extras[0].Price, 0.001)
}

func TestEventRepository_CreationOrder(t *testing.T) {
	repo := NewEventRepo()

	for _, id := range []string{"e1", "e2", "e3"} {
		require.NoError(t, repo.Create(context.Background(), &domain.Event{ID: id}))
	}

	events, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "e3", events[2].ID)
}

func TestEventRepository_Update_NotFound(t *testing.T) {
	repo := NewEventRepo()

	_, err := repo.Update(context.Background(), "missing", func(e *domain.Event) error { return nil })

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
