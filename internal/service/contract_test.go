package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/repository"
	"github.com/atln0/GigBooker/internal/service/ports/mocks"
)

type contractFixture struct {
	svc      *ContractService
	bookings *repository.BookingRepository
	drafter  *mocks.MockContractDrafter
}

func newContractFixture(t *testing.T) *contractFixture {
	t.Helper()

	f := &contractFixture{
		bookings: repository.NewBookingRepo(),
		drafter:  mocks.NewMockContractDrafter(t),
	}
	f.svc = NewContractService(f.drafter, f.bookings, repository.NewProfileRepo(), newTestLogger(t))
	return f
}

func (f *contractFixture) seedBooking(t *testing.T) *domain.Booking {
	t.Helper()
	booking := &domain.Booking{
		Offer: domain.Offer{
			PromoterName: "Warehouse Collective",
			EventDate:    "2026-10-31",
		},
		ID:     "b1",
		Status: domain.BookingStatusAccepted,
		Total:  650,
	}
	require.NoError(t, f.bookings.Create(context.Background(), booking))
	return booking
}

func waitForDraft(t *testing.T, f *contractFixture, bookingID string) *domain.ContractDraft {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		draft, err := f.svc.GetDraft(context.Background(), bookingID)
		require.NoError(t, err)
		if draft.State != domain.DraftPending {
			return draft
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("draft never left pending state")
	return nil
}

func TestContractService_RequestDraft_Ready(t *testing.T) {
	f := newContractFixture(t)
	f.seedBooking(t)

	f.drafter.EXPECT().GenerateContract(mock.Anything, mock.Anything, mock.Anything).
		Return("# DJ PERFORMANCE AGREEMENT\n\nThe parties agree...", nil)

	draft, err := f.svc.RequestDraft(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.DraftPending, draft.State)
	assert.Empty(t, draft.Content)

	done := waitForDraft(t, f, "b1")
	assert.Equal(t, domain.DraftReady, done.State)
	assert.Contains(t, done.Content, "DJ PERFORMANCE AGREEMENT")
	assert.False(t, done.CompletedAt.IsZero())
}

func TestContractService_RequestDraft_FailureUsesFallback(t *testing.T) {
	f := newContractFixture(t)
	f.seedBooking(t)

	f.drafter.EXPECT().GenerateContract(mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	_, err := f.svc.RequestDraft(context.Background(), "b1")
	require.NoError(t, err)

	done := waitForDraft(t, f, "b1")
	assert.Equal(t, domain.DraftFailed, done.State)
	assert.Equal(t, domain.FallbackContractText, done.Content)
}

func TestContractService_RequestDraft_FailedCanBeRetried(t *testing.T) {
	f := newContractFixture(t)
	f.seedBooking(t)

	f.drafter.EXPECT().GenerateContract(mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError).Once()
	f.drafter.EXPECT().GenerateContract(mock.Anything, mock.Anything, mock.Anything).
		Return("second attempt text", nil).Once()

	_, err := f.svc.RequestDraft(context.Background(), "b1")
	require.NoError(t, err)
	failed := waitForDraft(t, f, "b1")
	require.Equal(t, domain.DraftFailed, failed.State)

	_, err = f.svc.RequestDraft(context.Background(), "b1")
	require.NoError(t, err)
	retried := waitForDraft(t, f, "b1")
	assert.Equal(t, domain.DraftReady, retried.State)
	assert.Equal(t, "second attempt text", retried.Content)
}

func TestContractService_RequestDraft_PendingIsSingleFlight(t *testing.T) {
	f := newContractFixture(t)
	f.seedBooking(t)

	release := make(chan struct{})
	f.drafter.EXPECT().GenerateContract(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.DJProfile, *domain.Booking) (string, error) {
			<-release
			return "slow draft", nil
		}).Once()

	first, err := f.svc.RequestDraft(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, domain.DraftPending, first.State)

	// a second request while pending does not start another task
	second, err := f.svc.RequestDraft(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.DraftPending, second.State)

	close(release)
	done := waitForDraft(t, f, "b1")
	assert.Equal(t, domain.DraftReady, done.State)
}

func TestContractService_RequestDraft_UnknownBooking(t *testing.T) {
	f := newContractFixture(t)

	_, err := f.svc.RequestDraft(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestContractService_GetDraft_NotFound(t *testing.T) {
	f := newContractFixture(t)

	_, err := f.svc.GetDraft(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestContractService_ReadyDraft(t *testing.T) {
	f := newContractFixture(t)
	f.seedBooking(t)

	_, err := f.svc.ReadyDraft(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	release := make(chan struct{})
	f.drafter.EXPECT().GenerateContract(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.DJProfile, *domain.Booking) (string, error) {
			<-release
			return "contract body", nil
		})

	_, err = f.svc.RequestDraft(context.Background(), "b1")
	require.NoError(t, err)

	_, err = f.svc.ReadyDraft(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrDraftNotReady)

	close(release)
	waitForDraft(t, f, "b1")

	draft, err := f.svc.ReadyDraft(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "contract body", draft.Content)
}
