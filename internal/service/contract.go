package service

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/service/ports"
)

// ContractService runs AI contract drafts as explicit tasks so the
// three observable states (pending, ready, failed-with-fallback) can be
// inspected and tested without a network dependency. A failed draft can
// be re-requested; a pending one cannot.
type ContractService struct {
	drafter     ports.ContractDrafter
	bookingRepo ports.BookingRepo
	profileRepo ports.ProfileRepo
	logger      logger.Logger

	mu     sync.Mutex
	drafts map[string]*domain.ContractDraft
}

func NewContractService(
	drafter ports.ContractDrafter,
	bookingRepo ports.BookingRepo,
	profileRepo ports.ProfileRepo,
	logger logger.Logger,
) *ContractService {
	return &ContractService{
		drafter:     drafter,
		bookingRepo: bookingRepo,
		profileRepo: profileRepo,
		logger:      logger,
		drafts:      make(map[string]*domain.ContractDraft),
	}
}

// RequestDraft starts a draft for the booking unless one is already in
// flight, in which case the pending task is returned as-is.
func (s *ContractService) RequestDraft(ctx context.Context, bookingID string) (*domain.ContractDraft, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.drafts[bookingID]; ok && existing.State == domain.DraftPending {
		copied := *existing
		s.mu.Unlock()
		return &copied, nil
	}

	draft := &domain.ContractDraft{
		BookingID:   bookingID,
		State:       domain.DraftPending,
		RequestedAt: time.Now().UTC(),
	}
	s.drafts[bookingID] = draft
	copied := *draft
	s.mu.Unlock()

	go s.run(context.WithoutCancel(ctx), profile, booking)

	return &copied, nil
}

func (s *ContractService) run(ctx context.Context, profile *domain.DJProfile, booking *domain.Booking) {
	content, err := s.drafter.GenerateContract(ctx, profile, booking)

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[booking.ID]
	if !ok {
		return
	}
	draft.CompletedAt = time.Now().UTC()

	if err != nil || content == "" {
		draft.State = domain.DraftFailed
		draft.Content = domain.FallbackContractText
		s.logger.Error("contract draft failed",
			logger.String("booking_id", booking.ID),
			logger.Any("error", err),
		)
		return
	}

	draft.State = domain.DraftReady
	draft.Content = content
	s.logger.Info("contract draft ready",
		logger.String("booking_id", booking.ID),
	)
}

// GetDraft returns the task state for a booking, or ErrDraftNotFound if
// no draft was ever requested.
func (s *ContractService) GetDraft(_ context.Context, bookingID string) (*domain.ContractDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[bookingID]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	copied := *draft
	return &copied, nil
}

// ReadyDraft returns a completed draft for export; pending or missing
// drafts are reported distinctly so the caller can prompt the user.
func (s *ContractService) ReadyDraft(_ context.Context, bookingID string) (*domain.ContractDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[bookingID]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	if draft.State == domain.DraftPending {
		return nil, domain.ErrDraftNotReady
	}
	copied := *draft
	return &copied, nil
}
