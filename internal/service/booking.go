package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/pricing"
	"github.com/atln0/GigBooker/internal/service/ports"
)

// BookingService owns the booking lifecycle: offer submission, status
// transitions and the dual-signature rule.
type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	profileRepo ports.ProfileRepo
	sessionRepo ports.SessionRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	profileRepo ports.ProfileRepo,
	sessionRepo ports.SessionRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

type SubmitOfferInput struct {
	Offer domain.Offer
	// EventID links the booking to a promoter event; set only on
	// promoter-initiated offers.
	EventID string
}

// SubmitOffer creates a PENDING booking, snapshotting the offer and a
// freshly computed total. When the offer was promoter-initiated the
// quoted cost is frozen into an ARTIST asset on the event; the asset is
// a projection of the booking, not a live link.
func (s *BookingService) SubmitOffer(ctx context.Context, input SubmitOfferInput) (*domain.Booking, error) {
	offer := input.Offer
	if offer.PromoterName == "" {
		return nil, fmt.Errorf("%w: promoter name is required", domain.ErrValidation)
	}
	if offer.EventDate == "" {
		return nil, fmt.Errorf("%w: event date is required", domain.ErrValidation)
	}
	if offer.UseStandardRate && offer.DurationHours <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}
	if offer.CounterOfferType == "" {
		offer.CounterOfferType = domain.CounterOfferFlat
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if input.EventID != "" {
		if _, err = s.eventRepo.GetByID(ctx, input.EventID); err != nil {
			return nil, fmt.Errorf("check event: %w", err)
		}
	}

	quote := pricing.ForBooking(profile, offer)

	booking := &domain.Booking{
		Offer:       offer,
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		Status:      domain.BookingStatusPending,
		BaseFee:     quote.BaseFee,
		ExtrasTotal: quote.ExtrasTotal,
		Total:       quote.Total,
		EventID:     input.EventID,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if input.EventID != "" {
		asset := domain.Asset{
			ID:        uuid.New().String(),
			Name:      fmt.Sprintf("DJ Booking: %s", profile.Name),
			Type:      domain.AssetArtist,
			Cost:      quote.Total,
			Quantity:  1,
			BookingID: booking.ID,
		}
		if _, err = s.eventRepo.Update(ctx, input.EventID, func(e *domain.Event) error {
			e.Assets = append(e.Assets, asset)
			return nil
		}); err != nil {
			return nil, fmt.Errorf("attach artist asset: %w", err)
		}
	}

	s.logger.Info("offer submitted",
		logger.String("booking_id", booking.ID),
		logger.String("promoter", offer.PromoterName),
		logger.Any("total", quote.Total),
	)

	go s.notifier.NotifyOfferSubmitted(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// UpdateStatus applies a direct status transition. Only ACCEPTED and
// DECLINED may be requested; SIGNED is derived from the dual-signature
// rule and never settable here.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if status != domain.BookingStatusAccepted && status != domain.BookingStatusDeclined {
		return nil, fmt.Errorf("%w: status %q cannot be requested directly", domain.ErrInvalidTransition, status)
	}

	booking, err := s.bookingRepo.Update(ctx, id, func(b *domain.Booking) error {
		if !domain.CanTransition(b.Status, status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, status)
		}
		b.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", id),
		logger.String("status", string(status)),
	)

	go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Sign records one party's signature and re-derives the status: both
// flags true forces SIGNED through the transition table. A DECLINED
// booking rejects any sign attempt instead of being silently
// resurrected, and the signing party must have a signature image on
// file before the call.
func (s *BookingService) Sign(ctx context.Context, id string, party domain.SignatureParty, sessionID string) (*domain.Booking, error) {
	var signatureURL string
	switch party {
	case domain.PartyArtist:
		profile, err := s.profileRepo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		signatureURL = profile.SignatureURL
	case domain.PartyClient:
		session, err := s.sessionRepo.GetByID(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("get session: %w", err)
		}
		signatureURL = session.SignatureURL
	default:
		return nil, fmt.Errorf("%w: unknown signing party %q", domain.ErrValidation, party)
	}

	if signatureURL == "" {
		return nil, domain.ErrMissingSignature
	}

	booking, err := s.bookingRepo.Update(ctx, id, func(b *domain.Booking) error {
		if b.Status == domain.BookingStatusDeclined {
			return domain.ErrBookingDeclined
		}
		if b.Status == domain.BookingStatusSigned {
			return fmt.Errorf("%w: booking is already fully signed", domain.ErrInvalidTransition)
		}

		if party == domain.PartyArtist {
			if b.ArtistSigned {
				return domain.ErrAlreadySigned
			}
			b.ArtistSigned = true
		} else {
			if b.ClientSigned {
				return domain.ErrAlreadySigned
			}
			b.ClientSigned = true
			b.ClientSignatureURL = signatureURL
		}

		if b.ArtistSigned && b.ClientSigned {
			if !domain.CanTransition(b.Status, domain.BookingStatusSigned) {
				return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, domain.BookingStatusSigned)
			}
			b.Status = domain.BookingStatusSigned
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking signed",
		logger.String("booking_id", id),
		logger.String("party", string(party)),
		logger.String("status", string(booking.Status)),
	)

	if booking.Status == domain.BookingStatusSigned {
		go s.notifier.NotifyContractSigned(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// List returns the shared negotiation record visible to every role,
// newest first.
func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// Quote returns the fee breakdown frozen on the booking at creation.
// It never re-prices against the current profile, so the breakdown and
// the stored Total always agree even after a rate change.
func (s *BookingService) Quote(ctx context.Context, id string) (*domain.Booking, pricing.Quote, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	quote := pricing.Quote{
		BaseFee:     booking.BaseFee,
		ExtrasTotal: booking.ExtrasTotal,
		Total:       booking.Total,
	}
	return booking, quote, nil
}
