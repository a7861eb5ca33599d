package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/service/ports"
)

// EventService owns promoter events and their budget line items. Spend
// and remaining budget are derived on read by the domain type, never
// cached here.
type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

type CreateEventInput struct {
	Name        string
	Date        string
	Location    string
	TotalBudget float64
}

func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.TotalBudget < 0 {
		return nil, fmt.Errorf("%w: total_budget must not be negative", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Date:        input.Date,
		Location:    input.Location,
		TotalBudget: input.TotalBudget,
		Assets:      []domain.Asset{},
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// AddCatalogAsset appends a fresh asset copied verbatim from a catalog
// template; there is no negotiation and no booking link.
func (s *EventService) AddCatalogAsset(ctx context.Context, eventID string, tmpl domain.AssetTemplate) (*domain.Event, error) {
	if tmpl.Name == "" {
		return nil, fmt.Errorf("%w: asset name is required", domain.ErrValidation)
	}
	if tmpl.Cost < 0 {
		return nil, fmt.Errorf("%w: asset cost must not be negative", domain.ErrValidation)
	}
	if tmpl.Quantity < 1 {
		return nil, fmt.Errorf("%w: asset quantity must be at least 1", domain.ErrValidation)
	}
	switch tmpl.Type {
	case domain.AssetEquipment, domain.AssetStaff, domain.AssetVenue, domain.AssetOther:
	case domain.AssetArtist:
		return nil, fmt.Errorf("%w: artist assets are created through booking submission", domain.ErrValidation)
	default:
		return nil, fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, tmpl.Type)
	}

	asset := domain.Asset{
		ID:       uuid.New().String(),
		Name:     tmpl.Name,
		Type:     tmpl.Type,
		Cost:     tmpl.Cost,
		Quantity: tmpl.Quantity,
	}

	return s.repo.Update(ctx, eventID, func(e *domain.Event) error {
		e.Assets = append(e.Assets, asset)
		return nil
	})
}

// RemoveAsset removes a line item by id. A missing asset id is a no-op,
// and a linked booking is never touched: dropping the line does not
// cancel the booking.
func (s *EventService) RemoveAsset(ctx context.Context, eventID, assetID string) (*domain.Event, error) {
	return s.repo.Update(ctx, eventID, func(e *domain.Event) error {
		for i, a := range e.Assets {
			if a.ID == assetID {
				e.Assets = append(e.Assets[:i], e.Assets[i+1:]...)
				break
			}
		}
		return nil
	})
}

// Catalog lists the fixed asset templates a promoter can add.
func (s *EventService) Catalog() []domain.AssetTemplate {
	return domain.PromoterCatalog()
}
