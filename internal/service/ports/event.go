package ports

import (
	"context"

	"github.com/atln0/GigBooker/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, id string, fn func(*domain.Event) error) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}
