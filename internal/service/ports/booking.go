package ports

import (
	"context"

	"github.com/atln0/GigBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, fn func(*domain.Booking) error) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}
