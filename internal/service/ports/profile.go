package ports

import (
	"context"

	"github.com/atln0/GigBooker/internal/domain"
)

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.DJProfile, error)
	Save(ctx context.Context, p *domain.DJProfile) error
}
