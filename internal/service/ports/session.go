package ports

import (
	"context"

	"github.com/atln0/GigBooker/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	SetSignature(ctx context.Context, id, signatureURL string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
