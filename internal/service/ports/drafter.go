package ports

import (
	"context"

	"github.com/atln0/GigBooker/internal/domain"
)

// ContractDrafter produces contract prose and bio rewrites. Failures
// must never block lifecycle operations; callers degrade to fallback
// text.
type ContractDrafter interface {
	GenerateContract(ctx context.Context, profile *domain.DJProfile, booking *domain.Booking) (string, error)
	EnhanceBio(ctx context.Context, bio string) (string, error)
}
