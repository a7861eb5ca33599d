package ports

import (
	"context"

	"github.com/atln0/GigBooker/internal/domain"
)

// BookingNotifier pushes lifecycle events to the DJ. Implementations
// are best-effort and must swallow their own failures.
type BookingNotifier interface {
	NotifyOfferSubmitted(ctx context.Context, b *domain.Booking)
	NotifyStatusChanged(ctx context.Context, b *domain.Booking)
	NotifyContractSigned(ctx context.Context, b *domain.Booking)
}
