package domain

import (
	"errors"
	"time"
)

type DraftState string

const (
	DraftPending DraftState = "pending"
	DraftReady   DraftState = "ready"
	DraftFailed  DraftState = "failed"
)

// FallbackContractText replaces the contract body when the drafting
// collaborator fails; the lifecycle itself is unaffected.
const FallbackContractText = "Failed to generate contract due to an API error. Please check your connection or API key."

var (
	ErrDraftNotFound = errors.New("contract draft not found")
	ErrDraftNotReady = errors.New("contract draft not ready")
)

// ContractDraft is the observable state of one AI drafting request.
// There is at most one per booking, and at most one in flight.
type ContractDraft struct {
	BookingID   string     `json:"booking_id"`
	State       DraftState `json:"state"`
	Content     string     `json:"content,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	CompletedAt time.Time  `json:"completed_at,omitzero"`
}
