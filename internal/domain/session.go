package domain

import "time"

type Role string

const (
	RoleDJ       Role = "DJ"
	RoleClient   Role = "CLIENT"
	RolePromoter Role = "PROMOTER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDJ, RoleClient, RolePromoter:
		return true
	}
	return false
}

// Session is created at login and fixed to a single role until logout.
// SignatureURL holds the client-side signature image for CLIENT and
// PROMOTER sessions; the DJ signs with the profile signature instead.
type Session struct {
	ID           string    `json:"id"`
	Role         Role      `json:"role"`
	SignatureURL string    `json:"signature_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
