package dto

import (
	"time"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/pricing"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type SessionResponse struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	HasSignature bool   `json:"has_signature"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		Role:         string(s.Role),
		HasSignature: s.SignatureURL != "",
	}
}

// BookingResponse carries the full record, signature images included;
// used by the contract view.
type BookingResponse struct {
	ID        string        `json:"id"`
	CreatedAt string        `json:"created_at"`
	Status    string        `json:"status"`
	Total     float64       `json:"total"`
	Offer     domain.Offer  `json:"offer"`
	Signing   SigningState  `json:"signing"`
	EventID   string        `json:"event_id,omitempty"`
	Quote     *QuoteSummary `json:"quote,omitempty"`
}

type SigningState struct {
	ArtistSigned       bool   `json:"artist_signed"`
	ClientSigned       bool   `json:"client_signed"`
	ClientSignatureURL string `json:"client_signature_url,omitempty"`
}

type QuoteSummary struct {
	BaseFee     float64 `json:"base_fee"`
	ExtrasTotal float64 `json:"extras_total"`
	Total       float64 `json:"total"`
}

// BookingSummaryResponse is the inbox row: signature payloads are
// omitted for every role.
type BookingSummaryResponse struct {
	ID            string  `json:"id"`
	CreatedAt     string  `json:"created_at"`
	Status        string  `json:"status"`
	Total         float64 `json:"total"`
	PromoterName  string  `json:"promoter_name"`
	EventDate     string  `json:"event_date"`
	Location      string  `json:"location"`
	DurationHours float64 `json:"duration_hours"`
	ArtistSigned  bool    `json:"artist_signed"`
	ClientSigned  bool    `json:"client_signed"`
	EventID       string  `json:"event_id,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		Status:    string(b.Status),
		Total:     b.Total,
		Offer:     b.Offer,
		Signing: SigningState{
			ArtistSigned:       b.ArtistSigned,
			ClientSigned:       b.ClientSigned,
			ClientSignatureURL: b.ClientSignatureURL,
		},
		EventID: b.EventID,
	}
}

func ToBookingDetailResponse(b *domain.Booking, q pricing.Quote) BookingResponse {
	resp := ToBookingResponse(b)
	resp.Quote = &QuoteSummary{
		BaseFee:     q.BaseFee,
		ExtrasTotal: q.ExtrasTotal,
		Total:       q.Total,
	}
	return resp
}

func ToBookingSummaryResponse(b *domain.Booking) BookingSummaryResponse {
	return BookingSummaryResponse{
		ID:            b.ID,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		Status:        string(b.Status),
		Total:         b.Total,
		PromoterName:  b.PromoterName,
		EventDate:     b.EventDate,
		Location:      b.Location,
		DurationHours: b.DurationHours,
		ArtistSigned:  b.ArtistSigned,
		ClientSigned:  b.ClientSigned,
		EventID:       b.EventID,
	}
}

// EventResponse includes the derived budget block, recomputed on every
// read.
type EventResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Date            string         `json:"date"`
	Location        string         `json:"location"`
	TotalBudget     float64        `json:"total_budget"`
	Assets          []domain.Asset `json:"assets"`
	TotalSpend      float64        `json:"total_spend"`
	RemainingBudget float64        `json:"remaining_budget"`
	ProgressPercent float64        `json:"progress_percent"`
	OverBudget      bool           `json:"over_budget"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	spend := e.TotalSpend()
	return EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Date:            e.Date,
		Location:        e.Location,
		TotalBudget:     e.TotalBudget,
		Assets:          e.Assets,
		TotalSpend:      spend,
		RemainingBudget: e.RemainingBudget(),
		ProgressPercent: e.ProgressPercent(),
		OverBudget:      spend > e.TotalBudget,
	}
}

type DraftResponse struct {
	BookingID   string `json:"booking_id"`
	State       string `json:"state"`
	Content     string `json:"content,omitempty"`
	RequestedAt string `json:"requested_at"`
}

func ToDraftResponse(d *domain.ContractDraft) DraftResponse {
	return DraftResponse{
		BookingID:   d.BookingID,
		State:       string(d.State),
		Content:     d.Content,
		RequestedAt: d.RequestedAt.Format(time.RFC3339),
	}
}

type EnhanceBioResponse struct {
	Bio string `json:"bio"`
}
