package dto

import (
	"encoding/json"
	"strconv"

	"github.com/atln0/GigBooker/internal/domain"
)

// Number decodes a JSON number or a numeric string; anything malformed
// becomes 0 instead of failing the request, matching how the offer form
// treats bad input.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*n = Number(f)
			return nil
		}
	}
	*n = 0
	return nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignatureRequest struct {
	SignatureURL string `json:"signature_url" binding:"required"`
}

type EnhanceBioRequest struct {
	Bio string `json:"bio" binding:"required"`
}

type SubmitOfferRequest struct {
	PromoterName          string   `json:"promoter_name" binding:"required"`
	PromoterEmail         string   `json:"promoter_email"`
	EventDate             string   `json:"event_date" binding:"required"`
	StartTime             string   `json:"start_time"`
	DurationHours         Number   `json:"duration_hours"`
	Location              string   `json:"location"`
	UseStandardRate       bool     `json:"use_standard_rate"`
	CounterOfferAmount    Number   `json:"counter_offer_amount"`
	CounterOfferType      string   `json:"counter_offer_type"`
	ProvidesTransport     bool     `json:"provides_transport"`
	ProvidesAccommodation bool     `json:"provides_accommodation"`
	ProvidesFood          bool     `json:"provides_food"`
	ProvidesDrinks        bool     `json:"provides_drinks"`
	AdditionalNotes       string   `json:"additional_notes"`
	SelectedExtras        []string `json:"selected_extras"`
	EventID               string   `json:"event_id"`
}

func (r SubmitOfferRequest) ToOffer() domain.Offer {
	return domain.Offer{
		PromoterName:          r.PromoterName,
		PromoterEmail:         r.PromoterEmail,
		EventDate:             r.EventDate,
		StartTime:             r.StartTime,
		DurationHours:         float64(r.DurationHours),
		Location:              r.Location,
		UseStandardRate:       r.UseStandardRate,
		CounterOfferAmount:    float64(r.CounterOfferAmount),
		CounterOfferType:      domain.CounterOfferType(r.CounterOfferType),
		ProvidesTransport:     r.ProvidesTransport,
		ProvidesAccommodation: r.ProvidesAccommodation,
		ProvidesFood:          r.ProvidesFood,
		ProvidesDrinks:        r.ProvidesDrinks,
		AdditionalNotes:       r.AdditionalNotes,
		SelectedExtras:        r.SelectedExtras,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	TotalBudget Number `json:"total_budget"`
}

type AddAssetRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Cost     Number `json:"cost"`
	Quantity int    `json:"quantity"`
}

func (r AddAssetRequest) ToTemplate() domain.AssetTemplate {
	return domain.AssetTemplate{
		Name:     r.Name,
		Type:     domain.AssetType(r.Type),
		Cost:     float64(r.Cost),
		Quantity: r.Quantity,
	}
}
