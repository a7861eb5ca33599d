package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusAccepted BookingStatus = "ACCEPTED"
	BookingStatusDeclined BookingStatus = "DECLINED"
	BookingStatusSigned   BookingStatus = "SIGNED"
)

type CounterOfferType string

const (
	CounterOfferFlat CounterOfferType = "FLAT"
	// CounterOfferHourly is accepted on the wire but the amount is
	// always read as a flat total.
	CounterOfferHourly CounterOfferType = "HOURLY"
)

type SignatureParty string

const (
	PartyArtist SignatureParty = "artist"
	PartyClient SignatureParty = "client"
)

// Offer holds the negotiable terms a client or promoter proposes.
// SelectedExtras references the DJ's extras catalog by id.
type Offer struct {
	PromoterName          string           `json:"promoter_name"`
	PromoterEmail         string           `json:"promoter_email"`
	EventDate             string           `json:"event_date"`
	StartTime             string           `json:"start_time"`
	DurationHours         float64          `json:"duration_hours"`
	Location              string           `json:"location"`
	UseStandardRate       bool             `json:"use_standard_rate"`
	CounterOfferAmount    float64          `json:"counter_offer_amount"`
	CounterOfferType      CounterOfferType `json:"counter_offer_type"`
	ProvidesTransport     bool             `json:"provides_transport"`
	ProvidesAccommodation bool             `json:"provides_accommodation"`
	ProvidesFood          bool             `json:"provides_food"`
	ProvidesDrinks        bool             `json:"provides_drinks"`
	AdditionalNotes       string           `json:"additional_notes"`
	SelectedExtras        []string         `json:"selected_extras"`
}

// Booking is a shared negotiation record: an Offer plus lifecycle
// state. BaseFee, ExtrasTotal and Total are quoted once at creation and
// never recomputed, so the contract, the fee breakdown and any promoter
// asset snapshot agree even if the profile's rate changes later.
type Booking struct {
	Offer

	ID                 string        `json:"id"`
	CreatedAt          time.Time     `json:"created_at"`
	Status             BookingStatus `json:"status"`
	BaseFee            float64       `json:"base_fee"`
	ExtrasTotal        float64       `json:"extras_total"`
	Total              float64       `json:"total"`
	ArtistSigned       bool          `json:"artist_signed"`
	ClientSigned       bool          `json:"client_signed"`
	ClientSignatureURL string        `json:"client_signature_url,omitempty"`
	EventID            string        `json:"event_id,omitempty"`
}

// statusTransitions is the full transition table. SIGNED is reachable
// only through the dual-signature rule, never by a direct status
// update; DECLINED and SIGNED are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusDeclined, BookingStatusSigned},
	BookingStatusAccepted: {BookingStatusSigned},
}

func CanTransition(from, to BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further status or signature mutation is
// accepted.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusDeclined || s == BookingStatusSigned
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusDeclined, BookingStatusSigned:
		return true
	}
	return false
}
