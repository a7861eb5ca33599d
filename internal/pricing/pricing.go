// Package pricing computes booking totals. It is pure: the same inputs
// always produce the same quote, which lets the contract view and the
// promoter asset snapshot agree at booking-creation time.
package pricing

import (
	"math"

	"github.com/atln0/GigBooker/internal/domain"
)

// Quote is the monetary breakdown of an offer against a profile.
type Quote struct {
	BaseFee     float64 `json:"base_fee"`
	ExtrasTotal float64 `json:"extras_total"`
	Total       float64 `json:"total"`
}

// Calculate prices an offer. The counter-offer amount is read as a flat
// total regardless of the declared counter-offer type; the HOURLY type
// exists in data but is never multiplied by duration. Extra ids not
// present in the catalog contribute nothing. Malformed numeric input
// (NaN, Inf, negatives) is coerced to 0 so a total is always a
// non-negative finite number.
func Calculate(hourlyRate, durationHours float64, useStandardRate bool, counterOfferAmount float64, selectedExtraIDs []string, catalog []domain.ExtraItem) Quote {
	var base float64
	if useStandardRate {
		base = sanitize(hourlyRate) * sanitize(durationHours)
	} else {
		base = sanitize(counterOfferAmount)
	}

	selected := make(map[string]struct{}, len(selectedExtraIDs))
	for _, id := range selectedExtraIDs {
		selected[id] = struct{}{}
	}

	// Each catalog entry counts at most once, even if its id is repeated
	// in the selection.
	var extras float64
	for _, item := range catalog {
		if _, ok := selected[item.ID]; ok {
			extras += sanitize(item.Price)
		}
	}

	return Quote{
		BaseFee:     base,
		ExtrasTotal: extras,
		Total:       base + extras,
	}
}

// ForBooking prices the offer terms snapshotted on a booking against a
// profile's rate and extras catalog.
func ForBooking(profile *domain.DJProfile, offer domain.Offer) Quote {
	return Calculate(
		profile.HourlyRate,
		offer.DurationHours,
		offer.UseStandardRate,
		offer.CounterOfferAmount,
		offer.SelectedExtras,
		profile.Extras,
	)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
