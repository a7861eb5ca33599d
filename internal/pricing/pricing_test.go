package pricing

import (
	"math"
	"testing"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

var catalog = []domain.ExtraItem{
	{ID: "1", Name: "Additional PA System (Small)", Price: 150, Type: domain.ExtraEquipment},
	{ID: "2", Name: "Lighting Package", Price: 100, Type: domain.ExtraEquipment},
	{ID: "3", Name: "Sound Technician (Per Hour)", Price: 50, Type: domain.ExtraService},
}

func TestCalculate_StandardRate(t *testing.T) {
	q := Calculate(250, 2, true, 0, []string{"1"}, catalog)

	assert.Equal(t, 500.0, q.BaseFee)
	assert.Equal(t, 150.0, q.ExtrasTotal)
	assert.Equal(t, 650.0, q.Total)
}

func TestCalculate_CounterOffer(t *testing.T) {
	q := Calculate(250, 2, false, 500, nil, catalog)

	assert.Equal(t, 500.0, q.BaseFee)
	assert.Equal(t, 0.0, q.ExtrasTotal)
	assert.Equal(t, 500.0, q.Total)
}

func TestCalculate_CounterOfferIgnoresDuration(t *testing.T) {
	// The amount is a flat total even when the offer declares an
	// hourly counter-offer type.
	flat := Calculate(250, 8, false, 300, nil, catalog)
	assert.Equal(t, 300.0, flat.Total)
}

func TestCalculate_UnknownExtraIgnored(t *testing.T) {
	q := Calculate(100, 1, true, 0, []string{"999", "2"}, catalog)

	assert.Equal(t, 100.0, q.ExtrasTotal)
	assert.Equal(t, 200.0, q.Total)
}

func TestCalculate_DuplicateExtraCountedOnce(t *testing.T) {
	q := Calculate(100, 1, true, 0, []string{"1", "1"}, catalog)

	assert.Equal(t, 150.0, q.ExtrasTotal)
	assert.Equal(t, 250.0, q.Total)
}

func TestCalculate_AllExtras(t *testing.T) {
	q := Calculate(100, 1, true, 0, []string{"1", "2", "3"}, catalog)

	assert.Equal(t, 300.0, q.ExtrasTotal)
}

func TestCalculate_EmptyCatalog(t *testing.T) {
	q := Calculate(100, 2, true, 0, []string{"1"}, nil)

	assert.Equal(t, 200.0, q.Total)
}

func TestCalculate_MalformedInputCoercedToZero(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		hours   float64
		counter float64
		useStd  bool
		want    float64
	}{
		{"nan counter offer", 250, 2, math.NaN(), false, 0},
		{"inf counter offer", 250, 2, math.Inf(1), false, 0},
		{"negative counter offer", 250, 2, -100, false, 0},
		{"nan rate", math.NaN(), 2, 0, true, 0},
		{"negative duration", 250, -2, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(tt.rate, tt.hours, tt.useStd, tt.counter, nil, catalog)
			assert.Equal(t, tt.want, q.Total)
			assert.False(t, math.IsNaN(q.Total))
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	a := Calculate(250, 2, true, 0, []string{"1", "3"}, catalog)
	b := Calculate(250, 2, true, 0, []string{"1", "3"}, catalog)

	assert.Equal(t, a, b)
}

func TestForBooking(t *testing.T) {
	profile := domain.DefaultProfile()
	offer := domain.Offer{
		DurationHours:   2,
		UseStandardRate: true,
		SelectedExtras:  []string{"1"},
	}

	q := ForBooking(profile, offer)

	assert.Equal(t, 650.0, q.Total)
}
