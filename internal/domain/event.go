package domain

type AssetType string

const (
	AssetArtist    AssetType = "ARTIST"
	AssetEquipment AssetType = "EQUIPMENT"
	AssetStaff     AssetType = "STAFF"
	AssetVenue     AssetType = "VENUE"
	AssetOther     AssetType = "OTHER"
)

// Asset is one budget line item of a promoter event. BookingID is set
// only on ARTIST assets and links back to the booking the line was
// snapshotted from; the cost is frozen at booking creation and never
// re-synced.
type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      AssetType `json:"type"`
	Cost      float64   `json:"cost"`
	Quantity  int       `json:"quantity"`
	BookingID string    `json:"booking_id,omitempty"`
}

// Event is a promoter-owned budget container.
type Event struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	TotalBudget float64 `json:"total_budget"`
	Assets      []Asset `json:"assets"`
}

// TotalSpend is recomputed on every read, never cached.
func (e *Event) TotalSpend() float64 {
	var sum float64
	for _, a := range e.Assets {
		sum += a.Cost * float64(a.Quantity)
	}
	return sum
}

// RemainingBudget may go negative; overrun is a warning condition, not
// a cap.
func (e *Event) RemainingBudget() float64 {
	return e.TotalBudget - e.TotalSpend()
}

func (e *Event) ProgressPercent() float64 {
	budget := e.TotalBudget
	if budget == 0 {
		budget = 1
	}
	percent := e.TotalSpend() / budget * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// AssetTemplate is a catalog entry a promoter can add to an event
// verbatim, with no negotiation.
type AssetTemplate struct {
	Name     string    `json:"name"`
	Type     AssetType `json:"type"`
	Cost     float64   `json:"cost"`
	Quantity int       `json:"quantity"`
}

func PromoterCatalog() []AssetTemplate {
	return []AssetTemplate{
		{Name: "Funktion-One Sound System", Type: AssetEquipment, Cost: 1500, Quantity: 1},
		{Name: "Lighting Rig (Basic)", Type: AssetEquipment, Cost: 600, Quantity: 1},
		{Name: "Lighting Rig (Pro)", Type: AssetEquipment, Cost: 1200, Quantity: 1},
		{Name: "Smoke Machine", Type: AssetEquipment, Cost: 50, Quantity: 1},
		{Name: "Security Guard (per head)", Type: AssetStaff, Cost: 200, Quantity: 1},
		{Name: "Bar Staff (per head)", Type: AssetStaff, Cost: 150, Quantity: 1},
		{Name: "Sound Engineer", Type: AssetStaff, Cost: 400, Quantity: 1},
		{Name: "Venue Hire (Small Club)", Type: AssetVenue, Cost: 2000, Quantity: 1},
		{Name: "Venue Hire (Warehouse)", Type: AssetVenue, Cost: 5000, Quantity: 1},
		{Name: "Marketing & Social Ads", Type: AssetOther, Cost: 500, Quantity: 1},
	}
}
