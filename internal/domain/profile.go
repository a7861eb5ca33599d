package domain

type GigType string

const (
	GigPast      GigType = "PAST"
	GigFuture    GigType = "FUTURE"
	GigAvailable GigType = "AVAILABLE"
)

type ExtraType string

const (
	ExtraEquipment ExtraType = "EQUIPMENT"
	ExtraService   ExtraType = "SERVICE"
)

type TechItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Essential bool   `json:"essential"`
}

// GigItem is one entry of the DJ's schedule. Link holds a mix recording
// for PAST gigs.
type GigItem struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	EventName string  `json:"event_name"`
	Link      string  `json:"link,omitempty"`
	Type      GigType `json:"type"`
}

type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Reference     string `json:"reference"`
}

type TechRequirement struct {
	Enabled bool   `json:"enabled"`
	Comment string `json:"comment"`
}

// AdvancedTechRequirements is a fixed set of four named requirements,
// not an extensible list.
type AdvancedTechRequirements struct {
	Serato       TechRequirement `json:"serato"`
	Rekordbox    TechRequirement `json:"rekordbox"`
	LaptopInput  TechRequirement `json:"laptop_input"`
	FourChannels TechRequirement `json:"four_channels"`
}

type GenreItem struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Links []string `json:"links"`
}

// ExtraItem is a priced add-on the DJ offers beyond the base
// performance fee.
type ExtraItem struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Type  ExtraType `json:"type"`
}

// DJProfile is owned by the DJ session and read-only to every other
// role. SignatureURL is an inline-encoded image data URL.
type DJProfile struct {
	Name             string                   `json:"name"`
	Bio              string                   `json:"bio"`
	Email            string                   `json:"email"`
	SoundcloudURL    string                   `json:"soundcloud_url"`
	HourlyRate       float64                  `json:"hourly_rate"`
	Currency         string                   `json:"currency"`
	TechRider        []TechItem               `json:"tech_rider"`
	TechRequirements AdvancedTechRequirements `json:"tech_requirements"`
	Genres           []GenreItem              `json:"genres"`
	Extras           []ExtraItem              `json:"extras"`
	Schedule         []GigItem                `json:"schedule"`
	BankDetails      BankDetails              `json:"bank_details"`
	SignatureURL     string                   `json:"signature_url,omitempty"`
}

// DefaultProfile seeds the store with a complete profile so every view
// works before the DJ has saved anything.
func DefaultProfile() *DJProfile {
	return &DJProfile{
		Name:          "DJ Nexus",
		Bio:           "Electronic music producer and DJ specializing in deep house and techno. Over 10 years of experience playing at major clubs and festivals.",
		Email:         "booking@djnexus.com",
		SoundcloudURL: "https://soundcloud.com/example",
		HourlyRate:    250,
		Currency:      "NZD",
		TechRider: []TechItem{
			{ID: "1", Name: "2x Pioneer CDJ-3000", Essential: true},
			{ID: "2", Name: "1x Pioneer DJM-900NXS2 Mixer", Essential: true},
			{ID: "3", Name: "High-quality Booth Monitors", Essential: true},
		},
		Genres: []GenreItem{
			{ID: "1", Name: "Deep House", Links: []string{"https://soundcloud.com/mix1"}},
			{ID: "2", Name: "Techno", Links: []string{}},
		},
		Schedule: []GigItem{
			{ID: "1", Date: "2023-11-15", EventName: "Warehouse Project, Manchester", Type: GigPast, Link: "https://soundcloud.com/mix1"},
			{ID: "2", Date: "2023-12-31", EventName: "Printworks NYE", Type: GigPast},
			{ID: "3", Date: "2025-06-15", EventName: "Sonar Festival", Type: GigFuture},
			{ID: "4", Date: "2025-07-01", EventName: "Available for Booking", Type: GigAvailable},
			{ID: "5", Date: "2025-07-02", EventName: "Available for Booking", Type: GigAvailable},
		},
		Extras: []ExtraItem{
			{ID: "1", Name: "Additional PA System (Small)", Price: 150, Type: ExtraEquipment},
			{ID: "2", Name: "Lighting Package", Price: 100, Type: ExtraEquipment},
			{ID: "3", Name: "Sound Technician (Per Hour)", Price: 50, Type: ExtraService},
		},
	}
}
