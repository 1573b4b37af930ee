package shop

import "fmt"

// Shop is a sparse coffee-shop attribute record. Every scoring attribute is
// optional: a nil pointer means the value is unknown, and every consumer
// degrades gracefully. A shop is identified by name + city; ShopID is a
// catalog convenience, not an engine concern.
type Shop struct {
	ShopID string  `json:"shop_id,omitempty"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`

	// Work / study attributes (0..5 scales unless noted).
	WifiScore      *float64 `json:"wifi_score,omitempty"`
	OutletsScore   *float64 `json:"outlets_score,omitempty"`
	NoiseScore     *float64 `json:"noise_score,omitempty"` // 0=quiet, 5=loud
	SeatingCount   *float64 `json:"seating_count,omitempty"`
	RestroomAccess *bool    `json:"restroom_access,omitempty"`
	ParkingScore   *float64 `json:"parking_score,omitempty"`

	// Look and feel.
	CleanlinessScore    *float64 `json:"cleanliness_score,omitempty"`
	AestheticScore      *float64 `json:"aesthetic_score,omitempty"`
	NaturalLightScore   *float64 `json:"natural_light_score,omitempty"`
	LatteArtScore       *float64 `json:"latte_art_score,omitempty"`
	UniqueDecorScore    *float64 `json:"unique_decor_score,omitempty"`
	LightingScore       *float64 `json:"lighting_score,omitempty"`
	SeatingComfortScore *float64 `json:"seating_comfort_score,omitempty"`
	SpaceScore          *float64 `json:"space_score,omitempty"`

	// Menu / convenience.
	DessertScore    *float64 `json:"dessert_score,omitempty"`
	KidsSnacksScore *float64 `json:"kids_snacks_score,omitempty"`
	MobileOrder     *bool    `json:"mobile_order,omitempty"`
	HasDriveThrough *bool    `json:"has_drive_through,omitempty"`
	PeakBusyPenalty *float64 `json:"peak_busy_penalty,omitempty"` // 0..1
	PriceIndex      *float64 `json:"price_index,omitempty"`       // 1=cheap..4=expensive

	// Dietary.
	GlutenFree                  *bool    `json:"gf_food,omitempty"`
	DairyFreeMilks              *float64 `json:"df_milks,omitempty"` // 0..3
	NutFree                     *bool    `json:"nut_free,omitempty"`
	IngredientTransparencyScore *float64 `json:"ingredient_transparency_score,omitempty"`

	// Opening hours, fractional 24h clock per day.
	Hours WeekHours `json:"hours,omitempty"`

	// Precomputed proximity norms, used only as fallbacks when the caller
	// supplies no live counts.
	NearbyWalkablesNorm *float64 `json:"nearby_walkables_norm,omitempty"`
	NearbyParksNorm     *float64 `json:"nearby_parks_norm,omitempty"`

	// Contact details, catalog-first with optional Places enrichment.
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Website        string `json:"website,omitempty"`
	GooglePlaceID  string `json:"google_place_id,omitempty"`
	PhotoReference string `json:"photo_reference,omitempty"`
}

func (s *Shop) ToString() string {
	return fmt.Sprintf("Shop(id=%s, name=%s, city=%s, lat=%f, lng=%f)",
		s.ShopID, s.Name, s.City, s.Lat, s.Lng)
}
