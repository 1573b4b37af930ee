package shop

// Overrides carries the attribute tweaks a what-if simulation may apply.
// Nil fields leave the baseline value untouched; the shop never moves, so
// location and proximity are not overridable.
type Overrides struct {
	WifiScore         *float64 `json:"wifi_score,omitempty"`
	OutletsScore      *float64 `json:"outlets_score,omitempty"`
	NoiseScore        *float64 `json:"noise_score,omitempty"`
	SeatingCount      *float64 `json:"seating_count,omitempty"`
	ParkingScore      *float64 `json:"parking_score,omitempty"`
	PriceIndex        *float64 `json:"price_index,omitempty"`
	CleanlinessScore  *float64 `json:"cleanliness_score,omitempty"`
	AestheticScore    *float64 `json:"aesthetic_score,omitempty"`
	NaturalLightScore *float64 `json:"natural_light_score,omitempty"`
	LatteArtScore     *float64 `json:"latte_art_score,omitempty"`
	DessertScore      *float64 `json:"dessert_score,omitempty"`
	GlutenFree        *bool    `json:"gf_food,omitempty"`
	DairyFreeMilks    *float64 `json:"df_milks,omitempty"`
	NutFree           *bool    `json:"nut_free,omitempty"`
	MobileOrder       *bool    `json:"mobile_order,omitempty"`
	HasDriveThrough   *bool    `json:"has_drive_through,omitempty"`
}

// Apply returns a copy of the shop with every non-nil override in place.
func (o Overrides) Apply(s Shop) Shop {
	out := s
	if o.WifiScore != nil {
		out.WifiScore = o.WifiScore
	}
	if o.OutletsScore != nil {
		out.OutletsScore = o.OutletsScore
	}
	if o.NoiseScore != nil {
		out.NoiseScore = o.NoiseScore
	}
	if o.SeatingCount != nil {
		out.SeatingCount = o.SeatingCount
	}
	if o.ParkingScore != nil {
		out.ParkingScore = o.ParkingScore
	}
	if o.PriceIndex != nil {
		out.PriceIndex = o.PriceIndex
	}
	if o.CleanlinessScore != nil {
		out.CleanlinessScore = o.CleanlinessScore
	}
	if o.AestheticScore != nil {
		out.AestheticScore = o.AestheticScore
	}
	if o.NaturalLightScore != nil {
		out.NaturalLightScore = o.NaturalLightScore
	}
	if o.LatteArtScore != nil {
		out.LatteArtScore = o.LatteArtScore
	}
	if o.DessertScore != nil {
		out.DessertScore = o.DessertScore
	}
	if o.GlutenFree != nil {
		out.GlutenFree = o.GlutenFree
	}
	if o.DairyFreeMilks != nil {
		out.DairyFreeMilks = o.DairyFreeMilks
	}
	if o.NutFree != nil {
		out.NutFree = o.NutFree
	}
	if o.MobileOrder != nil {
		out.MobileOrder = o.MobileOrder
	}
	if o.HasDriveThrough != nil {
		out.HasDriveThrough = o.HasDriveThrough
	}
	return out
}
