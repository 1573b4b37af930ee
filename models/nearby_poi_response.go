package models

// NearbyPOI is a point of interest annotated with distance and ETA from a
// reference location. ETAs are nil when the corresponding speed is not
// positive.
type NearbyPOI struct {
	POI        POI      `json:"poi"`
	DistanceM  float64  `json:"distance_m"`
	WalkMin    *float64 `json:"walk_min,omitempty"`
	DriveMin   *float64 `json:"drive_min,omitempty"`
	DistanceFm string   `json:"distance"` // human readable, e.g. "450 m"
}

// NearbySummary counts the POIs in range by type.
type NearbySummary struct {
	Total      int `json:"total"`
	Parks      int `json:"parks"`
	Bookstores int `json:"bookstores"`
	Landmarks  int `json:"landmarks"`
}

// NearbyPOIResponse lists POIs within a radius of a point, closest first.
// MapPath is set only when the caller asked for an HTML map export.
type NearbyPOIResponse struct {
	Lat     float64       `json:"lat"`
	Lng     float64       `json:"lng"`
	RadiusM float64       `json:"radius_m"`
	Summary NearbySummary `json:"summary"`
	POIs    []NearbyPOI   `json:"pois"`
	MapPath string        `json:"map_path,omitempty"`
}
