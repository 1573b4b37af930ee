package models

import "fmt"

// POI type labels used by the nearby summaries.
const (
	POITypePark      = "park"
	POITypeBookstore = "bookstore"
	POITypeLandmark  = "landmark"
)

// POI is a point of interest near a coffee shop.
type POI struct {
	POIID string  `json:"poi_id,omitempty"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Tags  string  `json:"tags,omitempty"`
}

func (p *POI) ToString() string {
	return fmt.Sprintf("POI(name=%s, type=%s, lat=%f, lng=%f)", p.Name, p.Type, p.Lat, p.Lng)
}
