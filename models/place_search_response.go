package models

// Wire formats for the Google Places Web Service responses the enrichment
// client consumes. Only the fields the client reads are mapped.

// LatLng is a Places geometry coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceGeometry wraps a candidate's location.
type PlaceGeometry struct {
	Location LatLng `json:"location"`
}

// PlaceCandidate is one search result, common to the Text Search, Nearby
// Search and Find Place endpoints.
type PlaceCandidate struct {
	PlaceID  string        `json:"place_id"`
	Name     string        `json:"name,omitempty"`
	Geometry PlaceGeometry `json:"geometry"`
}

// PlaceSearchResponse covers the three search endpoints: Text Search and
// Nearby Search return Results, Find Place returns Candidates.
type PlaceSearchResponse struct {
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Results      []PlaceCandidate `json:"results,omitempty"`
	Candidates   []PlaceCandidate `json:"candidates,omitempty"`
}

// PlacePhoto holds a photo reference from a Details response.
type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

// PlaceDetailsResult is the detail payload for one place.
type PlaceDetailsResult struct {
	FormattedAddress         string       `json:"formatted_address,omitempty"`
	FormattedPhoneNumber     string       `json:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string       `json:"international_phone_number,omitempty"`
	Website                  string       `json:"website,omitempty"`
	URL                      string       `json:"url,omitempty"`
	Photos                   []PlacePhoto `json:"photos,omitempty"`
}

// PlaceDetailsResponse is the Details endpoint envelope.
type PlaceDetailsResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message,omitempty"`
	Result       PlaceDetailsResult `json:"result"`
}
