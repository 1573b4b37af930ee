package places

import "coffee-concierge/models"

// PlacesAPI defines the interface of the place-details enrichment service.
// Lookups are best-effort: callers fall back to catalog data when the
// service cannot resolve a place.
type PlacesAPI interface {
	GetPlaceDetails(name string, lat, lng float64, city string) (*models.PlaceDetails, error)
	GetPrimaryPhoto(placeID, photoReference string, maxWidth int) ([]byte, error)
	SetCredentials(apiKey string)
	HasCredentials() bool
}
