package places

import (
	"fmt"

	"coffee-concierge/models"
	"coffee-concierge/util"
)

const PLACE_DETAILS_RESPONSE_PATH = "./resources/place_details.json"

// PlacesApiClientMock serves place details from a JSON fixture, for local
// runs without a Places API key.
type PlacesApiClientMock struct {
	fixturePath string
}

// NewPlacesApiClientMock creates a mock backed by the default fixture.
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{fixturePath: PLACE_DETAILS_RESPONSE_PATH}
}

// NewPlacesApiClientMockWithFixture creates a mock backed by a custom
// fixture path, used by tests.
func NewPlacesApiClientMockWithFixture(path string) *PlacesApiClientMock {
	return &PlacesApiClientMock{fixturePath: path}
}

func (c *PlacesApiClientMock) GetPlaceDetails(name string, lat, lng float64, city string) (*models.PlaceDetails, error) {
	details, err := util.ReadPlaceDetailsFromJSON(c.fixturePath)
	if err != nil {
		fmt.Println("Could not read place details response from json")
		return nil, err
	}
	return details, nil
}

// GetPrimaryPhoto has no fixture; the mock reports no photo available.
func (c *PlacesApiClientMock) GetPrimaryPhoto(placeID, photoReference string, maxWidth int) ([]byte, error) {
	return nil, ErrNoMatch
}

func (c *PlacesApiClientMock) SetCredentials(apiKey string) {}

func (c *PlacesApiClientMock) HasCredentials() bool {
	return true
}
