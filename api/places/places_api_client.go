package places

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"coffee-concierge/api"
	"coffee-concierge/models"
	"coffee-concierge/util"
)

const (
	textSearchEndpoint = "/textsearch/json"
	nearbyEndpoint     = "/nearbysearch/json"
	findPlaceEndpoint  = "/findplacefromtext/json"
	detailsEndpoint    = "/details/json"
	photoEndpoint      = "/photo"

	textSearchRadiusM = 5000
	nearbyRadiusM     = 2000

	statusOK = "OK"

	detailsFields = "formatted_address,formatted_phone_number,international_phone_number,website,url,photos"
)

// ErrNoCredentials is returned when no API key has been configured.
var ErrNoCredentials = errors.New("places: api key not set")

// ErrNoMatch is returned when every lookup strategy came up empty.
var ErrNoMatch = errors.New("places: no matching place found")

// PlacesApiClient resolves place details through the Google Places Web
// Service, embedding the common HTTPClient.
type PlacesApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient.
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{HTTPClient: httpClient}
}

// SetCredentials configures the API key used on every request.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = strings.TrimSpace(apiKey)
}

func (c *PlacesApiClient) HasCredentials() bool {
	return c.apiKey != ""
}

// GetPlaceDetails runs a resilient place lookup: Text Search first, then
// Nearby Search restricted to cafes, then Find Place from text. Each
// strategy's candidates are ranked by distance to the target coordinates;
// the closest match feeds a final Details call.
func (c *PlacesApiClient) GetPlaceDetails(name string, lat, lng float64, city string) (*models.PlaceDetails, error) {
	if !c.HasCredentials() {
		return nil, ErrNoCredentials
	}

	query := name
	if city != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(city)) {
		query = fmt.Sprintf("%s coffee %s", name, city)
	}

	placeID := c.lookupPlaceID(query, name, lat, lng)
	if placeID == "" {
		return nil, ErrNoMatch
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailsFields)
	q.Set("key", c.apiKey)

	var det models.PlaceDetailsResponse
	if err := c.RequestWithQuery("GET", detailsEndpoint, q, nil, nil, &det); err != nil {
		return nil, fmt.Errorf("places: details request failed: %w", err)
	}
	if det.Status != statusOK {
		log.Printf("[PlacesApiClient] Details status=%s for place_id=%s", det.Status, placeID)
		return &models.PlaceDetails{PlaceID: placeID}, nil
	}

	res := det.Result
	phone := res.FormattedPhoneNumber
	if phone == "" {
		phone = res.InternationalPhoneNumber
	}
	var photoRef string
	if len(res.Photos) > 0 {
		photoRef = res.Photos[0].PhotoReference
	}

	return &models.PlaceDetails{
		Address:        res.FormattedAddress,
		Phone:          phone,
		Website:        res.Website,
		GoogleURL:      res.URL,
		PlaceID:        placeID,
		PhotoReference: photoRef,
	}, nil
}

// lookupPlaceID tries the three search strategies in order and returns the
// first resolved place ID, or "" when all of them fail. Strategy errors are
// logged and swallowed: a later strategy may still succeed.
func (c *PlacesApiClient) lookupPlaceID(query, name string, lat, lng float64) string {
	ts := url.Values{}
	ts.Set("query", query)
	ts.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	ts.Set("radius", strconv.Itoa(textSearchRadiusM))
	ts.Set("key", c.apiKey)
	if id := c.searchPlaceID(textSearchEndpoint, ts, lat, lng); id != "" {
		return id
	}

	ns := url.Values{}
	ns.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	ns.Set("radius", strconv.Itoa(nearbyRadiusM))
	ns.Set("type", "cafe")
	ns.Set("keyword", name)
	ns.Set("key", c.apiKey)
	if id := c.searchPlaceID(nearbyEndpoint, ns, lat, lng); id != "" {
		return id
	}

	fp := url.Values{}
	fp.Set("input", query)
	fp.Set("inputtype", "textquery")
	fp.Set("locationbias", fmt.Sprintf("point:%f,%f", lat, lng))
	fp.Set("fields", "place_id,geometry,name")
	fp.Set("key", c.apiKey)
	return c.searchPlaceID(findPlaceEndpoint, fp, lat, lng)
}

func (c *PlacesApiClient) searchPlaceID(endpoint string, query url.Values, lat, lng float64) string {
	var resp models.PlaceSearchResponse
	if err := c.RequestWithQuery("GET", endpoint, query, nil, nil, &resp); err != nil {
		log.Printf("[PlacesApiClient] Search %s failed: %v", endpoint, err)
		return ""
	}
	if resp.Status != statusOK {
		return ""
	}
	candidates := resp.Results
	if len(candidates) == 0 {
		candidates = resp.Candidates
	}
	best := pickClosest(candidates, lat, lng)
	if best == nil {
		return ""
	}
	return best.PlaceID
}

// pickClosest returns the candidate nearest to the target coordinates.
func pickClosest(candidates []models.PlaceCandidate, lat, lng float64) *models.PlaceCandidate {
	var best *models.PlaceCandidate
	bestDist := 0.0
	for i := range candidates {
		loc := candidates[i].Geometry.Location
		d := util.HaversineM(lat, lng, loc.Lat, loc.Lng)
		if best == nil || d < bestDist {
			best = &candidates[i]
			bestDist = d
		}
	}
	return best
}

// GetPrimaryPhoto returns the raw bytes of a place's primary photo. Pass a
// photo reference when you already have one from a Details call; with only
// a place ID a minimal Details call fetches the reference first.
func (c *PlacesApiClient) GetPrimaryPhoto(placeID, photoReference string, maxWidth int) ([]byte, error) {
	if !c.HasCredentials() {
		return nil, ErrNoCredentials
	}

	ref := strings.TrimSpace(photoReference)
	if ref == "" && placeID != "" {
		q := url.Values{}
		q.Set("place_id", placeID)
		q.Set("fields", "photos")
		q.Set("key", c.apiKey)
		var det models.PlaceDetailsResponse
		if err := c.RequestWithQuery("GET", detailsEndpoint, q, nil, nil, &det); err != nil {
			return nil, fmt.Errorf("places: photo details request failed: %w", err)
		}
		if det.Status == statusOK && len(det.Result.Photos) > 0 {
			ref = det.Result.Photos[0].PhotoReference
		}
	}
	if ref == "" {
		return nil, ErrNoMatch
	}

	q := url.Values{}
	q.Set("maxwidth", strconv.Itoa(maxWidth))
	q.Set("photo_reference", ref)
	q.Set("key", c.apiKey)
	return c.GetRaw(photoEndpoint, q)
}
