package service

import (
	"fmt"
	"log"
	"net/url"
	"sort"
	"strings"

	"coffee-concierge/api/places"
	"coffee-concierge/config"
	"coffee-concierge/dao/redis"
	"coffee-concierge/models"
	"coffee-concierge/models/shop"
	"coffee-concierge/scoring"
	"coffee-concierge/util"
)

// Walk time shown in narratives: short when anything walkable is in range,
// slightly longer otherwise.
const narrativeWalkTimeNearMin = 5
const narrativeWalkTimeFarMin = 7

const narrativePOINames = 2
const bestVibesTopK = 2

// RecommendationFilters narrows the catalog before scoring.
type RecommendationFilters struct {
	MinWifiScore      float64
	RequireGlutenFree bool
	Verbose           bool
}

type RecommendationService struct {
	shopDao   *redis.RedisShopDAO
	poiDao    *redis.RedisPOIDAO
	placesApi places.PlacesAPI
}

func NewRecommendationService(shopDao *redis.RedisShopDAO, poiDao *redis.RedisPOIDAO, placesApi places.PlacesAPI) *RecommendationService {
	return &RecommendationService{
		shopDao:   shopDao,
		poiDao:    poiDao,
		placesApi: placesApi,
	}
}

// Recommend scores every catalog shop in the given city for the given vibe
// and returns them ordered best-first.
func (rs *RecommendationService) Recommend(city string, vibe scoring.Vibe, filters RecommendationFilters) (*models.RecommendationsResponse, error) {
	shops, err := rs.shopDao.GetAllShops()
	if err != nil {
		return nil, fmt.Errorf("failed to load shops catalog: %w", err)
	}

	recs := make([]models.ShopRecommendation, 0, len(shops))
	for _, s := range shops {
		if city != "" && !strings.EqualFold(s.City, city) {
			continue
		}
		if filters.MinWifiScore > 0 && (s.WifiScore == nil || *s.WifiScore < filters.MinWifiScore) {
			continue
		}
		if filters.RequireGlutenFree && (s.GlutenFree == nil || !*s.GlutenFree) {
			continue
		}

		rec, err := rs.scoreShop(s, vibe, filters.Verbose)
		if err != nil {
			log.Printf("[RecommendationService] Skipping shop %s: %v", s.Name, err)
			continue
		}
		recs = append(recs, *rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	log.Printf("[RecommendationService] Recommended %d shops for city=%q vibe=%q", len(recs), city, vibe)

	return &models.RecommendationsResponse{
		City:  city,
		Vibe:  vibe,
		Shops: recs,
	}, nil
}

// ShopVibes scores a single shop across every vibe profile.
func (rs *RecommendationService) ShopVibes(shopID string) (*models.ShopVibesResponse, error) {
	s, err := rs.shopDao.GetShop(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop %s: %w", shopID, err)
	}

	walkables, parks, poiNames, err := rs.nearbyCounts(*s)
	if err != nil {
		return nil, err
	}

	results := scoring.ComputeAllVibes(s, walkables, parks)
	best := scoring.BestVibes(results, bestVibesTopK)

	walkTime := narrativeWalkTime(walkables)
	narrative := scoring.NarrativeOneLiner(s.Name, results, &walkTime, poiNames, s.Hours.OpenLateDaysLabel())

	details := rs.ResolveShopDetails(*s)

	return &models.ShopVibesResponse{
		Shop:      *s,
		Vibes:     results,
		Best:      best,
		Narrative: narrative,
		Details:   &details,
	}, nil
}

// WhatIf applies attribute overrides to a shop and reports how the vibe
// score moves, with per-attribute contribution deltas.
func (rs *RecommendationService) WhatIf(shopID string, vibe scoring.Vibe, overrides shop.Overrides) (*scoring.WhatIfResult, error) {
	base, err := rs.shopDao.GetShop(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop %s: %w", shopID, err)
	}

	walkables, parks, _, err := rs.nearbyCounts(*base)
	if err != nil {
		return nil, err
	}

	modified := overrides.Apply(*base)
	result := scoring.WhatIf(vibe, base, &modified, walkables, parks)
	return &result, nil
}

// ResolveShopDetails merges catalog contact data with cached Places data,
// fetching from the Places API only when fields are missing and credentials
// are configured. Always produces at least a Google Maps search link.
func (rs *RecommendationService) ResolveShopDetails(s shop.Shop) models.ShopDetails {
	details := models.ShopDetails{
		Address:        s.Address,
		Phone:          s.Phone,
		Website:        s.Website,
		PlaceID:        s.GooglePlaceID,
		PhotoReference: s.PhotoReference,
		Source:         models.DetailSourceCatalog,
	}

	if detailsIncomplete(details) && rs.placesApi != nil && rs.placesApi.HasCredentials() {
		fetched := rs.lookupPlaceDetails(s)
		if fetched != nil {
			if details.Address == "" {
				details.Address = fetched.Address
			}
			if details.Phone == "" {
				details.Phone = fetched.Phone
			}
			if details.Website == "" {
				details.Website = fetched.Website
			}
			if details.PlaceID == "" {
				details.PlaceID = fetched.PlaceID
			}
			if details.PhotoReference == "" {
				details.PhotoReference = fetched.PhotoReference
			}
			details.GoogleURL = fetched.GoogleURL
			details.Source = models.DetailSourceGoogle
		}
	}

	if details.GoogleURL == "" {
		details.GoogleURL = googleMapsSearchURL(s.Name, s.City)
	}

	return details
}

// lookupPlaceDetails goes through the Redis cache before hitting the API.
func (rs *RecommendationService) lookupPlaceDetails(s shop.Shop) *models.PlaceDetails {
	cached, err := rs.shopDao.GetPlaceDetails(s.ShopID)
	if err != nil {
		log.Printf("[RecommendationService] Place details cache read failed for %s: %v", s.ShopID, err)
	}
	if cached != nil {
		return cached
	}

	fetched, err := rs.placesApi.GetPlaceDetails(s.Name, s.Lat, s.Lng, s.City)
	if err != nil {
		log.Printf("[RecommendationService] Place details lookup failed for %s: %v", s.Name, err)
		return nil
	}

	if err := rs.shopDao.SetPlaceDetails(s.ShopID, fetched); err != nil {
		log.Printf("[RecommendationService] Place details cache write failed for %s: %v", s.ShopID, err)
	}
	return fetched
}

func (rs *RecommendationService) scoreShop(s shop.Shop, vibe scoring.Vibe, verbose bool) (*models.ShopRecommendation, error) {
	walkables, parks, poiNames, err := rs.nearbyCounts(s)
	if err != nil {
		return nil, err
	}

	results := scoring.ComputeAllVibes(&s, walkables, parks)
	result, ok := results[vibe]
	if !ok {
		return nil, fmt.Errorf("unknown vibe: %s", vibe)
	}

	walkTime := narrativeWalkTime(walkables)
	narrative := scoring.NarrativeOneLiner(s.Name, results, &walkTime, poiNames, s.Hours.OpenLateDaysLabel())

	rec := &models.ShopRecommendation{
		Shop:      s,
		Score:     result.Score,
		Result:    result,
		Narrative: narrative,
	}
	if walkables != nil {
		rec.NearbyWalkables = *walkables
	}
	if parks != nil {
		rec.NearbyParks = *parks
	}
	if verbose {
		rec.AllVibes = results
	}
	return rec, nil
}

// nearbyCounts queries the POI geo index around the shop and returns the
// walkable total, park count and the names of the two closest POIs. When the
// shop has no coordinates the counts stay nil so catalog fallbacks apply.
func (rs *RecommendationService) nearbyCounts(s shop.Shop) (walkables, parks *int, poiNames []string, err error) {
	if s.Lat == 0 && s.Lng == 0 {
		return nil, nil, nil, nil
	}

	pois, err := rs.poiDao.GetNearbyPOIs(s.Lat, s.Lng, config.NEARBY_WALKABLE_RADIUS_M)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load nearby POIs for %s: %w", s.Name, err)
	}

	sort.Slice(pois, func(i, j int) bool {
		di := util.HaversineM(s.Lat, s.Lng, pois[i].Lat, pois[i].Lng)
		dj := util.HaversineM(s.Lat, s.Lng, pois[j].Lat, pois[j].Lng)
		return di < dj
	})

	total := len(pois)
	parkCount := 0
	for _, p := range pois {
		if p.Type == models.POITypePark {
			parkCount++
		}
		if len(poiNames) < narrativePOINames {
			poiNames = append(poiNames, p.Name)
		}
	}
	return &total, &parkCount, poiNames, nil
}

func narrativeWalkTime(walkables *int) int {
	if walkables != nil && *walkables > 0 {
		return narrativeWalkTimeNearMin
	}
	return narrativeWalkTimeFarMin
}

func detailsIncomplete(d models.ShopDetails) bool {
	return d.Address == "" || d.Phone == "" || d.Website == "" || d.PhotoReference == ""
}

func googleMapsSearchURL(name, city string) string {
	query := name
	if city != "" {
		query += ", " + city
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}
