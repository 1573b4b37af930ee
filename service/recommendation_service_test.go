package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"coffee-concierge/api/places"
	"coffee-concierge/dao/redis"
	"coffee-concierge/db"
	"coffee-concierge/models"
	"coffee-concierge/models/shop"
	"coffee-concierge/scoring"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func seedCatalog(t *testing.T) (*redis.RedisShopDAO, *redis.RedisPOIDAO) {
	t.Helper()
	mockClient := db.NewMockRedisClient(context.Background())
	shopDao := redis.NewRedisShopDAO(mockClient)
	poiDao := redis.NewRedisPOIDAO(mockClient)

	shops := []shop.Shop{
		{
			ShopID: "strong", Name: "Strong Shop", City: "San Francisco",
			Lat: 37.7564, Lng: -122.4214,
			WifiScore: fptr(5.0), OutletsScore: fptr(5.0), NoiseScore: fptr(0.5),
			SeatingCount: fptr(40), RestroomAccess: bptr(true),
			CleanlinessScore: fptr(5.0), ParkingScore: fptr(4.0),
			GlutenFree: bptr(true), DairyFreeMilks: fptr(3),
			Hours: shop.WeekHours{"fri": {7.0, 22.0}},
		},
		{
			ShopID: "weak", Name: "Weak Shop", City: "San Francisco",
			Lat: 37.7767, Lng: -122.4086,
			WifiScore: fptr(1.0), OutletsScore: fptr(1.0), NoiseScore: fptr(4.5),
			GlutenFree: bptr(false),
		},
		{
			ShopID: "elsewhere", Name: "Elsewhere Shop", City: "Oakland",
			Lat: 37.7983, Lng: -122.2776,
			WifiScore: fptr(5.0),
		},
	}
	for _, s := range shops {
		if err := shopDao.UpsertShop(s); err != nil {
			t.Fatalf("Failed to seed shop: %v", err)
		}
	}

	pois := []models.POI{
		{POIID: "p1", Name: "Dolores Park", Type: models.POITypePark, Lat: 37.7596, Lng: -122.4269},
		{POIID: "p2", Name: "Dog Eared Books", Type: models.POITypeBookstore, Lat: 37.7552, Lng: -122.4213},
	}
	for _, p := range pois {
		if err := poiDao.UpsertPOI(p); err != nil {
			t.Fatalf("Failed to seed POI: %v", err)
		}
	}
	return shopDao, poiDao
}

func writeDetailsFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "place_details.json")
	content := `{"address": "1 Fixture St", "phone": "555-0101", "website": "https://fixture.example", "place_id": "fixture-place"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func newTestService(t *testing.T) *RecommendationService {
	shopDao, poiDao := seedCatalog(t)
	mock := places.NewPlacesApiClientMockWithFixture(writeDetailsFixture(t))
	return NewRecommendationService(shopDao, poiDao, mock)
}

func TestRecommend_OrdersByScore(t *testing.T) {
	rs := newTestService(t)

	resp, err := rs.Recommend("San Francisco", scoring.VibeWorkFriendly, RecommendationFilters{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(resp.Shops) != 2 {
		t.Fatalf("Expected 2 SF shops, got %d", len(resp.Shops))
	}
	if resp.Shops[0].Shop.ShopID != "strong" {
		t.Errorf("Expected the strong shop first, got %s", resp.Shops[0].Shop.ShopID)
	}
	if resp.Shops[0].Score < resp.Shops[1].Score {
		t.Errorf("Expected descending scores: %v then %v", resp.Shops[0].Score, resp.Shops[1].Score)
	}
}

func TestRecommend_CityFilterIsCaseInsensitive(t *testing.T) {
	rs := newTestService(t)

	resp, err := rs.Recommend("oakland", scoring.VibeWorkFriendly, RecommendationFilters{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Shops) != 1 || resp.Shops[0].Shop.ShopID != "elsewhere" {
		t.Errorf("Expected only the Oakland shop, got %+v", resp.Shops)
	}
}

func TestRecommend_WifiAndGlutenFreeFilters(t *testing.T) {
	rs := newTestService(t)

	resp, err := rs.Recommend("San Francisco", scoring.VibeWorkFriendly, RecommendationFilters{
		MinWifiScore: 3.0,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Shops) != 1 || resp.Shops[0].Shop.ShopID != "strong" {
		t.Errorf("Expected the wifi filter to drop the weak shop, got %+v", resp.Shops)
	}

	resp, err = rs.Recommend("San Francisco", scoring.VibeDietaryFriendly, RecommendationFilters{
		RequireGlutenFree: true,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Shops) != 1 || resp.Shops[0].Shop.ShopID != "strong" {
		t.Errorf("Expected the gluten-free filter to drop the weak shop, got %+v", resp.Shops)
	}
}

func TestRecommend_VerboseIncludesAllVibes(t *testing.T) {
	rs := newTestService(t)

	terse, _ := rs.Recommend("San Francisco", scoring.VibeWorkFriendly, RecommendationFilters{})
	verbose, _ := rs.Recommend("San Francisco", scoring.VibeWorkFriendly, RecommendationFilters{Verbose: true})

	if terse.Shops[0].AllVibes != nil {
		t.Errorf("Expected no per-vibe breakdown without verbose")
	}
	if len(verbose.Shops[0].AllVibes) != len(scoring.AllVibes()) {
		t.Errorf("Expected all vibes in verbose mode, got %d", len(verbose.Shops[0].AllVibes))
	}
}

func TestRecommend_NearbyCountsAndNarrative(t *testing.T) {
	rs := newTestService(t)

	resp, err := rs.Recommend("San Francisco", scoring.VibeWorkFriendly, RecommendationFilters{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	strong := resp.Shops[0]
	// Both seeded POIs sit within the 700m walkable radius of the strong shop.
	assert.Equal(t, 2, strong.NearbyWalkables)
	assert.Equal(t, 1, strong.NearbyParks)
	assert.Contains(t, strong.Narrative, "**Strong Shop** is strong for")
	assert.Contains(t, strong.Narrative, "5-min walk")
	assert.Contains(t, strong.Narrative, "Data confidence:")
}

func TestShopVibes(t *testing.T) {
	rs := newTestService(t)

	resp, err := rs.ShopVibes("strong")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(resp.Vibes) != len(scoring.AllVibes()) {
		t.Errorf("Expected all vibes scored, got %d", len(resp.Vibes))
	}
	if len(resp.Best) != 2 {
		t.Errorf("Expected a top-2 ranking, got %d", len(resp.Best))
	}
	if resp.Best[0].Result.Score < resp.Best[1].Result.Score {
		t.Errorf("Expected the best list in descending order")
	}
	if resp.Details == nil {
		t.Fatalf("Expected resolved details")
	}
	if resp.Details.Address != "1 Fixture St" {
		t.Errorf("Expected the fixture address, got %q", resp.Details.Address)
	}

	if _, err := rs.ShopVibes("missing"); err == nil {
		t.Errorf("Expected an error for an unknown shop")
	}
}

func TestWhatIf_ThroughService(t *testing.T) {
	rs := newTestService(t)

	result, err := rs.WhatIf("strong", scoring.VibeWorkFriendly, shop.Overrides{
		WifiScore: fptr(0.5),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Delta >= 0 {
		t.Errorf("Expected degrading Wi-Fi to lower the score, got delta %v", result.Delta)
	}
	if result.Vibe != scoring.VibeWorkFriendly {
		t.Errorf("Expected the requested vibe in the result")
	}
}

func TestResolveShopDetails_CatalogFirst(t *testing.T) {
	shopDao, poiDao := seedCatalog(t)
	mock := places.NewPlacesApiClientMockWithFixture(writeDetailsFixture(t))
	rs := NewRecommendationService(shopDao, poiDao, mock)

	// A shop with complete catalog contact data never needs the API.
	complete := shop.Shop{
		ShopID: "complete", Name: "Self Sufficient", City: "San Francisco",
		Address: "9 Catalog Way", Phone: "555-0199",
		Website: "https://catalog.example", PhotoReference: "catalog-photo",
	}
	details := rs.ResolveShopDetails(complete)

	assert.Equal(t, models.DetailSourceCatalog, details.Source)
	assert.Equal(t, "9 Catalog Way", details.Address)
	// The fallback maps link is always present.
	assert.True(t, strings.HasPrefix(details.GoogleURL, "https://www.google.com/maps/search/"))
}

func TestResolveShopDetails_FetchesAndCaches(t *testing.T) {
	shopDao, poiDao := seedCatalog(t)
	mock := places.NewPlacesApiClientMockWithFixture(writeDetailsFixture(t))
	rs := NewRecommendationService(shopDao, poiDao, mock)

	sparse := shop.Shop{ShopID: "sparse", Name: "Sparse Shop", City: "San Francisco"}
	details := rs.ResolveShopDetails(sparse)

	assert.Equal(t, models.DetailSourceGoogle, details.Source)
	assert.Equal(t, "1 Fixture St", details.Address)

	// The fetch is cached against the shop ID.
	cached, err := shopDao.GetPlaceDetails("sparse")
	if err != nil {
		t.Fatalf("Cache read failed: %v", err)
	}
	if cached == nil || cached.PlaceID != "fixture-place" {
		t.Errorf("Expected the fetched details to be cached, got %+v", cached)
	}
}
