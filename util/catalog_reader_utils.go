package util

import (
	"encoding/json"
	"fmt"
	"os"

	"coffee-concierge/models"
	"coffee-concierge/models/shop"
)

// ReadShopsFromJSON loads the shop catalog fixture from disk.
func ReadShopsFromJSON(filePath string) ([]shop.Shop, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var shops []shop.Shop
	if err := json.Unmarshal(data, &shops); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shops: %w", err)
	}
	return shops, nil
}

// ReadPOIsFromJSON loads the points-of-interest fixture from disk.
func ReadPOIsFromJSON(filePath string) ([]models.POI, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var pois []models.POI
	if err := json.Unmarshal(data, &pois); err != nil {
		return nil, fmt.Errorf("failed to unmarshal POIs: %w", err)
	}
	return pois, nil
}

// ReadPlaceDetailsFromJSON loads a PlaceDetails fixture from disk, used by
// the mock Places client.
func ReadPlaceDetailsFromJSON(filePath string) (*models.PlaceDetails, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var details models.PlaceDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlaceDetails: %w", err)
	}
	return &details, nil
}

// PrintShopsPartially prints key fields of a shop catalog for debugging.
func PrintShopsPartially(shops []shop.Shop) {
	fmt.Printf("Shops loaded: %d\n", len(shops))
	if len(shops) > 0 {
		s := shops[0]
		fmt.Printf("First shop: %s in %s (%.6f, %.6f)\n", s.Name, s.City, s.Lat, s.Lng)
	}
}
