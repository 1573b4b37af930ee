package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server
const HTTP_SERVER_ADDRESS = ":8080"

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Google Places API
const GOOGLE_PLACES_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api/place"
const GOOGLE_PLACES_API_KEY_ENV = "GOOGLE_MAPS_API_KEY"

// Nearby POI defaults
const NEARBY_WALKABLE_RADIUS_M = 700.0
const NEARBY_DEFAULT_WALK_KMH = 5.0
const NEARBY_DEFAULT_DRIVE_KMH = 30.0

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SHOPS_CATALOG_RESOURCE = "shops.json"
const POI_CATALOG_RESOURCE = "poi.json"
const PLACE_DETAILS_RESOURCE = "place_details.json"
const NEARBY_MAP_RESOURCE = "nearby_map.html"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

// GooglePlacesAPIKey returns the Places key from the environment, or ""
// when enrichment should be disabled.
func GooglePlacesAPIKey() string {
	return os.Getenv(GOOGLE_PLACES_API_KEY_ENV)
}
