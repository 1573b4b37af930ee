package redis

import (
	"encoding/json"
	"fmt"

	"coffee-concierge/db"
	"coffee-concierge/models"
)

const POI_GEO_KEY_V1 = "poi_geo_v1"
const POI_GEO_PLACE_MEMBER_FORMAT_V1 = "poi_geo_place_v1:%s"

// RedisPOIDAO handles point-of-interest operations using Redis.
type RedisPOIDAO struct {
	client db.RedisClient
}

// NewRedisPOIDAO initializes a RedisPOIDAO with the Redis client.
func NewRedisPOIDAO(client db.RedisClient) *RedisPOIDAO {
	return &RedisPOIDAO{client: client}
}

// UpsertPOI stores the POI as a geolocation with its JSON payload.
func (dao *RedisPOIDAO) UpsertPOI(p models.POI) error {
	ctx := dao.client.GetContext()
	member := p.POIID
	if member == "" {
		// POI fixtures may lack IDs; name+type is unique enough for the
		// geo member key.
		member = p.Name + ":" + p.Type
	}
	poiKey := fmt.Sprintf(POI_GEO_PLACE_MEMBER_FORMAT_V1, member)
	return dao.client.AddLocationWithJSON(ctx, POI_GEO_KEY_V1, poiKey, p.Lat, p.Lng, p)
}

// GetNearbyPOIs retrieves POIs within a given radius in meters.
func (dao *RedisPOIDAO) GetNearbyPOIs(lat, lon, radiusM float64) ([]models.POI, error) {
	poisJSON, err := dao.client.GetLocationsWithinRadius(POI_GEO_KEY_V1, lat, lon, radiusM)
	if err != nil {
		return nil, fmt.Errorf("[RedisPOIDAO] failed to get POIs: %v", err)
	}

	pois := make([]models.POI, len(poisJSON))
	for i, poiJSON := range poisJSON {
		if err := json.Unmarshal([]byte(poiJSON), &pois[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal POI JSON: %w", err)
		}
	}
	return pois, nil
}
