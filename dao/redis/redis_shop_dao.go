package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"coffee-concierge/db"
	"coffee-concierge/models"
	"coffee-concierge/models/shop"
)

const SHOPS_GEO_KEY_V1 = "shops_geo_v1"
const SHOPS_GEO_PLACE_MEMBER_FORMAT_V1 = "shops_geo_place_v1:%s"

// PLACE_DETAILS_KEY_FORMAT is used to cache enriched place details per shop.
const PLACE_DETAILS_KEY_FORMAT = "place_details_v1:%s"

// RedisShopDAO handles coffee-shop catalog operations using Redis.
type RedisShopDAO struct {
	client db.RedisClient
}

// NewRedisShopDAO initializes a RedisShopDAO with the Redis client.
func NewRedisShopDAO(client db.RedisClient) *RedisShopDAO {
	return &RedisShopDAO{client: client}
}

// UpsertShop stores the shop as a geolocation with its JSON payload.
func (dao *RedisShopDAO) UpsertShop(s shop.Shop) error {
	ctx := dao.client.GetContext()
	shopKey := fmt.Sprintf(SHOPS_GEO_PLACE_MEMBER_FORMAT_V1, s.ShopID)
	return dao.client.AddLocationWithJSON(ctx, SHOPS_GEO_KEY_V1, shopKey, s.Lat, s.Lng, s)
}

// GetShop retrieves one shop by its catalog ID.
func (dao *RedisShopDAO) GetShop(shopID string) (*shop.Shop, error) {
	key := fmt.Sprintf(SHOPS_GEO_PLACE_MEMBER_FORMAT_V1, shopID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop %s: %w", shopID, err)
	}
	var s shop.Shop
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shop JSON: %w", err)
	}
	return &s, nil
}

// GetNearbyShops retrieves shops within a given radius in meters.
func (dao *RedisShopDAO) GetNearbyShops(lat, lon, radiusM float64) ([]shop.Shop, error) {
	shopsJSON, err := dao.client.GetLocationsWithinRadius(SHOPS_GEO_KEY_V1, lat, lon, radiusM)
	if err != nil {
		return nil, fmt.Errorf("[RedisShopDAO] failed to get shops: %v", err)
	}

	shops := make([]shop.Shop, len(shopsJSON))
	for i, shopJSON := range shopsJSON {
		if err := json.Unmarshal([]byte(shopJSON), &shops[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shop JSON: %w", err)
		}
	}
	return shops, nil
}

// GetAllShops loads the full shop catalog from the geo index.
func (dao *RedisShopDAO) GetAllShops() ([]shop.Shop, error) {
	ids, err := dao.ListAllShopIDs()
	if err != nil {
		return nil, err
	}
	shops := make([]shop.Shop, 0, len(ids))
	for _, id := range ids {
		s, err := dao.GetShop(id)
		if err != nil {
			return nil, err
		}
		shops = append(shops, *s)
	}
	return shops, nil
}

// ListAllShopIDs returns all shop IDs present in the geo index.
func (dao *RedisShopDAO) ListAllShopIDs() ([]string, error) {
	pattern := fmt.Sprintf(SHOPS_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list shop geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(SHOPS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetPlaceDetails caches the enriched place details for a shop by its ID.
func (dao *RedisShopDAO) SetPlaceDetails(shopID string, details *models.PlaceDetails) error {
	key := fmt.Sprintf(PLACE_DETAILS_KEY_FORMAT, shopID)
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal place details for shop %s: %w", shopID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set place details in redis: %w", err)
	}
	return nil
}

// GetPlaceDetails retrieves the cached place details for a shop, returning
// nil without error on a cache miss.
func (dao *RedisShopDAO) GetPlaceDetails(shopID string) (*models.PlaceDetails, error) {
	key := fmt.Sprintf(PLACE_DETAILS_KEY_FORMAT, shopID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, nil
	}
	var details models.PlaceDetails
	if err := json.Unmarshal([]byte(str), &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place details JSON: %w", err)
	}
	return &details, nil
}

// DeletePlaceDetails drops the cached details for a shop.
func (dao *RedisShopDAO) DeletePlaceDetails(shopID string) error {
	key := fmt.Sprintf(PLACE_DETAILS_KEY_FORMAT, shopID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete place details key %s: %w", key, err)
	}
	return nil
}
