package service

import (
	"fmt"
	"log"
	"time"

	"coffee-concierge/api/places"
	"coffee-concierge/config"
	"coffee-concierge/dao/redis"
	"coffee-concierge/models/shop"
	"coffee-concierge/util"
)

// CatalogRefresherService reloads the shop and POI catalogs from the JSON
// resources into the Redis geo indexes, optionally enriching shops with
// Google Places contact details.
type CatalogRefresherService struct {
	shopDao   *redis.RedisShopDAO
	poiDao    *redis.RedisPOIDAO
	placesApi places.PlacesAPI
}

func NewCatalogRefresherService(shopDao *redis.RedisShopDAO, poiDao *redis.RedisPOIDAO, placesApi places.PlacesAPI) *CatalogRefresherService {
	return &CatalogRefresherService{
		shopDao:   shopDao,
		poiDao:    poiDao,
		placesApi: placesApi,
	}
}

func (cr *CatalogRefresherService) RefreshCatalog() error {
	log.Println("[CatalogRefresherService] Refreshing catalog")

	shops, err := util.ReadShopsFromJSON(config.GetResourcePath(config.SHOPS_CATALOG_RESOURCE))
	if err != nil {
		return fmt.Errorf("failed to read shops catalog: %w", err)
	}
	util.PrintShopsPartially(shops)

	for _, s := range shops {
		if err := cr.shopDao.UpsertShop(s); err != nil {
			return fmt.Errorf("failed to upsert shop %s: %w", s.Name, err)
		}
	}
	log.Printf("[CatalogRefresherService] Upserted %d shops", len(shops))

	pois, err := util.ReadPOIsFromJSON(config.GetResourcePath(config.POI_CATALOG_RESOURCE))
	if err != nil {
		return fmt.Errorf("failed to read POI catalog: %w", err)
	}

	for _, p := range pois {
		if err := cr.poiDao.UpsertPOI(p); err != nil {
			return fmt.Errorf("failed to upsert POI %s: %w", p.Name, err)
		}
	}
	log.Printf("[CatalogRefresherService] Upserted %d POIs", len(pois))

	if cr.placesApi != nil && cr.placesApi.HasCredentials() {
		cr.enrichShopDetails(shops)
	}

	return nil
}

// enrichShopDetails warms the place-details cache for shops missing contact
// data. Lookup failures are logged and skipped so one bad shop does not
// block the refresh.
func (cr *CatalogRefresherService) enrichShopDetails(shops []shop.Shop) {
	enriched := 0
	for _, s := range shops {
		if s.Address != "" && s.Phone != "" && s.Website != "" && s.PhotoReference != "" {
			continue
		}

		cached, err := cr.shopDao.GetPlaceDetails(s.ShopID)
		if err != nil {
			log.Printf("[CatalogRefresherService] Place details cache read failed for %s: %v", s.ShopID, err)
			continue
		}
		if cached != nil {
			continue
		}

		details, err := cr.placesApi.GetPlaceDetails(s.Name, s.Lat, s.Lng, s.City)
		if err != nil {
			log.Printf("[CatalogRefresherService] Place details lookup failed for %s: %v", s.Name, err)
			continue
		}

		if err := cr.shopDao.SetPlaceDetails(s.ShopID, details); err != nil {
			log.Printf("[CatalogRefresherService] Place details cache write failed for %s: %v", s.ShopID, err)
			continue
		}
		enriched++
	}
	log.Printf("[CatalogRefresherService] Enriched place details for %d shops", enriched)
}

// StartPeriodicJob refreshes the catalog on a fixed schedule until the
// process exits.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		for range ticker.C {
			log.Println("[CatalogRefresherService] Running scheduled catalog refresh")
			if err := cr.RefreshCatalog(); err != nil {
				log.Printf("[CatalogRefresherService] Scheduled refresh failed: %v", err)
			}
		}
	}()

	log.Printf("[CatalogRefresherService] Periodic refresh scheduled every %s", interval)
}
