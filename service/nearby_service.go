package service

import (
	"fmt"
	"log"
	"sort"

	"coffee-concierge/dao/redis"
	"coffee-concierge/models"
	"coffee-concierge/util"
)

type NearbyService struct {
	poiDao *redis.RedisPOIDAO
}

func NewNearbyService(poiDao *redis.RedisPOIDAO) *NearbyService {
	return &NearbyService{poiDao: poiDao}
}

// GetNearbyPOIs returns the POIs within radiusM of the given point, closest
// first, with straight-line distances and walk/drive time estimates.
func (ns *NearbyService) GetNearbyPOIs(lat, lng, radiusM, walkKmh, driveKmh float64) (*models.NearbyPOIResponse, error) {
	pois, err := ns.poiDao.GetNearbyPOIs(lat, lng, radiusM)
	if err != nil {
		return nil, fmt.Errorf("failed to load nearby POIs: %w", err)
	}

	nearby := make([]models.NearbyPOI, 0, len(pois))
	summary := models.NearbySummary{}
	for _, p := range pois {
		distM := util.HaversineM(lat, lng, p.Lat, p.Lng)
		distKm := distM / 1000.0

		nearby = append(nearby, models.NearbyPOI{
			POI:        p,
			DistanceM:  distM,
			WalkMin:    util.ETAMinutes(distKm, walkKmh),
			DriveMin:   util.ETAMinutes(distKm, driveKmh),
			DistanceFm: util.FormatMeters(distM),
		})

		summary.Total++
		switch p.Type {
		case models.POITypePark:
			summary.Parks++
		case models.POITypeBookstore:
			summary.Bookstores++
		case models.POITypeLandmark:
			summary.Landmarks++
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceM < nearby[j].DistanceM
	})

	log.Printf("[NearbyService] Found %d POIs within %.0fm of (%f, %f)", summary.Total, radiusM, lat, lng)

	return &models.NearbyPOIResponse{
		Lat:     lat,
		Lng:     lng,
		RadiusM: radiusM,
		Summary: summary,
		POIs:    nearby,
	}, nil
}

// ExportMap renders an HTML map of the POIs around a shop.
func (ns *NearbyService) ExportMap(shopName string, lat, lng float64, resp *models.NearbyPOIResponse, outputPath string) error {
	if err := util.PlotNearbyPOIs(shopName, lat, lng, resp.POIs, outputPath); err != nil {
		return fmt.Errorf("failed to export nearby POI map: %w", err)
	}
	log.Printf("[NearbyService] Exported nearby POI map for %s to %s", shopName, outputPath)
	return nil
}
