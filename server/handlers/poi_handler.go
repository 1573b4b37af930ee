package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"coffee-concierge/config"
	"coffee-concierge/service"
)

const (
	LAT_QUERY_ARG        = "lat"
	LNG_QUERY_ARG        = "lng"
	RADIUS_QUERY_ARG     = "radius"
	EXPORT_MAP_QUERY_ARG = "export_map"
)

type POIHandler struct {
	nearbyService *service.NearbyService
}

func NewPOIHandler(nearbyService *service.NearbyService) *POIHandler {
	return &POIHandler{nearbyService: nearbyService}
}

// GetNearbyPOIs handles GET /v1/poi/nearby
func (h *POIHandler) GetNearbyPOIs(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	lat, lng, radius, exportMap, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load geo-indexed POIs with distances and ETAs
	resp, err := h.nearbyService.GetNearbyPOIs(lat, lng, radius,
		config.NEARBY_DEFAULT_WALK_KMH, config.NEARBY_DEFAULT_DRIVE_KMH)
	if err != nil {
		log.Println("Error loading nearby POIs:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Optionally render the HTML map alongside the JSON response
	if exportMap {
		mapPath := config.GetResourcePath(config.NEARBY_MAP_RESOURCE)
		label := fmt.Sprintf("%.4f, %.4f", lat, lng)
		if err := h.nearbyService.ExportMap(label, lat, lng, resp, mapPath); err != nil {
			log.Println("Error exporting nearby POI map:", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		resp.MapPath = mapPath
	}

	// 4) Write JSON
	writeJSON(w, resp)
}

func (h *POIHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lng, radius float64, exportMap, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius = config.NEARBY_WALKABLE_RADIUS_M
	if v := vals.Get(RADIUS_QUERY_ARG); v != "" {
		radius, err = strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return
		}
	}
	if v := vals.Get(EXPORT_MAP_QUERY_ARG); v != "" {
		exportMap, err = strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "Invalid argument "+EXPORT_MAP_QUERY_ARG, http.StatusBadRequest)
			return
		}
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
