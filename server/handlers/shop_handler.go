package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"coffee-concierge/models"
	"coffee-concierge/scoring"
	"coffee-concierge/service"
)

const (
	CITY_QUERY_ARG     = "city"
	VIBE_QUERY_ARG     = "vibe"
	MIN_WIFI_QUERY_ARG = "min_wifi"
	GF_ONLY_QUERY_ARG  = "gf_only"
	VERBOSE_QUERY_ARG  = "verbose"

	SHOP_ID_PATH_ARG = "shop_id"
)

type ShopHandler struct {
	recommendationService *service.RecommendationService
}

func NewShopHandler(recommendationService *service.RecommendationService) *ShopHandler {
	return &ShopHandler{recommendationService: recommendationService}
}

// GetRecommendations handles GET /v1/shops/recommend
func (h *ShopHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	city, vibe, filters, ok := h.parseRecommendArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Score and rank the catalog
	resp, err := h.recommendationService.Recommend(city, vibe, filters)
	if err != nil {
		log.Println("Error building recommendations:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Write JSON
	writeJSON(w, resp)
}

// GetShopVibes handles GET /v1/shops/{shop_id}/vibes
func (h *ShopHandler) GetShopVibes(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)[SHOP_ID_PATH_ARG]
	if shopID == "" {
		http.Error(w, "Missing argument "+SHOP_ID_PATH_ARG, http.StatusBadRequest)
		return
	}

	resp, err := h.recommendationService.ShopVibes(shopID)
	if err != nil {
		log.Println("Error scoring shop vibes:", err)
		http.Error(w, "Shop not found", http.StatusNotFound)
		return
	}

	writeJSON(w, resp)
}

// PostWhatIf handles POST /v1/shops/{shop_id}/whatif
func (h *ShopHandler) PostWhatIf(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)[SHOP_ID_PATH_ARG]
	if shopID == "" {
		http.Error(w, "Missing argument "+SHOP_ID_PATH_ARG, http.StatusBadRequest)
		return
	}

	var req models.WhatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	vibe, ok := scoring.ParseVibe(req.Vibe)
	if !ok {
		http.Error(w, "Invalid argument "+VIBE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	result, err := h.recommendationService.WhatIf(shopID, vibe, req.Overrides)
	if err != nil {
		log.Println("Error running what-if:", err)
		http.Error(w, "Shop not found", http.StatusNotFound)
		return
	}

	writeJSON(w, result)
}

// GetVibeWeights handles GET /v1/vibes/weights
func (h *ShopHandler) GetVibeWeights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, models.VibeWeightsResponse{Vibes: scoring.AllRubrics()})
}

func (h *ShopHandler) parseRecommendArgs(vals url.Values, w http.ResponseWriter) (
	city string, vibe scoring.Vibe, filters service.RecommendationFilters, ok bool,
) {
	city = vals.Get(CITY_QUERY_ARG)

	vibe, valid := scoring.ParseVibe(vals.Get(VIBE_QUERY_ARG))
	if !valid {
		http.Error(w, "Invalid argument "+VIBE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	if v := vals.Get(MIN_WIFI_QUERY_ARG); v != "" {
		minWifi, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+MIN_WIFI_QUERY_ARG, http.StatusBadRequest)
			return
		}
		filters.MinWifiScore = minWifi
	}
	if v := vals.Get(GF_ONLY_QUERY_ARG); v != "" {
		filters.RequireGlutenFree, _ = strconv.ParseBool(v)
	}
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		filters.Verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

// Ping handles GET /ping
func (h *ShopHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
