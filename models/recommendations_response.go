package models

import (
	"coffee-concierge/models/shop"
	"coffee-concierge/scoring"
)

// ShopRecommendation is one ranked entry of a recommendations response.
type ShopRecommendation struct {
	Shop            shop.Shop                           `json:"shop"`
	Score           float64                             `json:"score"`
	Result          scoring.VibeResult                  `json:"result"`
	Narrative       string                              `json:"narrative"`
	NearbyWalkables int                                 `json:"nearby_walkables"`
	NearbyParks     int                                 `json:"nearby_parks"`
	Details         *ShopDetails                        `json:"details,omitempty"`
	AllVibes        map[scoring.Vibe]scoring.VibeResult `json:"all_vibes,omitempty"` // verbose only
}

// RecommendationsResponse lists a city's shops ranked for one vibe.
type RecommendationsResponse struct {
	City  string               `json:"city"`
	Vibe  scoring.Vibe         `json:"vibe"`
	Shops []ShopRecommendation `json:"shops"`
}

// ShopVibesResponse is the full score map for a single shop.
type ShopVibesResponse struct {
	Shop      shop.Shop                           `json:"shop"`
	Vibes     map[scoring.Vibe]scoring.VibeResult `json:"vibes"`
	Best      []scoring.RankedVibe                `json:"best"`
	Narrative string                              `json:"narrative"`
	Details   *ShopDetails                        `json:"details,omitempty"`
}

// WhatIfRequest is the body of a what-if simulation call.
type WhatIfRequest struct {
	Vibe      string         `json:"vibe"`
	Overrides shop.Overrides `json:"overrides"`
}

// VibeWeightsResponse exposes the immutable rubric tables.
type VibeWeightsResponse struct {
	Vibes map[scoring.Vibe][]scoring.RubricEntry `json:"vibes"`
}
