package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ShopRoutes is the subset of shop handler methods the router wires up.
type ShopRoutes interface {
	GetRecommendations(w http.ResponseWriter, r *http.Request)
	GetShopVibes(w http.ResponseWriter, r *http.Request)
	PostWhatIf(w http.ResponseWriter, r *http.Request)
	GetVibeWeights(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// POIRoutes is the subset of POI handler methods the router wires up.
type POIRoutes interface {
	GetNearbyPOIs(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	shopHandler ShopRoutes
	poiHandler  POIRoutes
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	shopHandler ShopRoutes,
	poiHandler POIRoutes,
	router *mux.Router) *Router {
	return &Router{
		shopHandler: shopHandler,
		poiHandler:  poiHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?city={city}&vibe={vibe}&min_wifi={0..5}&gf_only={bool}&verbose={bool}
	r.router.HandleFunc("/v1/shops/recommend", r.shopHandler.GetRecommendations).Methods("GET")

	r.router.HandleFunc("/v1/shops/{shop_id}/vibes", r.shopHandler.GetShopVibes).Methods("GET")

	r.router.HandleFunc("/v1/shops/{shop_id}/whatif", r.shopHandler.PostWhatIf).Methods("POST")

	r.router.HandleFunc("/v1/vibes/weights", r.shopHandler.GetVibeWeights).Methods("GET")

	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/poi/nearby", r.poiHandler.GetNearbyPOIs).Methods("GET")

	r.router.HandleFunc("/ping", r.shopHandler.Ping).Methods("GET")
}
