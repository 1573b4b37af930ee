package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"coffee-concierge/api"
	"coffee-concierge/api/places"
	"coffee-concierge/config"
	"coffee-concierge/dao/redis"
	"coffee-concierge/db"
	"coffee-concierge/server"
	"coffee-concierge/server/handlers"
	"coffee-concierge/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisShopDao            *redis.RedisShopDAO
	RedisPOIDao             *redis.RedisPOIDAO
	PlacesAPI               places.PlacesAPI
	RecommendationService   *service.RecommendationService
	NearbyService           *service.NearbyService
	CatalogRefresherService *service.CatalogRefresherService
	ShopHandler             *handlers.ShopHandler
	POIHandler              *handlers.POIHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	CoffeeConciergeServer   *server.CoffeeConciergeHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis DAOs
	redisShopDao := redis.NewRedisShopDAO(redisClient)
	redisPOIDao := redis.NewRedisPOIDAO(redisClient)

	// Initialize Places API - mock outside prod or when no key is configured
	var placesApiClient places.PlacesAPI
	apiKey := config.GooglePlacesAPIKey()
	if env != "prod" || apiKey == "" {
		placesApiClient = places.NewPlacesApiClientMock()
		log.Printf("Using mock places api")
	} else {
		log.Printf("Using prod places api")
		httpClient := api.NewHTTPClient(config.GOOGLE_PLACES_ENDPOINT_BASE)

		placesApiClient = places.NewPlacesApiClient(httpClient)
		placesApiClient.SetCredentials(apiKey)
	}

	// Initialize service layer
	recommendationService := service.NewRecommendationService(redisShopDao, redisPOIDao, placesApiClient)
	nearbyService := service.NewNearbyService(redisPOIDao)
	catalogRefresherService := service.NewCatalogRefresherService(redisShopDao, redisPOIDao, placesApiClient)

	// Initialize handlers
	shopHandler := handlers.NewShopHandler(recommendationService)
	poiHandler := handlers.NewPOIHandler(nearbyService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(shopHandler, poiHandler, muxRouter)

	// Initialize coffee concierge server
	coffeeConciergeServer := server.NewCoffeeConciergeHttpServer(config.HTTP_SERVER_ADDRESS, router, muxRouter)

	return &Container{
		RedisClient:             redisClient,
		RedisShopDao:            redisShopDao,
		RedisPOIDao:             redisPOIDao,
		PlacesAPI:               placesApiClient,
		RecommendationService:   recommendationService,
		NearbyService:           nearbyService,
		CatalogRefresherService: catalogRefresherService,
		ShopHandler:             shopHandler,
		POIHandler:              poiHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		CoffeeConciergeServer:   coffeeConciergeServer,
	}
}
