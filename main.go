package main

import (
	"fmt"
	"os"
	"time"

	"coffee-concierge/config"
	"coffee-concierge/di"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	fmt.Println("refreshing catalog!")
	if err := container.CatalogRefresherService.RefreshCatalog(); err != nil {
		fmt.Println("catalog refresh failed:", err)
	}

	fmt.Println("starting periodic job!")
	container.CatalogRefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.CoffeeConciergeServer.Start()
}
