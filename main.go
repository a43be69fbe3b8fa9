package main

import (
	"fmt"
	"log"
	"time"

	"mf-server/config"
	"mf-server/di"
)

func main() {
	container := di.NewContainer("prod")

	fmt.Println("refreshing!")
	if err := container.CasesRefresherService.RefreshCasesData(config.DEFAULT_DATASET); err != nil {
		log.Printf("initial refresh failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.CasesRefresherService.StartPeriodicJob(config.CASES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.EpiForecastHttpServer.Start()
}
