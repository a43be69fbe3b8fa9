package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"mf-server/api"
	"mf-server/api/cdc"
	"mf-server/config"
	"mf-server/dao/redis"
	"mf-server/db"
	"mf-server/forecast"
	"mf-server/server"
	"mf-server/server/handlers"
	services "mf-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisCaseDao          *redis.RedisCaseDAO
	CDCAPI                cdc.CDCAPI
	ForecastService       *services.ForecastService
	CasesRefresherService *services.CasesRefresherService
	ForecastHandler       *handlers.ForecastHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	EpiForecastHttpServer *server.EpiForecastHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewKVRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Case DAO
	redisCaseDao := redis.NewRedisCaseDAO(redisClient)

	// Initialize CDC API - fixture-backed mock outside prod
	var cdcApiClient cdc.CDCAPI
	if env != "prod" {
		cdcApiClient = cdc.NewCDCApiClientMock()
		log.Printf("Using mock cdc api")
	} else {
		log.Printf("Using prod cdc api")
		httpClient := api.NewHTTPClient(config.CDC_ENDPOINT_BASE)

		cdcApiClient = cdc.NewCDCApiClient(httpClient, config.CDC_MEASLES_DATA_PAGE)
	}

	// Initialize service layer with the pipeline configuration
	forecastConfig := forecast.DefaultConfig(config.TARGET_YEAR)
	forecastConfig.WeekStart = config.WEEK_START_WEEKDAY
	forecastConfig.HarmonicOrder = config.HARMONIC_ORDER
	forecastConfig.SeasonalPeriodWeeks = config.SEASONAL_PERIOD_WEEKS
	forecastConfig.IntervalWidth = config.FORECAST_INTERVAL_WIDTH

	forecastService := services.NewForecastService(redisCaseDao, forecastConfig)

	casesRefresherService := services.NewCasesRefresherService(redisCaseDao, cdcApiClient, forecastService)

	// Initialize forecast handler
	forecastHandler := handlers.NewForecastHandler(forecastService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(forecastHandler, muxRouter)

	// initialize epi forecast server
	epiForecastHttpServer := server.NewEpiForecastHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		RedisCaseDao:          redisCaseDao,
		CDCAPI:                cdcApiClient,
		ForecastService:       forecastService,
		CasesRefresherService: casesRefresherService,
		ForecastHandler:       forecastHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		EpiForecastHttpServer: epiForecastHttpServer,
	}
}
