package config

import (
	"os"
	"path/filepath"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Cases Refresher config
const CASES_REFRESHER_SCHEDULE_MINUTES = 60 * 6

// CDC data source
const CDC_ENDPOINT_BASE = "https://www.cdc.gov"
const CDC_MEASLES_DATA_PAGE = "/measles/data-research/index.html"

// Forecast model config (mirrored into forecast.Config by the DI container)
const TARGET_YEAR = 2025
const WEEK_START_WEEKDAY = time.Sunday
const HARMONIC_ORDER = 10
const SEASONAL_PERIOD_WEEKS = 52.1775
const FORECAST_INTERVAL_WIDTH = 0.80

// Datasets
const DEFAULT_DATASET = "measles"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const MEASLES_CASES_RESOURCE = "measles_cases_2025.csv"

// Output file paths
const FORECAST_CHART_OUTPUT = "measles_forecast_2025.html"
const CASES_CSV_SNAPSHOT = "measles_cases_2025_snapshot.csv"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
