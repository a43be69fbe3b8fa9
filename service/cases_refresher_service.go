package services

import (
	"log"
	"path/filepath"
	"time"

	"mf-server/api/cdc"
	"mf-server/config"
	"mf-server/dao/redis"
	"mf-server/util"
)

// CasesRefresherService periodically refreshes weekly case data from the CDC.
type CasesRefresherService struct {
	caseDao         *redis.RedisCaseDAO
	cdcAPI          cdc.CDCAPI
	forecastService *ForecastService
}

// NewCasesRefresherService constructs a new Refresher with dependencies.
func NewCasesRefresherService(
	caseDao *redis.RedisCaseDAO,
	cdcAPI cdc.CDCAPI,
	forecastService *ForecastService,
) *CasesRefresherService {
	return &CasesRefresherService{
		caseDao:         caseDao,
		cdcAPI:          cdcAPI,
		forecastService: forecastService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CasesRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CasesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CasesRefresherService] Running periodic cases refresher job.")
		if err := cr.RefreshCasesData(config.DEFAULT_DATASET); err != nil {
			log.Printf("[CasesRefresherService] RefreshCasesData returned error: %v", err)
		} else {
			log.Println("[CasesRefresherService] RefreshCasesData completed successfully.")
		}
	}
}

// RefreshCasesData orchestrates the four steps: scrape, persist, recompute,
// re-render the chart.
func (cr *CasesRefresherService) RefreshCasesData(dataset string) error {
	// 1) Scrape the latest weekly table
	log.Printf("[CasesRefresherService] Fetching weekly cases for %s", dataset)
	records, err := cr.cdcAPI.GetWeeklyCases()
	if err != nil {
		log.Printf("[CasesRefresherService] Failed to fetch weekly cases: %v", err)
		return err
	}
	log.Printf("[CasesRefresherService] Fetched %d case records", len(records))

	// 2) Persist: redis is the working copy, the CSV snapshot a local backup
	if err := cr.caseDao.SaveCaseRecords(dataset, records); err != nil {
		log.Printf("[CasesRefresherService] Failed to save case records: %v", err)
		return err
	}
	snapshotPath := filepath.Join(config.BaseDir(), config.CASES_CSV_SNAPSHOT)
	if err := util.WriteCaseRecordsToCSV(snapshotPath, records); err != nil {
		log.Printf("[CasesRefresherService] Failed to write CSV snapshot: %v", err)
	}

	// 3) Recompute the forecast from the fresh records
	result, err := cr.forecastService.ComputeForecast(dataset)
	if err != nil {
		log.Printf("[CasesRefresherService] Forecast recompute failed: %v", err)
		return err
	}
	log.Printf("[CasesRefresherService] Forecast recomputed, headline total=%.0f", result.HeadlineTotal)

	// 4) Re-render the chart
	chartPath := filepath.Join(config.BaseDir(), config.FORECAST_CHART_OUTPUT)
	if err := util.PlotForecast(result, chartPath); err != nil {
		log.Printf("[CasesRefresherService] Failed to render chart: %v", err)
	}

	return nil
}
