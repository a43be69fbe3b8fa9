package services

import (
	"fmt"
	"log"

	"mf-server/dao/redis"
	"mf-server/forecast"
	"mf-server/models"
)

// ForecastService runs the forecast pipeline over the stored case records and
// manages the cached results. The pipeline itself is pure; everything
// stateful (current records, cached results) lives behind the DAO.
type ForecastService struct {
	caseDao *redis.RedisCaseDAO
	cfg     forecast.Config
}

// NewForecastService constructs a new ForecastService with Redis dependency injection.
func NewForecastService(caseDao *redis.RedisCaseDAO, cfg forecast.Config) *ForecastService {
	return &ForecastService{
		caseDao: caseDao,
		cfg:     cfg,
	}
}

// Config returns the pipeline configuration the service runs with.
func (fs *ForecastService) Config() forecast.Config {
	return fs.cfg
}

// GetForecast returns the cached forecast for a dataset, computing it first
// when no cached result exists.
func (fs *ForecastService) GetForecast(dataset string) (*forecast.Result, error) {
	result, err := fs.caseDao.GetForecastResult(dataset)
	if err == nil {
		return result, nil
	}
	log.Printf("[ForecastService] No cached forecast for %s, computing", dataset)
	return fs.ComputeForecast(dataset)
}

// ComputeForecast loads the current case records for a dataset, runs the full
// pipeline, and caches the result.
func (fs *ForecastService) ComputeForecast(dataset string) (*forecast.Result, error) {
	records, err := fs.caseDao.GetCaseRecords(dataset)
	if err != nil {
		return nil, fmt.Errorf("no case records for dataset %s: %w", dataset, err)
	}

	result, err := forecast.Run(records, fs.cfg)
	if err != nil {
		return nil, fmt.Errorf("forecast pipeline failed for dataset %s: %w", dataset, err)
	}

	if err := fs.caseDao.SetForecastResult(dataset, result); err != nil {
		// The result is still usable; only the cache write failed.
		log.Printf("[ForecastService] Failed to cache forecast for %s: %v", dataset, err)
	}
	return result, nil
}

// SaveCaseRecords persists an edited set of case records for a dataset and
// recomputes the forecast from it. This is the save path behind the editable
// data grid: the caller hands over the full current record set every time.
func (fs *ForecastService) SaveCaseRecords(dataset string, records []models.CaseRecord) (*forecast.Result, error) {
	if err := fs.caseDao.SaveCaseRecords(dataset, records); err != nil {
		return nil, fmt.Errorf("failed to save case records for dataset %s: %w", dataset, err)
	}
	log.Printf("[ForecastService] Saved %d case records for %s", len(records), dataset)
	return fs.ComputeForecast(dataset)
}
