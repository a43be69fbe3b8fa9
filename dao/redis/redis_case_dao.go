package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"mf-server/db"
	"mf-server/forecast"
	"mf-server/models"
)

const CASE_RECORDS_KEY_FORMAT = "case_records_v1:%s"
const FORECAST_RESULT_KEY_FORMAT = "forecast_result_v1:%s"

// RedisCaseDAO handles weekly case data operations using Redis. It holds the
// current (possibly edited) case records per dataset and caches the latest
// computed forecast result.
type RedisCaseDAO struct {
	client db.RedisClient
}

// NewRedisCaseDAO initializes a RedisCaseDAO with the Redis client.
func NewRedisCaseDAO(client db.RedisClient) *RedisCaseDAO {
	return &RedisCaseDAO{client: client}
}

// SaveCaseRecords stores the full set of raw case records for a dataset,
// replacing whatever was there before.
func (dao *RedisCaseDAO) SaveCaseRecords(dataset string, records []models.CaseRecord) error {
	key := fmt.Sprintf(CASE_RECORDS_KEY_FORMAT, dataset)
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal case records for dataset %s: %w", dataset, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set case records in redis: %w", err)
	}
	return nil
}

// GetCaseRecords retrieves the stored case records for a dataset.
func (dao *RedisCaseDAO) GetCaseRecords(dataset string) ([]models.CaseRecord, error) {
	key := fmt.Sprintf(CASE_RECORDS_KEY_FORMAT, dataset)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get case records from redis: %w", err)
	}
	var records []models.CaseRecord
	if err := json.Unmarshal([]byte(str), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case records JSON: %w", err)
	}
	return records, nil
}

// SetForecastResult caches the latest computed forecast result for a dataset.
func (dao *RedisCaseDAO) SetForecastResult(dataset string, result *forecast.Result) error {
	key := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT, dataset)
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast result for dataset %s: %w", dataset, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set forecast result in redis: %w", err)
	}
	return nil
}

// GetForecastResult retrieves the cached forecast result for a dataset.
func (dao *RedisCaseDAO) GetForecastResult(dataset string) (*forecast.Result, error) {
	key := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT, dataset)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast result from redis: %w", err)
	}
	var result forecast.Result
	if err := json.Unmarshal([]byte(str), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast result JSON: %w", err)
	}
	return &result, nil
}

// DeleteForecastResult drops the cached forecast for a dataset, forcing the
// next read to recompute.
func (dao *RedisCaseDAO) DeleteForecastResult(dataset string) error {
	key := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT, dataset)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete forecast result key %s: %w", key, err)
	}
	log.Printf("[RedisCaseDAO] Deleted cached forecast for %s", dataset)
	return nil
}

// ListDatasets returns the dataset names that currently have case records.
func (dao *RedisCaseDAO) ListDatasets() ([]string, error) {
	pattern := fmt.Sprintf(CASE_RECORDS_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list case record keys: %w", err)
	}
	prefix := fmt.Sprintf(CASE_RECORDS_KEY_FORMAT, "")
	datasets := make([]string, 0, len(keys))
	for _, k := range keys {
		datasets = append(datasets, strings.TrimPrefix(k, prefix))
	}
	return datasets, nil
}
