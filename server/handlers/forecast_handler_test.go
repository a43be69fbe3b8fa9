package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mf-server/dao/redis"
	"mf-server/db"
	"mf-server/forecast"
	"mf-server/models"
	services "mf-server/service"
)

func newTestHandler() (*ForecastHandler, *redis.RedisCaseDAO) {
	mockClient := db.NewMockRedisClient(context.Background())
	caseDao := redis.NewRedisCaseDAO(mockClient)
	service := services.NewForecastService(caseDao, forecast.DefaultConfig(2025))
	return NewForecastHandler(service), caseDao
}

func seedRecords(t *testing.T, caseDao *redis.RedisCaseDAO) {
	t.Helper()
	err := caseDao.SaveCaseRecords("measles", []models.CaseRecord{
		{WeekStart: "2025-01-05", Cases: "10"},
		{WeekStart: "2025-01-12", Cases: "3"},
		{WeekStart: "2025-01-19", Cases: "5"},
	})
	if err != nil {
		t.Fatalf("Failed to seed records: %v", err)
	}
}

func TestGetForecast_Minified(t *testing.T) {
	handler, caseDao := newTestHandler()
	seedRecords(t, caseDao)

	req := httptest.NewRequest("GET", "/v1/forecast?dataset=measles", nil)
	rr := httptest.NewRecorder()

	handler.GetForecast(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp MinifiedForecast
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Dataset != "measles" {
		t.Errorf("Expected dataset measles, got %s", resp.Dataset)
	}
	if len(resp.Weeks) == 0 {
		t.Error("Expected combined weeks in the response")
	}
	if resp.HeadlineTotal < 18 {
		t.Errorf("Headline total %f below the actual total", resp.HeadlineTotal)
	}
}

func TestGetForecast_Verbose(t *testing.T) {
	handler, caseDao := newTestHandler()
	seedRecords(t, caseDao)

	req := httptest.NewRequest("GET", "/v1/forecast?dataset=measles&verbose=true", nil)
	rr := httptest.NewRecorder()

	handler.GetForecast(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var resp forecast.Result
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Forecast) == 0 {
		t.Error("Expected forecast points with bounds in the verbose response")
	}
	for i, p := range resp.Forecast {
		if p.Lower > p.Predicted || p.Predicted > p.Upper {
			t.Errorf("Point %d: bounds out of order: %+v", i, p)
		}
	}
}

func TestGetForecast_InsufficientData(t *testing.T) {
	handler, caseDao := newTestHandler()
	if err := caseDao.SaveCaseRecords("measles", []models.CaseRecord{
		{WeekStart: "2025-01-05", Cases: "10"},
	}); err != nil {
		t.Fatalf("Failed to seed records: %v", err)
	}

	req := httptest.NewRequest("GET", "/v1/forecast?dataset=measles", nil)
	rr := httptest.NewRecorder()

	handler.GetForecast(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", rr.Code)
	}
}

func TestSaveCaseRecords(t *testing.T) {
	handler, caseDao := newTestHandler()

	body := `[
		{"week_start": "2025-01-05", "cases": "10"},
		{"week_start": "2025-01-12", "cases": "0"},
		{"week_start": "2025-01-19", "cases": "5"}
	]`
	req := httptest.NewRequest("POST", "/v1/observations?dataset=measles", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.SaveCaseRecords(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	stored, err := caseDao.GetCaseRecords("measles")
	if err != nil {
		t.Fatalf("Expected stored records, got error: %v", err)
	}
	if len(stored) != 3 {
		t.Errorf("Expected 3 stored records, got %d", len(stored))
	}
}

func TestSaveCaseRecords_BadBody(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest("POST", "/v1/observations", strings.NewReader(`{"not": "an array"}`))
	rr := httptest.NewRecorder()

	handler.SaveCaseRecords(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
