package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"mf-server/config"
	"mf-server/forecast"
	"mf-server/models"
	services "mf-server/service"
)

const (
	DATASET_QUERY_ARG = "dataset"
	VERBOSE_QUERY_ARG = "verbose"
)

// MinifiedWeek is one combined week in the small response form.
type MinifiedWeek struct {
	WeekStart  string            `json:"week_start"`
	Value      float64           `json:"value"`
	Provenance models.Provenance `json:"provenance"`
	Cumulative *float64          `json:"cumulative,omitempty"`
}

// MinifiedForecast is the small form returned when verbose=false: the
// headline total plus the combined series without uncertainty bounds.
type MinifiedForecast struct {
	Dataset       string         `json:"dataset"`
	HeadlineTotal float64        `json:"headline_total"`
	Weeks         []MinifiedWeek `json:"weeks"`
}

type ForecastHandler struct {
	forecastService *services.ForecastService
}

func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// GetForecast handles GET /v1/forecast
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	dataset, verbose := h.parseArgs(r.URL.Query())

	// 2) Load (or compute) the forecast
	result, err := h.forecastService.GetForecast(dataset)
	if err != nil {
		h.writeForecastError(w, dataset, err)
		return
	}

	// 3) Transform according to verbose flag
	response := h.transform(dataset, result, verbose)

	// 4) Write JSON
	writeJSON(w, http.StatusOK, response)
}

// SaveCaseRecords handles POST /v1/observations: the full current record set
// from the editable grid, persisted and immediately re-forecast.
func (h *ForecastHandler) SaveCaseRecords(w http.ResponseWriter, r *http.Request) {
	dataset, verbose := h.parseArgs(r.URL.Query())

	var records []models.CaseRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		http.Error(w, "Invalid request body: expected a JSON array of case records", http.StatusBadRequest)
		return
	}

	result, err := h.forecastService.SaveCaseRecords(dataset, records)
	if err != nil {
		h.writeForecastError(w, dataset, err)
		return
	}

	writeJSON(w, http.StatusOK, h.transform(dataset, result, verbose))
}

func (h *ForecastHandler) parseArgs(vals url.Values) (dataset string, verbose bool) {
	dataset = vals.Get(DATASET_QUERY_ARG)
	if dataset == "" {
		dataset = config.DEFAULT_DATASET
	}
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	return dataset, verbose
}

func (h *ForecastHandler) transform(dataset string, result *forecast.Result, verbose bool) interface{} {
	if verbose {
		return result
	}
	// minify
	weeks := make([]MinifiedWeek, 0, len(result.Combined))
	for _, p := range result.Combined {
		weeks = append(weeks, MinifiedWeek{
			WeekStart:  p.WeekStart.Format("2006-01-02"),
			Value:      p.Value,
			Provenance: p.Provenance,
			Cumulative: p.Cumulative,
		})
	}
	return MinifiedForecast{
		Dataset:       dataset,
		HeadlineTotal: result.HeadlineTotal,
		Weeks:         weeks,
	}
}

// writeForecastError maps pipeline errors onto HTTP statuses: bad inputs are
// the client's problem, anything else is ours.
func (h *ForecastHandler) writeForecastError(w http.ResponseWriter, dataset string, err error) {
	log.Printf("[ForecastHandler] Forecast for %s failed: %v", dataset, err)
	switch {
	case errors.Is(err, forecast.ErrInsufficientData):
		http.Error(w, "Not enough weekly data to forecast: "+err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, forecast.ErrInvalidConfig):
		http.Error(w, "Forecast misconfigured: "+err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Ping handles GET /ping
func (h *ForecastHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
