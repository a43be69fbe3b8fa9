package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ForecastHandler is the handler surface the router wires up.
type ForecastHandler interface {
	GetForecast(w http.ResponseWriter, r *http.Request)
	SaveCaseRecords(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	forecastHandler ForecastHandler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	forecastHandler ForecastHandler,
	router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?dataset={name}&verbose={bool}
	r.router.HandleFunc("/v1/forecast", r.forecastHandler.GetForecast).Methods("GET")

	// expects a JSON array of case records in the body
	r.router.HandleFunc("/v1/observations", r.forecastHandler.SaveCaseRecords).Methods("POST")

	r.router.HandleFunc("/ping", r.forecastHandler.Ping).Methods("GET")
}
