package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/where/station-traffic.json", validateAPIKey(api, api.stationTrafficHandler))
	router.Handler(http.MethodGet, "/api/where/stations.json", validateAPIKey(api, api.stationsHandler))
	router.Handler(http.MethodGet, "/api/where/station/:id", validateAPIKey(api, api.stationHandler))
}
