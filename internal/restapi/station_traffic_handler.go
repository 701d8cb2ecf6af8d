package restapi

import (
	"net/http"

	"bikeflow.bikeshare.org/internal/models"
	"bikeflow.bikeshare.org/internal/utils"
)

// stationTrafficHandler answers the slider query: per-station departure
// and arrival counts within the window around the requested minute, or
// over the whole day when no minute is given.
func (api *RestAPI) stationTrafficHandler(w http.ResponseWriter, r *http.Request) {
	f, fieldErrors := utils.ParseMinuteFilter(r.URL.Query(), nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	results := api.Manager.StationTraffic(f)

	response := models.NewOKResponse(models.NewStationTrafficData(f, results))
	api.sendResponse(w, r, response)
}
