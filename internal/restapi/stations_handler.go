package restapi

import (
	"net/http"

	"bikeflow.bikeshare.org/internal/models"
	"bikeflow.bikeshare.org/internal/traffic"
)

// stationsHandler returns the full roster with all-day traffic counts,
// which is what the dashboard renders before the slider is touched.
func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	f := traffic.AllDay()
	results := api.Manager.StationTraffic(f)

	response := models.NewOKResponse(models.NewStationTrafficData(f, results))
	api.sendResponse(w, r, response)
}
