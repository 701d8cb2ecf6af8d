package restapi

import (
	"net/http"

	"bikeflow.bikeshare.org/internal/models"
	"bikeflow.bikeshare.org/internal/utils"
)

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	queryParamID := utils.ExtractIDFromParams(r, "id")

	var fieldErrors map[string][]string
	if err := utils.ValidateID(queryParamID); err != nil {
		fieldErrors = map[string][]string{
			"id": {err.Error()},
		}
	}

	f, fieldErrors := utils.ParseMinuteFilter(r.URL.Query(), fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if api.Manager.FindStation(queryParamID) == nil {
		api.sendNotFound(w, r)
		return
	}

	for _, result := range api.Manager.StationTraffic(f) {
		if result.Station.ShortName != queryParamID {
			continue
		}

		response := models.NewOKResponse(models.StationTrafficEntryData{
			Filter: models.NewTrafficFilterModel(f),
			Entry:  models.NewStationTraffic(result),
		})
		api.sendResponse(w, r, response)
		return
	}

	api.sendNotFound(w, r)
}
