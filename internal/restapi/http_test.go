package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"bikeflow.bikeshare.org/internal/app"
	"bikeflow.bikeshare.org/internal/appconf"
	"bikeflow.bikeshare.org/internal/bikeshare"
	"bikeflow.bikeshare.org/internal/logging"
	"bikeflow.bikeshare.org/internal/models"
)

// createTestApi creates a new RestAPI instance with a bikeshare manager
// initialized from the testdata fixtures.
func createTestApi(t *testing.T) *RestAPI {
	bikeshareConfig := bikeshare.Config{
		TripsPath:    filepath.Join("..", "..", "testdata", "trips.csv"),
		StationsPath: filepath.Join("..", "..", "testdata", "stations.csv"),
	}
	manager, err := bikeshare.InitManager(bikeshareConfig)
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		BikeshareConfig: bikeshareConfig,
		Logger:          logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Manager:         manager,
	}

	return &RestAPI{Application: application}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndGetRaw(t, api, endpoint)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response))

	return resp, response
}

// serveApiAndGetRaw returns the raw body, which validation-error tests need
// since those responses do not use the standard envelope.
func serveApiAndGetRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// trafficList pulls the station list out of a decoded traffic response.
func trafficList(t *testing.T, model models.ResponseModel) []map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	rawList, ok := data["list"].([]interface{})
	require.True(t, ok)

	list := make([]map[string]interface{}, 0, len(rawList))
	for _, item := range rawList {
		entry, ok := item.(map[string]interface{})
		require.True(t, ok)
		list = append(list, entry)
	}
	return list
}
