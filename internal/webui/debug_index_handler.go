// Package webui serves a plain debug view of the loaded data.
package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"bikeflow.bikeshare.org/internal/bikeshare"
	"bikeflow.bikeshare.org/internal/traffic"
)

//go:embed debug_index.html
var templateFS embed.FS

type WebUI struct {
	Manager *bikeshare.Manager
}

func NewWebUI(manager *bikeshare.Manager) *WebUI {
	return &WebUI{Manager: manager}
}

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "stations":
		data = webUI.Manager.Stations()
		title = "Bikeshare - Stations"
	case "traffic":
		data = webUI.Manager.StationTraffic(traffic.AllDay())
		title = "Bikeshare - All-Day Station Traffic"
	case "statistics":
		data = map[string]int{
			"stations":      len(webUI.Manager.Stations()),
			"trips":         webUI.Manager.ValidTripCount(),
			"skipped_trips": webUI.Manager.SkippedTripCount(),
		}
		title = "Bikeshare - Load Statistics"
	default:
		data = map[string]string{
			"error": "Please use one of the following: stations, traffic, statistics.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
