package models

import "bikeflow.bikeshare.org/internal/traffic"

// StationTraffic is one station row of a traffic query response. The
// counts are what a rendering layer maps onto circle radius and color.
type StationTraffic struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Capacity     int     `json:"capacity"`
	Departures   int     `json:"departures"`
	Arrivals     int     `json:"arrivals"`
	TotalTraffic int     `json:"totalTraffic"`
}

// TrafficFilterModel echoes the window a query was answered for. Minute is
// -1 when the whole day was aggregated.
type TrafficFilterModel struct {
	Minute           int `json:"minute"`
	HalfWidthMinutes int `json:"halfWidthMinutes"`
}

// StationTrafficData is the data payload for traffic list responses.
type StationTrafficData struct {
	Filter TrafficFilterModel `json:"filter"`
	List   []StationTraffic   `json:"list"`
}

// StationTrafficEntryData is the data payload for single-station responses.
type StationTrafficEntryData struct {
	Filter TrafficFilterModel `json:"filter"`
	Entry  StationTraffic     `json:"entry"`
}

// NewStationTraffic maps a core result row onto the API shape.
func NewStationTraffic(result traffic.StationTraffic) StationTraffic {
	return StationTraffic{
		ID:           result.Station.ShortName,
		Name:         result.Station.Name,
		Lat:          result.Station.Lat,
		Lon:          result.Station.Lon,
		Capacity:     result.Station.Capacity,
		Departures:   result.Departures,
		Arrivals:     result.Arrivals,
		TotalTraffic: result.TotalTraffic,
	}
}

// NewTrafficFilterModel describes the filter that produced a response.
func NewTrafficFilterModel(f traffic.TimeFilter) TrafficFilterModel {
	return TrafficFilterModel{
		Minute:           f.Minute(),
		HalfWidthMinutes: traffic.HalfWindowMinutes,
	}
}

// NewStationTrafficData builds the list payload for a traffic query.
func NewStationTrafficData(f traffic.TimeFilter, results []traffic.StationTraffic) StationTrafficData {
	list := make([]StationTraffic, 0, len(results))
	for _, result := range results {
		list = append(list, NewStationTraffic(result))
	}

	return StationTrafficData{
		Filter: NewTrafficFilterModel(f),
		List:   list,
	}
}
