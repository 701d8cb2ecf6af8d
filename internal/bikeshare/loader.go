package bikeshare

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"bikeflow.bikeshare.org/internal/traffic"
)

// tripRecord mirrors one row of a system-data trips export.
type tripRecord struct {
	RideID         string `csv:"ride_id"`
	StartedAt      string `csv:"started_at"`
	EndedAt        string `csv:"ended_at"`
	StartStationID string `csv:"start_station_id"`
	EndStationID   string `csv:"end_station_id"`
}

// stationRecord mirrors one row of the station roster export.
type stationRecord struct {
	ShortName string  `csv:"short_name"`
	Name      string  `csv:"name"`
	Lat       float64 `csv:"lat"`
	Lon       float64 `csv:"lon"`
	Capacity  int     `csv:"capacity"`
}

// loadTrips reads a trips CSV export. Timestamps stay in raw string form;
// per-record validation happens when the trip index is built.
func loadTrips(path string) ([]traffic.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trips file: %w", err)
	}

	var records []*tripRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("parsing trips file %s: %w", path, err)
	}

	trips := make([]traffic.Trip, 0, len(records))
	for _, record := range records {
		trips = append(trips, traffic.Trip{
			ID:             record.RideID,
			StartStationID: record.StartStationID,
			EndStationID:   record.EndStationID,
			StartedAt:      record.StartedAt,
			EndedAt:        record.EndedAt,
		})
	}
	return trips, nil
}

// loadStations reads the station roster CSV.
func loadStations(path string) ([]traffic.Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stations file: %w", err)
	}

	var records []*stationRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("parsing stations file %s: %w", path, err)
	}

	stations := make([]traffic.Station, 0, len(records))
	for _, record := range records {
		stations = append(stations, traffic.Station{
			ShortName: record.ShortName,
			Name:      record.Name,
			Lat:       record.Lat,
			Lon:       record.Lon,
			Capacity:  record.Capacity,
		})
	}
	return stations, nil
}
