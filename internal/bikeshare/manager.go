// Package bikeshare loads station and trip exports and owns them for the
// life of the process.
package bikeshare

import (
	"fmt"
	"log/slog"
	"time"

	"bikeflow.bikeshare.org/internal/logging"
	"bikeflow.bikeshare.org/internal/traffic"
)

// Manager holds the loaded bike-share data and provides methods to query
// it. Everything is loaded once at startup; the trip index is immutable
// afterwards and shared read-only across requests.
type Manager struct {
	config     Config
	stations   []traffic.Station
	index      *traffic.TripIndex
	lastLoaded time.Time
}

// InitManager loads the station roster and trip log from the configured
// paths and builds the minute-of-day trip index.
func InitManager(config Config) (*Manager, error) {
	stations, err := loadStations(config.StationsPath)
	if err != nil {
		return nil, fmt.Errorf("loading stations: %w", err)
	}

	trips, err := loadTrips(config.TripsPath)
	if err != nil {
		return nil, fmt.Errorf("loading trips: %w", err)
	}

	return &Manager{
		config:     config,
		stations:   stations,
		index:      traffic.NewTripIndex(trips),
		lastLoaded: time.Now(),
	}, nil
}

func (manager *Manager) Stations() []traffic.Station {
	return manager.stations
}

// FindStation returns the roster entry with the given short name, or nil.
func (manager *Manager) FindStation(shortName string) *traffic.Station {
	for i := range manager.stations {
		if manager.stations[i].ShortName == shortName {
			return &manager.stations[i]
		}
	}
	return nil
}

// StationTraffic runs the per-station traffic query for the given filter.
func (manager *Manager) StationTraffic(f traffic.TimeFilter) []traffic.StationTraffic {
	return manager.index.StationTraffic(manager.stations, f)
}

func (manager *Manager) ValidTripCount() int {
	return manager.index.ValidTripCount()
}

func (manager *Manager) SkippedTripCount() int {
	return manager.index.SkippedTripCount()
}

// LastLoaded reports when the data files were read.
func (manager *Manager) LastLoaded() time.Time {
	return manager.lastLoaded
}

// LogStatistics records what the load produced, including how many trips
// were dropped for unparseable timestamps.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	logging.LogOperation(logger, "bikeshare_data_loaded",
		slog.Int("stations", len(manager.stations)),
		slog.Int("trips", manager.index.ValidTripCount()),
		slog.Int("skipped_trips", manager.index.SkippedTripCount()),
		slog.String("trips_path", manager.config.TripsPath),
		slog.String("stations_path", manager.config.StationsPath),
		slog.String("component", "bikeshare_manager"))
}
