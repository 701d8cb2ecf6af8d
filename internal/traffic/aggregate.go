package traffic

// StationTraffic holds one station's departure and arrival counts for a
// query window. A fresh slice is produced per query; the roster itself is
// never written to, so results from an earlier query stay valid.
type StationTraffic struct {
	Station      Station
	Departures   int
	Arrivals     int
	TotalTraffic int
}

// Aggregate frequency-counts departures by start station and arrivals by
// end station, then joins the counts onto the roster in roster order.
// Stations matching no trips get explicit zero counts. Trips referencing
// identifiers absent from the roster contribute to no row and drop out of
// the visible totals.
func Aggregate(stations []Station, departureTrips, arrivalTrips []Trip) []StationTraffic {
	departureCounts := make(map[string]int, len(stations))
	for _, trip := range departureTrips {
		departureCounts[trip.StartStationID]++
	}

	arrivalCounts := make(map[string]int, len(stations))
	for _, trip := range arrivalTrips {
		arrivalCounts[trip.EndStationID]++
	}

	results := make([]StationTraffic, 0, len(stations))
	for _, station := range stations {
		departures := departureCounts[station.ShortName]
		arrivals := arrivalCounts[station.ShortName]

		results = append(results, StationTraffic{
			Station:      station,
			Departures:   departures,
			Arrivals:     arrivals,
			TotalTraffic: departures + arrivals,
		})
	}
	return results
}

// StationTraffic computes per-station counts for the trips inside the
// filter's window. This is the single entry point query layers call, once
// at startup with the all-day filter and then once per slider movement.
func (idx *TripIndex) StationTraffic(stations []Station, f TimeFilter) []StationTraffic {
	return Aggregate(stations, idx.DeparturesInWindow(f), idx.ArrivalsInWindow(f))
}
