package traffic

import "fmt"

// HalfWindowMinutes is the half-width of a filtered query window: a window
// covers the minutes within an hour on either side of its center.
const HalfWindowMinutes = 60

// TimeFilter selects either the whole day or a circular window around a
// single minute-of-day. The zero value is the all-day filter.
type TimeFilter struct {
	minute   int
	windowed bool
}

// AllDay returns a filter covering all 1440 minute buckets.
func AllDay() TimeFilter {
	return TimeFilter{}
}

// AtMinute returns a filter centered on the given minute-of-day. Minutes
// outside [0, 1439] are rejected rather than clamped or wrapped, since a
// silently wrong window is worse than a loud one.
func AtMinute(minute int) (TimeFilter, error) {
	if minute < 0 || minute >= MinutesPerDay {
		return TimeFilter{}, fmt.Errorf("minute %d out of range [0, %d]", minute, MinutesPerDay-1)
	}
	return TimeFilter{minute: minute, windowed: true}, nil
}

// IsAllDay reports whether the filter covers the entire day.
func (f TimeFilter) IsAllDay() bool {
	return !f.windowed
}

// Minute returns the filter's center minute, or -1 for an all-day filter.
func (f TimeFilter) Minute() int {
	if !f.windowed {
		return -1
	}
	return f.minute
}

// DeparturesInWindow flattens the departure buckets selected by the filter.
func (idx *TripIndex) DeparturesInWindow(f TimeFilter) []Trip {
	return tripsInWindow(&idx.departures, f)
}

// ArrivalsInWindow flattens the arrival buckets selected by the filter.
func (idx *TripIndex) ArrivalsInWindow(f TimeFilter) []Trip {
	return tripsInWindow(&idx.arrivals, f)
}

// tripsInWindow concatenates the buckets inside the half-open interval
// [minMinute, maxMinute) over circular minute space. When minMinute is
// greater than maxMinute the window straddles midnight and is taken in two
// runs: [minMinute, 1440) followed by [0, maxMinute).
func tripsInWindow(buckets *[MinutesPerDay][]Trip, f TimeFilter) []Trip {
	var trips []Trip

	if f.IsAllDay() {
		for _, bucket := range buckets {
			trips = append(trips, bucket...)
		}
		return trips
	}

	minMinute := (f.minute - HalfWindowMinutes + 1 + MinutesPerDay) % MinutesPerDay
	maxMinute := (f.minute + HalfWindowMinutes) % MinutesPerDay

	if minMinute <= maxMinute {
		for _, bucket := range buckets[minMinute:maxMinute] {
			trips = append(trips, bucket...)
		}
		return trips
	}

	for _, bucket := range buckets[minMinute:] {
		trips = append(trips, bucket...)
	}
	for _, bucket := range buckets[:maxMinute] {
		trips = append(trips, bucket...)
	}
	return trips
}
