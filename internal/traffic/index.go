package traffic

// MinutesPerDay is the number of buckets in each direction of the index.
const MinutesPerDay = 24 * 60

// TripIndex partitions trips into minute-of-day buckets, once by start
// minute and once by end minute. Bucket lookup is a plain array index since
// the key domain is exactly [0, 1439]. The index is immutable after
// construction and safe for concurrent readers.
type TripIndex struct {
	departures [MinutesPerDay][]Trip
	arrivals   [MinutesPerDay][]Trip
	validTrips int
	skipped    int
}

// NewTripIndex buckets every trip whose timestamps parse. A trip whose
// start or end minute cannot be derived is excluded from both bucket sets;
// the skip is counted rather than surfaced as an error so one bad record
// cannot abort the build.
func NewTripIndex(trips []Trip) *TripIndex {
	idx := &TripIndex{}

	for _, trip := range trips {
		startMinute, err := minuteOfDay(trip.StartedAt)
		if err != nil {
			idx.skipped++
			continue
		}
		endMinute, err := minuteOfDay(trip.EndedAt)
		if err != nil {
			idx.skipped++
			continue
		}

		idx.departures[startMinute] = append(idx.departures[startMinute], trip)
		idx.arrivals[endMinute] = append(idx.arrivals[endMinute], trip)
		idx.validTrips++
	}

	return idx
}

// ValidTripCount returns the number of trips present in the index. Every
// valid trip appears in exactly one departure bucket and one arrival bucket.
func (idx *TripIndex) ValidTripCount() int {
	return idx.validTrips
}

// SkippedTripCount reports how many trips were dropped during the build
// because a timestamp could not be parsed.
func (idx *TripIndex) SkippedTripCount() int {
	return idx.skipped
}
