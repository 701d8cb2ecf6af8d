// Package traffic implements the time-bucketed aggregation engine behind
// the station traffic API: a minute-of-day trip index, circular window
// resolution, and per-station departure/arrival counting.
package traffic

import (
	"fmt"
	"time"
)

// Trip is a single bike-share ride. Timestamps are carried in their raw
// export form; the index derives minute-of-day values from them at build
// time and skips trips it cannot parse.
type Trip struct {
	ID             string
	StartStationID string
	EndStationID   string
	StartedAt      string
	EndedAt        string
}

// Station is one row of the station roster. ShortName is the join key
// against trip station identifiers; the remaining fields are passed through
// to the API layer untouched.
type Station struct {
	ShortName string
	Name      string
	Lat       float64
	Lon       float64
	Capacity  int
}

// timeLayouts are the timestamp formats seen in trip exports, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.9999",
	time.RFC3339,
}

// minuteOfDay derives the minute-of-day in [0, 1439] from a raw timestamp.
// Date and seconds are ignored.
func minuteOfDay(value string) (int, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unparseable timestamp %q", value)
}
