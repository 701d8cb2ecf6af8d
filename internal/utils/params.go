package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"bikeflow.bikeshare.org/internal/traffic"
)

// ParseMinuteFilter parses the optional "minute" query parameter into a
// time filter. An absent parameter or the legacy value "-1" means no
// filter; anything else must be an integer minute-of-day in [0, 1439].
// Invalid values are recorded in fieldErrors and the all-day filter is
// returned as a placeholder.
func ParseMinuteFilter(params url.Values, fieldErrors map[string][]string) (traffic.TimeFilter, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get("minute")
	if val == "" || val == "-1" {
		return traffic.AllDay(), fieldErrors
	}

	minute, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors["minute"] = append(fieldErrors["minute"], fmt.Sprintf("Invalid field value for field %q.", "minute"))
		return traffic.AllDay(), fieldErrors
	}

	f, err := traffic.AtMinute(minute)
	if err != nil {
		fieldErrors["minute"] = append(fieldErrors["minute"], err.Error())
		return traffic.AllDay(), fieldErrors
	}

	return f, fieldErrors
}
