package bikeshare

// Config points the Manager at the raw data exports.
type Config struct {
	TripsPath    string
	StationsPath string
}
