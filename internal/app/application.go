package app

import (
	"log/slog"

	"bikeflow.bikeshare.org/internal/appconf"
	"bikeflow.bikeshare.org/internal/bikeshare"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config          appconf.Config
	BikeshareConfig bikeshare.Config
	Logger          *slog.Logger
	Manager         *bikeshare.Manager
}
