package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"bikeflow.bikeshare.org/internal/app"
	"bikeflow.bikeshare.org/internal/appconf"
	"bikeflow.bikeshare.org/internal/bikeshare"
	"bikeflow.bikeshare.org/internal/logging"
	"bikeflow.bikeshare.org/internal/restapi"
	"bikeflow.bikeshare.org/internal/webui"
)

func main() {
	var cfg appconf.Config
	var envFlag, apiKeysFlag, configPath string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key")
	flag.StringVar(&cfg.TripsPath, "trips", "data/trips.csv", "Path to the trips CSV export")
	flag.StringVar(&cfg.StationsPath, "stations", "data/stations.csv", "Path to the station roster CSV")
	flag.StringVar(&configPath, "config", "", "Optional TOML config file; replaces the other flags")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if configPath != "" {
		fileCfg, err := appconf.LoadConfigFile(configPath)
		if err != nil {
			logger.Error("failed to load config file", "error", err)
			os.Exit(1)
		}
		cfg = fileCfg
	} else if err := appconf.Validate(cfg); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	bikeshareConfig := bikeshare.Config{
		TripsPath:    cfg.TripsPath,
		StationsPath: cfg.StationsPath,
	}

	manager, err := bikeshare.InitManager(bikeshareConfig)
	if err != nil {
		logger.Error("failed to initialize bikeshare manager", "error", err)
		os.Exit(1)
	}

	manager.LogStatistics(logger)

	application := &app.Application{
		Config:          cfg,
		BikeshareConfig: bikeshareConfig,
		Logger:          logger,
		Manager:         manager,
	}

	api := restapi.NewRestAPI(application)

	mux := http.NewServeMux()
	mux.Handle("/", api.Handler())
	webui.NewWebUI(manager).SetWebUIRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", string(cfg.Env))
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
