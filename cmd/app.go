package cmd

import (
	"context"
	"fmt"

	"github.com/TRX-1000/Weatherly-v2/internal/config"
	"github.com/TRX-1000/Weatherly-v2/internal/location"
	"github.com/TRX-1000/Weatherly-v2/internal/news"
	"github.com/TRX-1000/Weatherly-v2/internal/weather"
)

// app bundles the loaded config with resolved display units for a single
// command invocation.
type app struct {
	cfg   *config.Config
	units weather.Units
}

func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	units := weather.Units(cfg.Units)
	if flagUnits != "" {
		units = weather.Units(flagUnits)
	}
	if !units.Valid() {
		return nil, fmt.Errorf("invalid units %q (valid: metric, imperial)", units)
	}

	return &app{cfg: cfg, units: units}, nil
}

func (a *app) weatherClient() (*weather.Client, error) {
	key := a.cfg.APIKey()
	if key == "" {
		return nil, fmt.Errorf("no OpenWeatherMap API key: set weather.api_key in %s or the OPENWEATHER_API_KEY env var",
			config.DefaultConfigPath())
	}
	return weather.NewClient(key), nil
}

func (a *app) newsPipeline() *news.Pipeline {
	return news.NewPipeline(news.NewGoogleNewsFetcher(a.cfg.Locale()))
}

// resolveCity picks the city to show: argument, then configured default,
// then IP detection.
func (a *app) resolveCity(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if a.cfg.DefaultCity != "" {
		return a.cfg.DefaultCity, nil
	}
	city, err := location.NewDetector().Detect(ctx)
	if err != nil {
		return "", fmt.Errorf("no city given and detection failed: %w", err)
	}
	return city, nil
}
