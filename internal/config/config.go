// Package config loads and validates the user's settings file.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/TRX-1000/Weatherly-v2/internal/news"
	"github.com/TRX-1000/Weatherly-v2/internal/weather"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type NewsConfig struct {
	HL   string `yaml:"hl"`
	GL   string `yaml:"gl"`
	CEID string `yaml:"ceid"`
}

type WeatherConfig struct {
	APIKey string `yaml:"api_key"`
}

type Config struct {
	Units       string        `yaml:"units"`
	NewsLimit   int           `yaml:"news_limit"`
	DefaultCity string        `yaml:"default_city,omitempty"`
	Cities      []string      `yaml:"cities"`
	News        NewsConfig    `yaml:"news"`
	Weather     WeatherConfig `yaml:"weather"`
}

// APIKey returns the resolved OpenWeatherMap key (config or env var).
func (c *Config) APIKey() string {
	if c.Weather.APIKey != "" {
		return c.Weather.APIKey
	}
	return os.Getenv("OPENWEATHER_API_KEY")
}

// Locale returns the Google News edition parameters, defaulting any blanks.
func (c *Config) Locale() news.Locale {
	loc := news.DefaultLocale
	if c.News.HL != "" {
		loc.HL = c.News.HL
	}
	if c.News.GL != "" {
		loc.GL = c.News.GL
	}
	if c.News.CEID != "" {
		loc.CEID = c.News.CEID
	}
	return loc
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "weatherly", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path, falling back to the default location. On
// first run the embedded defaults are written out and used.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to the config path on first run.
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults.
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// fillDefaults lets a sparse user config omit the boring fields.
func fillDefaults(cfg *Config) {
	if cfg.Units == "" {
		cfg.Units = string(weather.Metric)
	}
	if cfg.NewsLimit == 0 {
		cfg.NewsLimit = 10
	}
}

func validate(cfg *Config) error {
	if !weather.Units(cfg.Units).Valid() {
		return fmt.Errorf("units: %q is not valid (valid: metric, imperial)", cfg.Units)
	}
	if !news.ValidDisplayCap(cfg.NewsLimit) {
		return fmt.Errorf("news_limit: %d is not valid (valid: 5, 10, 15)", cfg.NewsLimit)
	}
	for i, city := range cfg.Cities {
		if strings.TrimSpace(city) == "" {
			return fmt.Errorf("cities[%d]: name is required", i)
		}
	}
	return nil
}
