// Package config binds process environment variables onto a settings
// struct using envconfig tags, the lightest ecosystem way to do it for a
// handful of fields.
package config

import (
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds every environment-tunable knob the service reads at
// startup. Defaults match spec.md §6.3 plus the ambient additions recorded
// in SPEC_FULL.md (cache capacity, log level/format).
type Settings struct {
	Host          string `envconfig:"HOST" default:"0.0.0.0"`
	Port          int    `envconfig:"PORT" default:"5000"`
	RoutesFile    string `envconfig:"ROUTES_FILE" default:"routes.txt"`
	MaxMetric     int    `envconfig:"MAX_METRIC" default:"32768"`
	CacheCapacity int    `envconfig:"CACHE_CAPACITY" default:"10000"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads Settings from the process environment, applying defaults for
// anything unset.
func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Addr returns the host:port pair suitable for net/http.Server.Addr.
func (s Settings) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}
