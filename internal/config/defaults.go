package config

import (
	"os"
	"strings"

	"github.com/footprint-tools/fm/internal/domain"
)

// Defaults holds the default value of every known key (in code, not persisted).
var Defaults = func() map[string]func() string {
	d := make(map[string]func() string, len(domain.ConfigKeys))
	for _, k := range domain.ConfigKeys {
		value := k.Default
		d[k.Name] = func() string { return value }
	}
	return d
}()

// envKey returns the environment variable that overrides key (FM_<KEY>).
func envKey(key string) string {
	return "FM_" + strings.ToUpper(key)
}

// Get returns the value for a config key.
// Resolution order: environment (FM_<KEY>), config file, default.
// Returns the value and whether it was found.
func Get(key string) (string, bool) {
	if v := os.Getenv(envKey(key)); v != "" {
		return v, true
	}

	if cfg, err := load(); err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (file and environment overrides merged
// with defaults). A broken config file is reported alongside the defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load()
	for key, value := range cfg {
		result[key] = value
	}

	for key := range Defaults {
		if v := os.Getenv(envKey(key)); v != "" {
			result[key] = v
		}
	}

	return result, err
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
