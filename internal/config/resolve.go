package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
)

// OriginDefault and OriginFlag are the provenance markers for values not
// sourced from a config file.
const (
	OriginDefault = "default"
	OriginFlag    = "flag"
)

// Resolved is the outcome of config resolution: the effective config plus,
// for each key, where its value came from (OriginDefault, a file path, or
// OriginFlag).
type Resolved struct {
	Config Config
	Origin map[string]string
}

// Resolve builds the effective configuration.
//
// Layering, lowest precedence first: built-in defaults, then each existing
// file from SearchPaths(cwd, home), then overrides (explicit CLI flags).
// A later layer strictly replaces a key's whole value; lists are never merged.
//
// When explicitFile is non-empty it replaces the search path entirely
// (the --config flag). A missing search-path file is skipped silently, but a
// missing explicitFile is E_INVALID_CONFIG, as is any unparseable file.
func Resolve(cwd, home, explicitFile string, overrides map[string]any) (Resolved, error) {
	v := viper.New()
	origin := make(map[string]string, len(Keys()))
	for key, val := range defaults() {
		v.SetDefault(key, val)
		origin[key] = OriginDefault
	}

	files := SearchPaths(cwd, home)
	if explicitFile != "" {
		files = []string{explicitFile}
	}

	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			if explicitFile != "" {
				return Resolved{}, errors.WrapWithDetails(errors.EInvalidConfig,
					"config file not readable", err,
					map[string]string{"config": path})
			}
			continue
		}

		layer := viper.New()
		layer.SetConfigFile(path)
		layer.SetConfigType("yaml")
		if err := layer.ReadInConfig(); err != nil {
			return Resolved{}, errors.WrapWithDetails(errors.EInvalidConfig,
				fmt.Sprintf("cannot parse config file %s", path), err,
				map[string]string{"config": path})
		}

		settings := layer.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			return Resolved{}, errors.WrapWithDetails(errors.EInvalidConfig,
				fmt.Sprintf("cannot merge config file %s", path), err,
				map[string]string{"config": path})
		}
		for key := range settings {
			origin[key] = path
		}
	}

	// CLI flags take final precedence.
	for key, val := range overrides {
		v.Set(key, val)
		origin[key] = OriginFlag
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		// YAML scalars like `audio_quality: 0` should land in string fields.
		dc.WeaklyTypedInput = true
	}); err != nil {
		return Resolved{}, errors.Wrap(errors.EInvalidConfig, "invalid config values", err)
	}

	return Resolved{Config: cfg, Origin: origin}, nil
}
