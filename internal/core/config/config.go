// Package config provides the vroom configuration loader.
// Config is loaded by merging vroom.yaml → ~/.vroom/config.yaml → VROOM_* env vars.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/vroom-sh/vroom/pkg/errs"
	"github.com/vroom-sh/vroom/pkg/vehicle"
)

// Defaults contains factory-default values applied before any config file is loaded.
var Defaults = map[string]any{
	"log.level":  "info",
	"log.format": "text",
	"ui.theme":   "garage-dark",
}

// ─────────────────────────────────────────────────────────────────────────────
// Config types
// ─────────────────────────────────────────────────────────────────────────────

// Config is the fully-decoded project configuration.
type Config struct {
	Version string         `mapstructure:"version"`
	Fleet   []vehicle.Spec `mapstructure:"fleet"`
	UI      UIConfig       `mapstructure:"ui"`
	Log     LogConfig      `mapstructure:"log"`
}

// UIConfig controls the interactive showroom.
type UIConfig struct {
	Theme string `mapstructure:"theme"` // garage-dark only, for now
}

// LogConfig controls logging behaviour.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // json | text
}

// ─────────────────────────────────────────────────────────────────────────────
// Loader
// ─────────────────────────────────────────────────────────────────────────────

// Load discovers and loads the configuration, walking up directories to find
// vroom.yaml, then merging it with the global config and environment variables.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()

	for k, val := range Defaults {
		v.SetDefault(k, val)
	}

	// Environment variable binding: VROOM_LOG_LEVEL → log.level
	v.SetEnvPrefix("VROOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load global config (~/.vroom/config.yaml) if it exists
	globalCfg := filepath.Join(vroomHome(), "config.yaml")
	if _, err := os.Stat(globalCfg); err == nil {
		v.SetConfigFile(globalCfg)
		if err := v.ReadInConfig(); err != nil {
			return nil, errs.Wrap(err, errs.ErrConfig, "config.load.global")
		}
	}

	// Load project config
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		path, err := discoverProjectConfig()
		if err == nil {
			v.SetConfigFile(path)
		}
	}

	if v.ConfigFileUsed() != "" || explicitPath != "" {
		if err := v.MergeInConfig(); err != nil && explicitPath != "" {
			return nil, errs.Wrap(err, errs.ErrConfig, "config.load.project").
				WithResource(explicitPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.Wrap(err, errs.ErrConfig, "config.unmarshal")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FleetSpecs returns the configured fleet, or the built-in showroom trio when
// no fleet is defined.
func (c *Config) FleetSpecs() []vehicle.Spec {
	if len(c.Fleet) > 0 {
		return c.Fleet
	}
	return DefaultFleet()
}

// DefaultFleet is the fleet used when vroom.yaml defines none.
func DefaultFleet() []vehicle.Spec {
	return []vehicle.Spec{
		{Kind: "car", Brand: "Ford", Model: "Mustang"},
		{Kind: "bike", Brand: "Yamaha"},
		{Kind: "truck", Brand: "Volvo"},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

// discoverProjectConfig walks up from the CWD looking for vroom.yaml.
func discoverProjectConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "vroom.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("vroom.yaml not found")
}

// validate performs semantic validation on the loaded config.
func validate(cfg *Config) error {
	for i, spec := range cfg.Fleet {
		if _, err := vehicle.ParseKind(spec.Kind); err != nil {
			return errs.Wrap(err, errs.ErrValidation, "config.validate").
				WithResource(fmt.Sprintf("fleet[%d]", i))
		}
	}
	return nil
}

// vroomHome returns the vroom home directory (~/.vroom).
func vroomHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vroom"
	}
	return filepath.Join(home, ".vroom")
}

// VroomHome is the exported variant for use by other packages.
func VroomHome() string {
	return vroomHome()
}

// DefaultConfigTemplate is the content written by `vroom init`.
const DefaultConfigTemplate = `# vroom.yaml — Fleet manifest
version: "1"

fleet:
  - kind: car
    brand: Ford
    model: Mustang
  - kind: bike
    brand: Yamaha
  - kind: truck
    brand: Volvo

log:
  level: info
  format: text

ui:
  theme: garage-dark
`
