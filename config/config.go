// Package config loads the xdna daemon configuration.
//
// Loading overlays the file at DefaultConfigPath (or an explicit path)
// onto the built-in default.toml. The TOML decoder only sets keys that
// are present, so a partial file keeps the remaining defaults. A
// missing file is not an error; an unparsable one is.
package config

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigTOML string

// DefaultConfigPath is where the daemon looks for its config file.
const DefaultConfigPath = "/etc/xdna/xdna.toml"

type Config struct {
	Device  DeviceConfig  `toml:"device"`
	Jobs    JobsConfig    `toml:"jobs"`
	Backend BackendConfig `toml:"backend"`
	Logging LoggingConfig `toml:"logging"`
	Server  ServerConfig  `toml:"server"`
}

// DeviceConfig describes the device the resource table models.
type DeviceConfig struct {
	Columns        uint32 `toml:"columns"`
	TilesPerColumn uint32 `toml:"tiles_per_column"`
	MemoryBytes    uint64 `toml:"memory_bytes"`
}

type JobsConfig struct {
	RetainCompleted    int      `toml:"retain_completed"`
	DefaultWaitTimeout Duration `toml:"default_wait_timeout"`
}

// BackendConfig tunes the simulated backend.
type BackendConfig struct {
	Latency   Duration `toml:"latency"`
	HangAfter Duration `toml:"hang_after"`
}

type LoggingConfig struct {
	// Level is a log spec such as "warn,manager=debug".
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// Components is merged into Level as per-component overrides.
	Components map[string]string `toml:"components"`
}

type ServerConfig struct {
	// MetricsAddress is the listen address of the Prometheus endpoint.
	// Empty disables it.
	MetricsAddress string `toml:"metrics_address"`
}

// Duration is a time.Duration that decodes from a TOML string like
// "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ToSpec renders the logging section as a log spec. Component
// overrides are appended to Level in name order.
func (c *LoggingConfig) ToSpec() string {
	if len(c.Components) == 0 {
		return c.Level
	}
	base := c.Level
	if base == "" {
		base = "warn"
	}
	parts := []string{base}
	for _, name := range slices.Sorted(maps.Keys(c.Components)) {
		parts = append(parts, name+"="+c.Components[name])
	}
	return strings.Join(parts, ",")
}

// DefaultConfig decodes the embedded defaults.
func DefaultConfig() Config {
	var cfg Config
	if _, err := toml.Decode(defaultConfigTOML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default.toml: %v", err))
	}
	return cfg
}

// Load overlays the file at path onto the defaults. An empty path
// means DefaultConfigPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case c.Device.Columns == 0 || c.Device.Columns > 64:
		return fmt.Errorf("device.columns must be in 1..64, got %d", c.Device.Columns)
	case c.Jobs.DefaultWaitTimeout.Duration < 0:
		return fmt.Errorf("jobs.default_wait_timeout must not be negative")
	case c.Backend.Latency.Duration < 0 || c.Backend.HangAfter.Duration < 0:
		return fmt.Errorf("backend durations must not be negative")
	}
	return nil
}
