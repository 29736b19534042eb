package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/provenlabs/origintrace/pkg/pipeline"
	"github.com/provenlabs/origintrace/pkg/routing"
)

// Config holds persistent CLI preferences loaded from a TOML file.
// Command-line flags override config values; config values override defaults.
type Config struct {
	Clearance         float64     `toml:"clearance"`
	OffsetStep        float64     `toml:"offset_step"`
	ParallelThreshold float64     `toml:"parallel_threshold"`
	Style             string      `toml:"style"`
	ShowNodes         bool        `toml:"show_nodes"`
	Redis             RedisConfig `toml:"redis"`
}

// RedisConfig selects a shared Redis cache backend.
// When Addr is empty the CLI uses a local file cache.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DefaultCLIConfig returns the built-in defaults.
func DefaultCLIConfig() Config {
	return Config{
		Clearance:         routing.DefaultClearance,
		OffsetStep:        routing.DefaultOffsetStep,
		ParallelThreshold: routing.DefaultParallelThreshold,
		Style:             pipeline.DefaultStyle,
	}
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing default config file is not an error; a missing
// explicit path is.
func LoadConfig(path string) (Config, error) {
	cfg, err := loadConfigFile(path)
	applyEnv(&cfg)
	if err != nil {
		return cfg, err
	}
	if cfg.Style != "" {
		if err := pipeline.ValidateStyle(cfg.Style); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	return cfg, nil
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultCLIConfig()

	explicit := path != ""
	if !explicit {
		def, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = def
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overlays environment variables on the loaded config.
// ORIGINTRACE_REDIS_ADDR selects the Redis cache backend without a config file.
func applyEnv(cfg *Config) {
	if addr := os.Getenv("ORIGINTRACE_REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
}

// defaultConfigPath returns the config location using XDG standard
// (~/.config/origintrace/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
