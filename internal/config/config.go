// Package config resolves runtime settings for the stock tracker: the data
// directory holding the CSV tables, the listen address, and the directory of
// the browser UI. Values come from an optional TOML file, overridden by
// environment variables, overridden again by command-line flags in main.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appDirName     = "stocktracker"
	configFileName = "config.toml"

	envDataDir = "STOCK_TRACKER_DATA_DIR"
	envHost    = "STOCK_TRACKER_HOST"
	envPort    = "STOCK_TRACKER_PORT"
	envWebDir  = "STOCK_TRACKER_WEB_DIR"
)

// Config holds the resolved runtime settings.
type Config struct {
	DataDir string
	Host    string
	Port    int
	WebDir  string
}

// Default returns the built-in settings: localhost on port 8000 with data
// under the platform user-config directory.
func Default() Config {
	return Config{
		DataDir: defaultDataDir(),
		Host:    "127.0.0.1",
		Port:    8000,
	}
}

// Load resolves the configuration. When path is empty the default config
// file location is probed; a missing file is not an error, a malformed one
// is. Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved := path
	if resolved == "" {
		resolved = defaultConfigPath()
	}
	if resolved != "" {
		if _, err := os.Stat(resolved); err == nil {
			k := koanf.New(".")
			if err := k.Load(file.Provider(resolved), toml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config file %s: %w", resolved, err)
			}
			if v := k.String("data.dir"); v != "" {
				cfg.DataDir = v
			}
			if v := k.String("server.host"); v != "" {
				cfg.Host = v
			}
			if v := k.Int("server.port"); v > 0 {
				cfg.Port = v
			}
			if v := k.String("web.dir"); v != "" {
				cfg.WebDir = v
			}
		} else if path != "" {
			// An explicitly requested file must exist.
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogDir returns the log directory under the data directory.
func (c Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envDataDir)); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(envHost)); v != "" {
		cfg.Host = v
	}
	if v := strings.TrimSpace(os.Getenv(envPort)); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv(envWebDir)); v != "" {
		cfg.WebDir = v
	}
}

func defaultDataDir() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, appDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "."+appDirName)
	}
	return appDirName
}

func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, appDirName, configFileName)
}
