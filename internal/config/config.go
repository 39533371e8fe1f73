package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the stride.toml file. Every value has a default and an
// environment override so a bare binary still starts.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Time     TimeConfig     `toml:"time"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type TimeConfig struct {
	Zone string `toml:"zone"`
}

func Default() Config {
	return Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: filepath.Join("data", "stride.db")},
		Time:     TimeConfig{Zone: "UTC"},
	}
}

// Load reads the config file when present, then applies environment
// overrides (STRIDE_PORT, STRIDE_DB_PATH, STRIDE_TZ). A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverride(&cfg.Server.Port, "STRIDE_PORT")
	applyEnvOverride(&cfg.Database.Path, "STRIDE_DB_PATH")
	applyEnvOverride(&cfg.Time.Zone, "STRIDE_TZ")

	return cfg, nil
}

func applyEnvOverride(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
