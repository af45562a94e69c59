package cliopt

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
)

// Config is the on-disk TOML configuration. Empty values leave the
// defaults in place.
type Config struct {
	Backend        string   `toml:"backend"`
	SQLitePath     string   `toml:"sqlite_path"`
	SQLiteDriver   string   `toml:"sqlite_driver"`
	PostgresDSN    string   `toml:"postgres_dsn"`
	PostgresSchema string   `toml:"postgres_schema"`
	Space          string   `toml:"space"`
	UserCacheTTL   Duration `toml:"user_cache_ttl"`
	LogLevel       string   `toml:"log_level"`
	LogFormat      string   `toml:"log_format"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// LoadConfig reads configPath. A missing file yields an empty config.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, sberrors.Wrap(sberrors.ErrConfig, "reading config file", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, sberrors.Wrap(sberrors.ErrConfig, fmt.Sprintf("parsing %s", configPath), err)
	}
	return &cfg, nil
}

// SaveConfig writes cfg to configPath.
func (c *Config) SaveConfig(configPath string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return sberrors.Wrap(sberrors.ErrConfig, "marshaling config", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return sberrors.Wrap(sberrors.ErrIO, "writing config file", err)
	}
	return nil
}
