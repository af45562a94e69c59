package cliopt

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/nonibytes/searchbox/searchbox"
)

// GlobalOptions are parsed once at the CLI root and passed to subcommands.
// Values come from the defaults, then the config file, then flags.
//
// NOTE: This is a separate package to avoid import cycles between the root
// command and per-command code.
type GlobalOptions struct {
	ConfigPath string

	Backend        string
	SQLitePath     string
	SQLiteDriver   string
	PostgresDSN    string
	PostgresSchema string

	Space        string
	UserCacheTTL time.Duration

	LogLevel  string
	LogFormat string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ConfigPath:     "searchbox.toml",
		Backend:        "sqlite",
		SQLitePath:     ".",
		SQLiteDriver:   "sqlite",
		PostgresSchema: "searchbox",
		Space:          searchbox.DefaultSpace,
		UserCacheTTL:   searchbox.DefaultUserCacheTTL,
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

func BindGlobalFlags(fs *pflag.FlagSet, g *GlobalOptions) {
	fs.StringVar(&g.ConfigPath, "config", g.ConfigPath, "TOML config file (ignored when missing)")

	fs.StringVar(&g.Backend, "backend", g.Backend, "backend: sqlite|postgres")
	fs.StringVar(&g.SQLitePath, "sqlite-path", g.SQLitePath, "sqlite directory or explicit .db file path")
	fs.StringVar(&g.SQLiteDriver, "sqlite-driver", g.SQLiteDriver, "sqlite driver: sqlite (pure Go) or sqlite3 (cgo)")
	fs.StringVar(&g.PostgresDSN, "pg-dsn", g.PostgresDSN, "postgres DSN")
	fs.StringVar(&g.PostgresSchema, "pg-schema", g.PostgresSchema, "postgres schema holding the searchbox tables")

	fs.StringVar(&g.Space, "space", g.Space, "space the users and content types belong to")
	fs.DurationVar(&g.UserCacheTTL, "user-cache-ttl", g.UserCacheTTL, "how long user lists are reused")

	fs.StringVar(&g.LogLevel, "log-level", g.LogLevel, "log level: debug|info|warn|error")
	fs.StringVar(&g.LogFormat, "log-format", g.LogFormat, "log format: text|json")
}

// flagFor maps config keys to the flag that overrides them.
var flagFor = map[string]string{
	"backend":         "backend",
	"sqlite_path":     "sqlite-path",
	"sqlite_driver":   "sqlite-driver",
	"postgres_dsn":    "pg-dsn",
	"postgres_schema": "pg-schema",
	"space":           "space",
	"user_cache_ttl":  "user-cache-ttl",
	"log_level":       "log-level",
	"log_format":      "log-format",
}

// ApplyConfig copies the values set in cfg into g, except those whose flag
// was given on the command line.
func (g *GlobalOptions) ApplyConfig(cfg *Config, fs *pflag.FlagSet) {
	set := func(key string, apply func()) {
		if fs != nil && fs.Changed(flagFor[key]) {
			return
		}
		apply()
	}
	if cfg.Backend != "" {
		set("backend", func() { g.Backend = cfg.Backend })
	}
	if cfg.SQLitePath != "" {
		set("sqlite_path", func() { g.SQLitePath = cfg.SQLitePath })
	}
	if cfg.SQLiteDriver != "" {
		set("sqlite_driver", func() { g.SQLiteDriver = cfg.SQLiteDriver })
	}
	if cfg.PostgresDSN != "" {
		set("postgres_dsn", func() { g.PostgresDSN = cfg.PostgresDSN })
	}
	if cfg.PostgresSchema != "" {
		set("postgres_schema", func() { g.PostgresSchema = cfg.PostgresSchema })
	}
	if cfg.Space != "" {
		set("space", func() { g.Space = cfg.Space })
	}
	if cfg.UserCacheTTL.Duration > 0 {
		set("user_cache_ttl", func() { g.UserCacheTTL = cfg.UserCacheTTL.Duration })
	}
	if cfg.LogLevel != "" {
		set("log_level", func() { g.LogLevel = cfg.LogLevel })
	}
	if cfg.LogFormat != "" {
		set("log_format", func() { g.LogFormat = cfg.LogFormat })
	}
}
