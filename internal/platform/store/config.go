package store

import (
	"time"

	"personalab/internal/platform/config"
)

// Driver names the relational backend
type Driver string

// Supported drivers
const (
	DriverPG     Driver = "pg"
	DriverSQLite Driver = "sqlite"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	Driver  Driver
	LogSQL  bool

	PG     PGConfig
	SQLite SQLiteConfig
	CH     CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	URL         string
	MaxConns    int32
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// SQLiteConfig configures the embedded database
type SQLiteConfig struct {
	Path        string
	SlowQueryMs int
}

// CHConfig configures the optional export audit sink
type CHConfig struct {
	Enabled bool
	URL     string
}

// ConfigFrom reads the store keys from c. c is the application prefix view,
// pg settings live under the shared SERVICE_PGSQL_ prefix
func ConfigFrom(c config.Conf, appName string) Config {
	pgc := config.New().Prefix("SERVICE_PGSQL_")
	driver := Driver(c.MayEnum("STORE_DRIVER", string(DriverSQLite), string(DriverPG), string(DriverSQLite)))

	out := Config{
		AppName: appName,
		Driver:  driver,
		LogSQL:  c.MayBool("LOG_SQL", false),
		SQLite: SQLiteConfig{
			Path:        c.MayString("SQLITE_PATH", "personalab.db"),
			SlowQueryMs: c.MayInt("SLOW_MS", 200),
		},
		CH: CHConfig{URL: c.MayString("EXPORT_AUDIT_CH_URL", "")},
	}
	out.CH.Enabled = out.CH.URL != ""
	if driver == DriverPG {
		out.PG = PGConfig{
			URL:         pgc.MustString("URL"),
			MaxConns:    int32(pgc.MayInt("MAX_CONNS", 10)),
			SlowQueryMs: pgc.MayInt("SLOW_MS", 200),
		}
	}
	return out
}
