package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment (.env honored when
// present). Admin credentials live here rather than in code; the login check
// itself stays single-step equality.
type Config struct {
	DataDir string
	Backend string // memory|badger|pebble

	AdminUsername string
	AdminPassword string

	PhonePrefix string

	ChangelogOn  bool
	ChangelogDir string
	SnapshotDir  string

	MetricsAddr string

	// PriceAtCreation prices orders on submission instead of on first admin
	// edit. Off by default to match the historical behavior.
	PriceAtCreation bool
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		DataDir:         get("PHOENIX_DATA_DIR", "./data"),
		Backend:         get("PHOENIX_BACKEND", "pebble"),
		AdminUsername:   get("PHOENIX_ADMIN_USERNAME", "vistark"),
		AdminPassword:   get("PHOENIX_ADMIN_PASSWORD", "phoenixarts12"),
		PhonePrefix:     get("PHOENIX_PHONE_PREFIX", "+91"),
		ChangelogOn:     getBool("PHOENIX_CHANGELOG", true),
		ChangelogDir:    get("PHOENIX_CHANGELOG_DIR", "./changelog"),
		SnapshotDir:     get("PHOENIX_SNAPSHOT_DIR", "./snapshots"),
		MetricsAddr:     get("PHOENIX_METRICS_ADDR", ""),
		PriceAtCreation: getBool("PHOENIX_PRICE_AT_CREATION", false),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
