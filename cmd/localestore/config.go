package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/localestore/pkg/filecache"
	"github.com/dmitrymomot/localestore/pkg/logger"
)

// Cache backends selectable with CACHE_BACKEND.
const (
	backendDir   = "dir"
	backendRedis = "redis"
	backendS3    = "s3"
)

type config struct {
	Locale      string `env:"LOCALE" envDefault:"en"`
	CatalogPath string `env:"CATALOG_PATH" envDefault:"translation.json"`

	// CacheRoot is the directory text files and dir-backed cache entries are
	// resolved against. Empty means the working directory.
	CacheRoot string `env:"CACHE_ROOT"`
	AssetsDir string `env:"ASSETS_DIR" envDefault:"assets"`

	// ReportFile, when set, receives one "key=value" line per translated key.
	ReportFile     string `env:"REPORT_FILE"`
	ReportToAssets bool   `env:"REPORT_TO_ASSETS"`

	// Snapshot stores the active table in the binary cache after loading.
	Snapshot     bool   `env:"SNAPSHOT"`
	CacheBackend string `env:"CACHE_BACKEND" envDefault:"dir"`
	RedisURL     string `env:"REDIS_URL"`

	Log logger.Config
	S3  filecache.S3Config
}

// loadConfig parses configuration from environ, or from the process
// environment when environ is nil.
func loadConfig(environ map[string]string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.CacheBackend {
	case backendDir, backendRedis, backendS3:
	default:
		return cfg, fmt.Errorf("parse config: unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}

	if cfg.Snapshot && cfg.CacheBackend == backendRedis && cfg.RedisURL == "" {
		return cfg, fmt.Errorf("parse config: REDIS_URL is required for the redis cache backend")
	}

	return cfg, nil
}
