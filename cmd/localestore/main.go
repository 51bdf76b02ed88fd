// Command localestore prints translations for the given keys.
//
// Usage:
//
//	LOCALE=en_GB CATALOG_PATH=translation.json localestore hello bye
//
// Each key is printed as "key=value"; keys without a translation print as
// themselves. Logs go to stderr. See config.go for the environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrymomot/localestore/pkg/filecache"
	"github.com/dmitrymomot/localestore/pkg/i18n"
	"github.com/dmitrymomot/localestore/pkg/logger"
	"github.com/dmitrymomot/localestore/pkg/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], nil, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// snapshot is the value stored in the binary cache for a loaded locale.
type snapshot struct {
	Locale  string            `cbor:"locale" json:"locale"`
	Entries map[string]string `cbor:"entries" json:"entries"`
	SavedAt time.Time         `cbor:"saved_at" json:"saved_at"`
}

func run(ctx context.Context, keys []string, environ map[string]string, stdout io.Writer) error {
	cfg, err := loadConfig(environ)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Log, i18n.LocaleExtractor)
	defer logger.Flush(2 * time.Second)

	ctx = i18n.WithLocale(ctx, cfg.Locale)

	store, err := i18n.NewStore(
		i18n.WithCatalogFile(cfg.CatalogPath),
		i18n.WithLogger(log),
		i18n.WithMissingKeyHandler(func(locale, key string) {
			log.Debug("missing translation", slog.String("locale", locale), slog.String("key", key))
		}),
	)
	if err != nil {
		return err
	}

	store.Load(cfg.Locale)
	log.InfoContext(ctx, "locale loaded",
		slog.String("tag", store.Tag().String()),
		slog.Int("keys", store.Len()),
	)

	var lines strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&lines, "%s=%s\n", key, store.T(key))
	}
	if _, err := io.WriteString(stdout, lines.String()); err != nil {
		return err
	}

	dir := filecache.NewDir(cfg.CacheRoot, filecache.WithAssetsDir(cfg.AssetsDir))

	if cfg.ReportFile != "" && lines.Len() > 0 {
		opts := []filecache.WriteOption{filecache.Append()}
		if cfg.ReportToAssets {
			opts = append(opts, filecache.ToAssets())
		}
		if err := dir.WriteText(cfg.ReportFile, lines.String(), opts...); err != nil {
			return err
		}
	}

	if !cfg.Snapshot {
		return nil
	}

	backend, closeBackend, err := openBackend(ctx, cfg, dir)
	if err != nil {
		return err
	}
	defer closeBackend()

	return saveSnapshot(ctx, log, backend, store)
}

func openBackend(ctx context.Context, cfg config, dir *filecache.Dir) (filecache.Backend, func(), error) {
	switch cfg.CacheBackend {
	case backendRedis:
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return filecache.NewRedisBackend(client), func() { _ = client.Close() }, nil
	case backendS3:
		backend, err := filecache.NewS3Backend(cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {}, nil
	default:
		return dir.Assets(), func() {}, nil
	}
}

func saveSnapshot(ctx context.Context, log *slog.Logger, backend filecache.Backend, store *i18n.Store) error {
	cells := filecache.NewBinary[snapshot](backend, filecache.WithLogger(log))
	name := store.Locale() + ".snapshot"

	if prev, ok := cells.Lookup(ctx, name); ok {
		log.InfoContext(ctx, "replacing snapshot",
			slog.Int("previous_keys", len(prev.Entries)),
			slog.Time("previous_saved_at", prev.SavedAt),
		)
	}

	return cells.Put(ctx, name, snapshot{
		Locale:  store.Locale(),
		Entries: store.Snapshot(),
		SavedAt: time.Now().UTC(),
	})
}
