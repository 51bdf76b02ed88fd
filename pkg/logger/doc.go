// Package logger builds slog loggers for localestore components.
//
// It adds three things on top of log/slog:
//   - output format selection (json, text, or colored "pretty" output via tint)
//   - context extractors that copy request-scoped values into every record
//   - optional Sentry fan-out for warnings and errors
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "debug", Format: "pretty"}, i18n.LocaleExtractor)
//
//	ctx := i18n.WithLocale(context.Background(), "ja_JP")
//	log.InfoContext(ctx, "catalog ready")
//	// ... msg="catalog ready" locale=ja_JP
//
// Config carries env tags, so it can be embedded in an application config and
// parsed with github.com/caarlos0/env.
//
// # Sentry
//
// When SentryDSN is set, errors become Sentry issues and warnings are kept as
// Sentry logs. If initialization fails the logger keeps writing locally.
// Call Flush before exit to deliver buffered events.
//
// # Defaults
//
// NewNope returns a discarding logger; library packages use it when no logger
// is supplied.
package logger
