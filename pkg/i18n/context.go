package i18n

import (
	"context"
	"log/slog"
)

type localeCtxKey struct{}

// WithLocale returns a copy of ctx carrying the locale code.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, locale)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeCtxKey{}).(string)
	return locale, ok && locale != ""
}

// LocaleExtractor adds a "locale" attribute to log records whose context
// carries a locale. It matches logger.ContextExtractor.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	if locale, ok := LocaleFromContext(ctx); ok {
		return slog.String("locale", locale), true
	}
	return slog.Attr{}, false
}
