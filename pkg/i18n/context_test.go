package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localestore/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	t.Run("round trips locale", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.WithLocale(context.Background(), "ja_JP")

		locale, ok := i18n.LocaleFromContext(ctx)
		require.True(t, ok)
		require.Equal(t, "ja_JP", locale)
	})

	t.Run("reports absence", func(t *testing.T) {
		t.Parallel()
		_, ok := i18n.LocaleFromContext(context.Background())
		require.False(t, ok)

		_, ok = i18n.LocaleFromContext(i18n.WithLocale(context.Background(), ""))
		require.False(t, ok)
	})

	t.Run("extractor builds locale attribute", func(t *testing.T) {
		t.Parallel()
		attr, ok := i18n.LocaleExtractor(i18n.WithLocale(context.Background(), "en_GB"))
		require.True(t, ok)
		require.Equal(t, "locale", attr.Key)
		require.Equal(t, "en_GB", attr.Value.String())

		_, ok = i18n.LocaleExtractor(context.Background())
		require.False(t, ok)
	})
}
