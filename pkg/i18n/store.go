package i18n

import (
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/localestore/pkg/logger"
)

// DefaultCatalogFile is the catalog document read when no source is configured.
const DefaultCatalogFile = "translation.json"

// Store holds the active translation table for one selected locale.
//
// The catalog is read from its source on every Load; the merged table is then
// swapped in as a whole, so concurrent T calls observe either the previous or
// the new table, never a partial one.
type Store struct {
	read   func() (Catalog, error)
	source string

	logger *slog.Logger

	// Optional handler called when T misses.
	missingKeyHandler func(locale, key string)

	active atomic.Pointer[table]
}

type table struct {
	entries map[string]string
	locale  string
}

// Option configures the Store during construction.
type Option func(*Store) error

// NewStore creates a Store with an empty active table.
// Call Load to select a locale.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		logger: logger.NewNope(),
	}
	s.setFile(DefaultCatalogFile)

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	s.active.Store(&table{entries: map[string]string{}})

	return s, nil
}

// WithCatalogFile reads the catalog from an OS path.
// The format follows the extension: .json, .yaml or .yml.
func WithCatalogFile(name string) Option {
	return func(s *Store) error {
		if name == "" {
			return ErrEmptyCatalogPath
		}
		s.setFile(name)
		return nil
	}
}

// WithCatalogFS reads the catalog named name from fsys.
func WithCatalogFS(fsys fs.FS, name string) Option {
	return func(s *Store) error {
		if fsys == nil {
			return ErrNilFS
		}
		if name == "" {
			return ErrEmptyCatalogPath
		}
		s.source = name
		s.read = func() (Catalog, error) {
			return ReadCatalogFS(fsys, name)
		}
		return nil
	}
}

// WithLogger sets the logger used to report catalog failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) error {
		if l != nil {
			s.logger = l
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when T finds no translation.
// Useful for spotting untranslated keys during development.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(s *Store) error {
		s.missingKeyHandler = handler
		return nil
	}
}

func (s *Store) setFile(name string) {
	s.source = name
	s.read = func() (Catalog, error) {
		return ReadCatalog(name)
	}
}

// Load reads the catalog and makes the merged table for locale active.
//
// A missing or malformed catalog is logged and leaves an empty active table;
// Load itself never fails. See Merge for the resolution rules.
func (s *Store) Load(locale string) {
	catalog, err := s.read()
	if err != nil {
		s.logger.Error("failed to read translation catalog",
			slog.String("source", s.source),
			slog.String("locale", locale),
			slog.String("error", err.Error()),
		)
		s.active.Store(&table{entries: map[string]string{}, locale: locale})
		return
	}

	entries := Merge(catalog, locale)
	s.active.Store(&table{entries: entries, locale: locale})

	s.logger.Debug("translations loaded",
		slog.String("source", s.source),
		slog.String("locale", locale),
		slog.Int("keys", len(entries)),
	)
}

// T returns the translation for key, or key itself when there is none.
func (s *Store) T(key string) string {
	t := s.active.Load()
	if value, ok := t.entries[key]; ok {
		return value
	}

	if s.missingKeyHandler != nil {
		s.missingKeyHandler(t.locale, key)
	}

	return key
}

// Tf translates key and replaces {{name}} placeholders in the result.
func (s *Store) Tf(key string, placeholders M) string {
	return ReplacePlaceholders(s.T(key), placeholders)
}

// Has reports whether the active table contains key.
func (s *Store) Has(key string) bool {
	_, ok := s.active.Load().entries[key]
	return ok
}

// Len returns the number of keys in the active table.
func (s *Store) Len() int {
	return len(s.active.Load().entries)
}

// Locale returns the locale passed to the last Load, or "" before the first one.
func (s *Store) Locale() string {
	return s.active.Load().locale
}

// Tag returns the active locale as a BCP 47 tag ("en_GB" → en-GB).
// It returns language.Und when no locale is loaded or the code does not parse.
func (s *Store) Tag() language.Tag {
	locale := s.Locale()
	if locale == "" {
		return language.Und
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Snapshot returns a copy of the active table.
func (s *Store) Snapshot() map[string]string {
	return maps.Clone(s.active.Load().entries)
}
