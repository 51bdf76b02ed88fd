package filecache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/localestore/pkg/logger"
)

// Binary is a typed read-or-write cache cell store over a Backend.
// Every value is written in a versioned envelope (see Codec), so a reader can
// tell a cache miss from a blob it cannot decode.
type Binary[V any] struct {
	backend Backend
	codec   Codec
	logger  *slog.Logger
}

// BinaryOption configures a Binary cache.
type BinaryOption func(*binaryOptions)

type binaryOptions struct {
	codec  Codec
	logger *slog.Logger
}

// WithCodec sets the codec used for new writes. Reads use the codec recorded
// in the stored envelope: c itself when its ID matches, otherwise CBOR or JSON.
// Default: CBOR
func WithCodec(c Codec) BinaryOption {
	return func(o *binaryOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger sets the logger used by Lookup to report undecodable entries.
func WithLogger(l *slog.Logger) BinaryOption {
	return func(o *binaryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewBinary creates a binary cache over backend.
//
// Example:
//
//	cells := filecache.NewBinary[map[string]string](filecache.NewDir("").Assets())
//	_ = cells.Put(ctx, "en_GB.cache", table)
//	table, ok := cells.Lookup(ctx, "en_GB.cache")
func NewBinary[V any](backend Backend, opts ...BinaryOption) *Binary[V] {
	o := &binaryOptions{
		codec:  CBOR,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Binary[V]{
		backend: backend,
		codec:   o.codec,
		logger:  o.logger,
	}
}

// Put serializes value and stores it under name, replacing any previous value.
func (b *Binary[V]) Put(ctx context.Context, name string, value V) error {
	if name == "" {
		return ErrEmptyName
	}

	data, err := encodeEnvelope(b.codec, value)
	if err != nil {
		return err
	}

	return b.backend.Write(ctx, name, data)
}

// Get loads the value stored under name.
//
// It returns ErrNotFound when nothing was stored, and ErrCorrupt,
// ErrUnsupportedVersion, ErrUnknownCodec or ErrUnmarshal when the stored
// blob cannot be turned back into a V.
func (b *Binary[V]) Get(ctx context.Context, name string) (V, error) {
	var value V

	if name == "" {
		return value, ErrEmptyName
	}

	data, err := b.backend.Read(ctx, name)
	if err != nil {
		return value, err
	}

	if err := decodeEnvelope(data, &value, b.codec); err != nil {
		var zero V
		return zero, err
	}

	return value, nil
}

// Lookup is Get for callers that only care about hits. Any failure yields
// (zero, false); failures other than a plain miss are logged as warnings.
func (b *Binary[V]) Lookup(ctx context.Context, name string) (V, bool) {
	value, err := b.Get(ctx, name)
	if err == nil {
		return value, true
	}

	if !errors.Is(err, ErrNotFound) {
		b.logger.WarnContext(ctx, "discarding unreadable cache entry",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
	}

	var zero V
	return zero, false
}

// Delete removes the value stored under name.
func (b *Binary[V]) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return b.backend.Delete(ctx, name)
}
