package filecache_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localestore/pkg/filecache"
)

type snapshot struct {
	Locale  string            `json:"locale" cbor:"locale"`
	Entries map[string]string `json:"entries" cbor:"entries"`
	Version int               `json:"version" cbor:"version"`
}

// rawCodec stores strings as their bytes under a codec ID the package does not know.
type rawCodec struct{}

func (rawCodec) ID() byte { return 9 }

func (rawCodec) Marshal(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.New("raw codec: not a string")
	}
	return []byte(s), nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	p, ok := v.(*string)
	if !ok {
		return errors.New("raw codec: not a *string")
	}
	*p = string(data)
	return nil
}

func sampleSnapshot() snapshot {
	return snapshot{
		Locale:  "en_GB",
		Entries: map[string]string{"hello": "Hiya", "bye": "Bye"},
		Version: 3,
	}
}

func TestBinary_PutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trips with default codec", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[snapshot](filecache.NewDir(t.TempDir()))

		require.NoError(t, cells.Put(ctx, "snap.bin", sampleSnapshot()))

		got, err := cells.Get(ctx, "snap.bin")
		require.NoError(t, err)
		require.Equal(t, sampleSnapshot(), got)
	})

	t.Run("round trips with json codec", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[snapshot](filecache.NewDir(t.TempDir()), filecache.WithCodec(filecache.JSON))

		require.NoError(t, cells.Put(ctx, "snap.json", sampleSnapshot()))

		got, err := cells.Get(ctx, "snap.json")
		require.NoError(t, err)
		require.Equal(t, sampleSnapshot(), got)
	})

	t.Run("round trips scalar values", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[[]string](filecache.NewDir(t.TempDir()))

		require.NoError(t, cells.Put(ctx, "list.bin", []string{"en", "ja_JP"}))

		got, err := cells.Get(ctx, "list.bin")
		require.NoError(t, err)
		require.Equal(t, []string{"en", "ja_JP"}, got)
	})

	t.Run("reads entries written with another codec", func(t *testing.T) {
		t.Parallel()
		dir := filecache.NewDir(t.TempDir())

		writer := filecache.NewBinary[snapshot](dir, filecache.WithCodec(filecache.JSON))
		require.NoError(t, writer.Put(ctx, "snap.bin", sampleSnapshot()))

		reader := filecache.NewBinary[snapshot](dir)
		got, err := reader.Get(ctx, "snap.bin")
		require.NoError(t, err)
		require.Equal(t, sampleSnapshot(), got)
	})

	t.Run("keeps time precision", func(t *testing.T) {
		t.Parallel()
		want := time.Date(2026, 10, 19, 12, 0, 0, 123456789, time.UTC)

		for _, codec := range []filecache.Codec{filecache.CBOR, filecache.JSON} {
			cells := filecache.NewBinary[time.Time](filecache.NewDir(t.TempDir()), filecache.WithCodec(codec))
			require.NoError(t, cells.Put(ctx, "at.bin", want))

			got, err := cells.Get(ctx, "at.bin")
			require.NoError(t, err)
			require.True(t, want.Equal(got), "codec %d: got %s", codec.ID(), got)
		}
	})

	t.Run("reads back custom codec", func(t *testing.T) {
		t.Parallel()
		dir := filecache.NewDir(t.TempDir())
		cells := filecache.NewBinary[string](dir, filecache.WithCodec(rawCodec{}))

		require.NoError(t, cells.Put(ctx, "k", "v"))

		got, err := cells.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "v", got)

		_, err = filecache.NewBinary[string](dir).Get(ctx, "k")
		require.ErrorIs(t, err, filecache.ErrUnknownCodec)
	})

	t.Run("put replaces previous value", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[int](filecache.NewDir(t.TempDir()))

		require.NoError(t, cells.Put(ctx, "n.bin", 1))
		require.NoError(t, cells.Put(ctx, "n.bin", 2))

		got, err := cells.Get(ctx, "n.bin")
		require.NoError(t, err)
		require.Equal(t, 2, got)
	})

	t.Run("never written is ErrNotFound", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[snapshot](filecache.NewDir(t.TempDir()))

		got, err := cells.Get(ctx, "missing.bin")
		require.ErrorIs(t, err, filecache.ErrNotFound)
		require.Zero(t, got)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[int](filecache.NewDir(t.TempDir()))

		require.ErrorIs(t, cells.Put(ctx, "", 1), filecache.ErrEmptyName)
		_, err := cells.Get(ctx, "")
		require.ErrorIs(t, err, filecache.ErrEmptyName)
		require.ErrorIs(t, cells.Delete(ctx, ""), filecache.ErrEmptyName)
	})

	t.Run("unmarshalable value is ErrMarshal", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[func()](filecache.NewDir(t.TempDir()), filecache.WithCodec(filecache.JSON))

		err := cells.Put(ctx, "fn.bin", func() {})
		require.ErrorIs(t, err, filecache.ErrMarshal)
	})

	t.Run("delete removes value", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[int](filecache.NewDir(t.TempDir()))

		require.NoError(t, cells.Put(ctx, "n.bin", 1))
		require.NoError(t, cells.Delete(ctx, "n.bin"))

		_, err := cells.Get(ctx, "n.bin")
		require.ErrorIs(t, err, filecache.ErrNotFound)
	})
}

func TestBinary_Damaged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	write := func(t *testing.T, data []byte) *filecache.Dir {
		t.Helper()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "entry.bin"), data, 0o644))
		return filecache.NewDir(root)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty file", data: []byte{}, want: filecache.ErrCorrupt},
		{name: "foreign bytes", data: []byte("\x80\x04\x95pickled"), want: filecache.ErrCorrupt},
		{name: "newer version", data: []byte("LSCB\x09\x01\xa0"), want: filecache.ErrUnsupportedVersion},
		{name: "unknown codec", data: []byte("LSCB\x01\x7f\xa0"), want: filecache.ErrUnknownCodec},
		{name: "truncated payload", data: []byte("LSCB\x01\x01\xa3"), want: filecache.ErrUnmarshal},
		{name: "wrong type", data: []byte("LSCB\x01\x02\"text\""), want: filecache.ErrUnmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cells := filecache.NewBinary[snapshot](write(t, tt.data))

			got, err := cells.Get(ctx, "entry.bin")
			require.ErrorIs(t, err, tt.want)
			require.Zero(t, got)
		})
	}
}

func TestBinary_Lookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()
		cells := filecache.NewBinary[snapshot](filecache.NewDir(t.TempDir()))
		require.NoError(t, cells.Put(ctx, "snap.bin", sampleSnapshot()))

		got, ok := cells.Lookup(ctx, "snap.bin")
		require.True(t, ok)
		require.Equal(t, sampleSnapshot(), got)
	})

	t.Run("miss is silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cells := filecache.NewBinary[snapshot](
			filecache.NewDir(t.TempDir()),
			filecache.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
		)

		got, ok := cells.Lookup(ctx, "missing.bin")
		require.False(t, ok)
		require.Zero(t, got)
		require.Zero(t, buf.Len())
	})

	t.Run("damaged entry is logged", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "entry.bin"), []byte("garbage"), 0o644))

		var buf bytes.Buffer
		cells := filecache.NewBinary[snapshot](
			filecache.NewDir(root),
			filecache.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
		)

		_, ok := cells.Lookup(ctx, "entry.bin")
		require.False(t, ok)
		require.Contains(t, buf.String(), "discarding unreadable cache entry")
		require.Contains(t, buf.String(), "entry.bin")
	})
}
