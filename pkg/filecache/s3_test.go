package filecache

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestNewS3Backend(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		b, err := NewS3Backend(S3Config{
			Bucket:    "cache",
			AccessKey: "key",
			SecretKey: "secret",
		})
		require.NoError(t, err)
		require.NotNil(t, b.client)
		require.Equal(t, DefaultS3Region, b.cfg.Region)
	})

	t.Run("custom endpoint", func(t *testing.T) {
		t.Parallel()
		b, err := NewS3Backend(S3Config{
			Bucket:    "cache",
			AccessKey: "key",
			SecretKey: "secret",
			Endpoint:  "http://localhost:9000",
			Region:    "eu-central-1",
			PathStyle: true,
		})
		require.NoError(t, err)
		require.Equal(t, "eu-central-1", b.cfg.Region)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		b, err := NewS3Backend(S3Config{AccessKey: "key", SecretKey: "secret"})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, b)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()
		_, err := NewS3Backend(S3Config{Bucket: "cache", AccessKey: "key"})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestS3Backend_ObjectKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "prefixed", prefix: "filecache", key: "en.bin", want: "filecache/en.bin"},
		{name: "trims prefix slashes", prefix: "/cache/", key: "en.bin", want: "cache/en.bin"},
		{name: "no prefix", key: "assets/en.bin", want: "assets/en.bin"},
		{name: "backslashes", prefix: "c", key: `assets\en.bin`, want: "c/assets/en.bin"},
		{name: "traversal", prefix: "c", key: "../../etc/passwd", want: "c/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := &S3Backend{cfg: S3Config{Prefix: tt.prefix}}
			require.Equal(t, tt.want, b.objectKey(tt.key))
		})
	}
}

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	t.Run("typed no such key", func(t *testing.T) {
		t.Parallel()
		err := wrapS3Error(&types.NoSuchKey{}, ErrRead)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("api error code not found", func(t *testing.T) {
		t.Parallel()
		err := wrapS3Error(&smithy.GenericAPIError{Code: "NotFound"}, ErrRead)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other api error uses fallback", func(t *testing.T) {
		t.Parallel()
		err := wrapS3Error(&smithy.GenericAPIError{Code: "AccessDenied"}, ErrWrite)
		require.ErrorIs(t, err, ErrWrite)
		require.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("plain error uses fallback", func(t *testing.T) {
		t.Parallel()
		err := wrapS3Error(errors.New("network down"), ErrRead)
		require.ErrorIs(t, err, ErrRead)
		require.Contains(t, err.Error(), "network down")
	})
}
