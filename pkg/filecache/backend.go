package filecache

import "context"

// Backend stores raw cache blobs by name.
//
// Read returns ErrNotFound when nothing is stored under key. Delete of a
// missing key is not an error.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
