package filecache

import "errors"

// Sentinel errors for file cache operations.
var (
	// ErrNotFound is returned when nothing has been stored under a name.
	ErrNotFound = errors.New("filecache: entry not found")

	// ErrWrite is returned when a file or blob cannot be written.
	ErrWrite = errors.New("filecache: write failed")

	// ErrRead is returned when a stored blob exists but cannot be read.
	ErrRead = errors.New("filecache: read failed")

	// ErrMarshal is returned when value serialization fails.
	ErrMarshal = errors.New("filecache: failed to marshal value")

	// ErrUnmarshal is returned when a well-formed envelope holds a payload
	// that does not decode into the requested type.
	ErrUnmarshal = errors.New("filecache: failed to unmarshal value")

	// ErrCorrupt is returned when a stored blob is not a cache envelope.
	ErrCorrupt = errors.New("filecache: corrupt cache entry")

	// ErrUnsupportedVersion is returned for envelopes written by a newer format.
	ErrUnsupportedVersion = errors.New("filecache: unsupported envelope version")

	// ErrUnknownCodec is returned when an envelope names a codec this build does not know.
	ErrUnknownCodec = errors.New("filecache: unknown codec")

	// ErrEmptyName is returned when an entry name is empty.
	ErrEmptyName = errors.New("filecache: name cannot be empty")

	// ErrInvalidConfig is returned for incomplete backend configuration.
	ErrInvalidConfig = errors.New("filecache: invalid configuration")
)
