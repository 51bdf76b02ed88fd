// Package filecache writes text files and caches typed values as binary blobs.
//
// # Text Files
//
// Dir.WriteText writes UTF-8 text relative to the Dir root, or to its assets
// subdirectory with ToAssets. Files are replaced atomically unless Append is given:
//
//	dir := filecache.NewDir("")
//	_ = dir.WriteText("report.txt", "first line\n")
//	_ = dir.WriteText("report.txt", "second line\n", filecache.Append())
//	_ = dir.WriteText("index.html", page, filecache.ToAssets())
//
// # Binary Cache
//
// Binary stores values of one Go type under names on a Backend:
//
//	cells := filecache.NewBinary[Snapshot](dir.Assets())
//	if err := cells.Put(ctx, "snapshot.bin", snap); err != nil {
//		return err
//	}
//
//	snap, ok := cells.Lookup(ctx, "snapshot.bin")
//
// Each blob is a small versioned envelope: the magic "LSCB", a format version,
// a codec ID, then the payload. CBOR is the default codec; JSON is available
// through WithCodec. Readers always decode with the codec named in the
// envelope, so switching codecs does not orphan existing entries.
//
// Get separates misses from damage: ErrNotFound for a name that was never
// written, ErrCorrupt, ErrUnsupportedVersion, ErrUnknownCodec or ErrUnmarshal
// for a blob that cannot be decoded. Lookup collapses both into a plain
// (zero, false) and logs the damaged case.
//
// # Backends
//
//   - Dir: local files, atomic replacement via renameio
//   - RedisBackend: Redis string values with optional TTL
//   - S3Backend: objects in an S3-compatible bucket
package filecache
