package filecache

import (
	"encoding/json"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Codec serializes cache values. The ID is written into every envelope so a
// reader can always decode with the codec that produced the payload.
type Codec interface {
	ID() byte
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Codec identifiers stored in the envelope header. Never renumber them.
const (
	CodecIDCBOR byte = 1
	CodecIDJSON byte = 2
)

var (
	// CBOR encodes values as canonical CBOR (RFC 8949). It is the default codec.
	// Times are written as RFC 3339 strings with nanoseconds.
	CBOR Codec = newCBORCodec()

	// JSON encodes values with encoding/json, for caches that should stay human readable.
	JSON Codec = jsonCodec{}
)

// Untyped maps decode as map[string]any so values stored through JSON and CBOR
// look the same to callers.
var mapStringAny = reflect.TypeOf(map[string]any(nil))

var codecs = map[byte]Codec{
	CodecIDCBOR: CBOR,
	CodecIDJSON: JSON,
}

type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func newCBORCodec() cborCodec {
	encOpts := cbor.CanonicalEncOptions()
	encOpts.Time = cbor.TimeRFC3339Nano
	enc, err := encOpts.EncMode()
	if err != nil {
		panic("filecache: cbor encoder: " + err.Error())
	}
	dec, err := cbor.DecOptions{
		DefaultMapType: mapStringAny,
	}.DecMode()
	if err != nil {
		panic("filecache: cbor decoder: " + err.Error())
	}
	return cborCodec{enc: enc, dec: dec}
}

func (cborCodec) ID() byte { return CodecIDCBOR }

func (c cborCodec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c cborCodec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

type jsonCodec struct{}

func (jsonCodec) ID() byte { return CodecIDJSON }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
