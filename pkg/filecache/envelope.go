package filecache

import (
	"bytes"
	"errors"
	"fmt"
)

// Envelope layout:
//
//	offset 0  4 bytes  magic "LSCB"
//	offset 4  1 byte   format version
//	offset 5  1 byte   codec ID
//	offset 6  ...      codec payload
const (
	envelopeVersion    byte = 1
	envelopeHeaderSize      = 6
)

var envelopeMagic = []byte("LSCB")

func encodeEnvelope(codec Codec, v any) ([]byte, error) {
	payload, err := codec.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}

	buf := make([]byte, 0, envelopeHeaderSize+len(payload))
	buf = append(buf, envelopeMagic...)
	buf = append(buf, envelopeVersion, codec.ID())
	buf = append(buf, payload...)

	return buf, nil
}

// decodeEnvelope decodes with own when the envelope carries its ID, and with
// the built-in codec registry otherwise.
func decodeEnvelope(data []byte, v any, own Codec) error {
	if len(data) < envelopeHeaderSize || !bytes.Equal(data[:len(envelopeMagic)], envelopeMagic) {
		return ErrCorrupt
	}

	if version := data[4]; version != envelopeVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	codec, ok := codecs[data[5]]
	if own != nil && own.ID() == data[5] {
		codec, ok = own, true
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCodec, data[5])
	}

	if err := codec.Unmarshal(data[envelopeHeaderSize:], v); err != nil {
		return errors.Join(ErrUnmarshal, err)
	}

	return nil
}
