// Package compress provides the optional payload codecs the column can
// apply before staging bytes in the write buffer. The record framing is
// unaffected: length headers simply cover the encoded bytes.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// Codec encodes and decodes payload bytes.
type Codec interface {
	Name() string
	Encode(src []byte) ([]byte, error)
	Decode(src []byte) ([]byte, error)
}

// LZ4 compresses payloads using the self-describing LZ4 frame format.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Encode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (LZ4) Decode(src []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
}

// S2 compresses payloads using the S2 block format, a faster superset of
// snappy.
type S2 struct{}

func (S2) Name() string { return "s2" }

func (S2) Encode(src []byte) ([]byte, error) {
	return s2.Encode(nil, src), nil
}

func (S2) Decode(src []byte) ([]byte, error) {
	return s2.Decode(nil, src)
}
