package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("x"),
		[]byte("hello world"),
		bytes.Repeat([]byte("compressible "), 1024),
	}

	for _, codec := range []Codec{LZ4{}, S2{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			for _, p := range payloads {
				enc, err := codec.Encode(p)
				require.NoError(t, err)

				dec, err := codec.Decode(enc)
				require.NoError(t, err)
				// bytes.Equal treats nil and empty alike.
				assert.Equal(t, len(p), len(dec))
				assert.True(t, bytes.Equal(p, dec))
			}
		})
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	src := bytes.Repeat([]byte("aaaabbbb"), 4096)

	for _, codec := range []Codec{LZ4{}, S2{}} {
		enc, err := codec.Encode(src)
		require.NoError(t, err)
		assert.Less(t, len(enc), len(src), codec.Name())
	}
}

func TestCodecs_DecodeGarbage(t *testing.T) {
	for _, codec := range []Codec{LZ4{}, S2{}} {
		_, err := codec.Decode([]byte("definitely not a valid stream"))
		assert.Error(t, err, codec.Name())
	}
}
