package segment

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the length prefix in front of every record.
const HeaderSize = 4

// ErrOutOfBounds is returned when a record read would cross the end of the
// addressed byte space.
var ErrOutOfBounds = errors.New("segment: record out of bounds")

// AppendRecord appends a length-prefixed record to dst and returns the
// extended slice. The same framing is used in segment files and in the
// write buffer: a 4-byte little-endian length followed by the payload, with
// no padding or checksum.
func AppendRecord(dst []byte, payload []byte) []byte {
	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(payload)))
	dst = append(dst, hdr[:]...)
	return append(dst, payload...)
}

// ReadRecordAt reads the record starting at off in b and returns a copy of
// its payload. Each call uses its own cursor, so concurrent reads never
// share state.
func ReadRecordAt(b []byte, off int) ([]byte, error) {
	if off < 0 || off+HeaderSize > len(b) {
		return nil, fmt.Errorf("%w: header at %d exceeds %d bytes", ErrOutOfBounds, off, len(b))
	}
	n := int(binary.LittleEndian.Uint32(b[off:]))
	if off+HeaderSize+n > len(b) {
		return nil, fmt.Errorf("%w: %d payload bytes at %d exceed %d bytes", ErrOutOfBounds, n, off+HeaderSize, len(b))
	}
	payload := make([]byte, n)
	copy(payload, b[off+HeaderSize:])
	return payload, nil
}
