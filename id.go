package vardata

import "fmt"

// ID is the 64-bit global identifier of one record: the high 32 bits hold
// the segment id, the low 32 bits the record's start offset inside that
// segment's byte space.
//
// Offsets are unified per segment: for the active segment they address the
// persisted bytes followed by the not-yet-flushed buffered bytes, so an ID
// handed out before a flush stays valid after it.
type ID uint64

const (
	segmentBits = 32
	offsetMask  = (1 << segmentBits) - 1
)

// NewID packs a segment id and a local offset into an ID.
func NewID(segment, offset uint32) ID {
	return ID(uint64(segment)<<segmentBits | uint64(offset))
}

// Segment extracts the segment id (high 32 bits).
func (id ID) Segment() uint32 {
	return uint32(id >> segmentBits)
}

// Offset extracts the local offset within the segment (low 32 bits).
func (id ID) Offset() uint32 {
	return uint32(id & offsetMask)
}

// String renders the ID as segment/offset for diagnostics.
func (id ID) String() string {
	return fmt.Sprintf("%d/%d", id.Segment(), id.Offset())
}
