package vardata

import "github.com/hupe1980/vardata/internal/segment"

// writeBuffer is the active segment's not-yet-persisted tail. Offsets inside
// the buffer continue the segment's byte space: start always equals the
// active segment's persisted (mapped) length, so buffer-relative and mapped
// offsets never diverge.
type writeBuffer struct {
	start int64 // active segment persisted length at last reset
	data  []byte
	count int
}

// append stages a length-prefixed record and returns its offset in the
// segment's unified byte space.
func (b *writeBuffer) append(payload []byte) int64 {
	off := b.start + int64(len(b.data))
	b.data = segment.AppendRecord(b.data, payload)
	b.count++
	return off
}

// readRecord resolves a unified-space offset against the buffered bytes.
func (b *writeBuffer) readRecord(off int64) ([]byte, error) {
	return segment.ReadRecordAt(b.data, int(off-b.start))
}

// reset clears the buffered bytes and re-anchors the buffer at the segment's
// new persisted length.
func (b *writeBuffer) reset(start int64) {
	b.start = start
	b.data = b.data[:0]
	b.count = 0
}
