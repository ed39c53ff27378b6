package vardata

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/vardata/internal/mmap"
	"github.com/hupe1980/vardata/internal/segment"
)

// Column stores variable-length byte payloads under compact 64-bit ids.
//
// Inserts are staged in an in-memory write buffer and periodically flushed
// into the active segment file; reads resolve ids against either the buffer
// or a segment's read-only memory mapping. Sealed segments are immutable and
// read lock-free; all mutation of the active segment is serialized by one
// read-write lock per column.
//
// A Column is a process-lifetime object: create it once per (name, indexing)
// pair, call Init before the first insert, and share it across goroutines.
type Column struct {
	prefix   string
	name     string
	indexing string
	opts     options

	initOnce    sync.Once
	initialized atomic.Bool
	initErr     error

	mu       sync.RWMutex
	segments []*segment.Segment
	active   int
	buf      writeBuffer
}

// New creates a column named name under the file prefix supplied by the
// namespace collaborator. indexing names the id scheme the column is
// registered under; both strings only participate in file naming.
//
// The column is not usable until Init has completed.
func New(prefix, name, indexing string, optFns ...Option) *Column {
	return &Column{
		prefix:   prefix,
		name:     name,
		indexing: indexing,
		opts:     applyOptions(optFns),
	}
}

// filename returns the backing file path for a segment id:
// <prefix>.vardata_<name>_<indexing>.<id>
func (c *Column) filename(id uint32) string {
	return fmt.Sprintf("%s.vardata_%s_%s.%d", c.prefix, c.name, c.indexing, id)
}

// Init scans disk for existing segment files and starts a fresh active
// segment for writes. It is idempotent: the first call does the work, every
// later call returns the same result. Init must complete before Insert.
func (c *Column) Init() error {
	c.initOnce.Do(func() {
		c.initErr = c.doInit()
		if c.initErr == nil {
			c.initialized.Store(true)
		}
	})
	return c.initErr
}

func (c *Column) doInit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.opts.fsys.MkdirAll(filepath.Dir(c.prefix), 0o755); err != nil {
		c.opts.logger.LogInit(c.name, 0, 0, err)
		return err
	}

	// Sealed segments are contiguous from 0; the scan stops at the first
	// missing id.
	for id := uint32(0); ; id++ {
		path := c.filename(id)
		if _, err := c.opts.fsys.Stat(path); err != nil {
			if os.IsNotExist(err) {
				break
			}
			c.opts.logger.LogInit(c.name, len(c.segments), 0, err)
			return err
		}
		seg, err := segment.Open(c.opts.fsys, path, id)
		if err != nil {
			c.opts.logger.LogInit(c.name, len(c.segments), 0, err)
			return err
		}
		_ = seg.Advise(mmap.AccessRandom)
		c.segments = append(c.segments, seg)
	}

	// A resumed column never appends to the last sealed segment; writes
	// always begin in a fresh active segment.
	sealed := len(c.segments)
	if err := c.startSegmentLocked(); err != nil {
		c.opts.logger.LogInit(c.name, sealed, 0, err)
		return err
	}

	c.opts.logger.LogInit(c.name, sealed, uint32(c.active), nil)
	return nil
}

// startSegmentLocked allocates the next sequential segment id, opens it and
// makes it the active segment. Caller holds the write lock.
func (c *Column) startSegmentLocked() error {
	id := uint32(len(c.segments))
	seg, err := segment.Open(c.opts.fsys, c.filename(id), id)
	if err != nil {
		return err
	}
	_ = seg.Advise(mmap.AccessRandom)

	c.segments = append(c.segments, seg)
	c.active = int(id)
	c.buf.reset(int64(seg.MappedLen()))
	return nil
}

// Insert appends payload as a new record and returns its id. The record is
// staged in the write buffer; once the buffered record count reaches the
// flush threshold the buffer is flushed synchronously before returning. The
// returned id is valid either way, flushing never moves bytes.
func (c *Column) Insert(payload []byte) (ID, error) {
	start := time.Now()
	id, err := c.insert(payload)
	c.opts.metrics.RecordInsert(len(payload), time.Since(start), err)
	return id, err
}

// InsertString is a convenience wrapper encoding s as bytes.
func (c *Column) InsertString(s string) (ID, error) {
	return c.Insert([]byte(s))
}

func (c *Column) insert(payload []byte) (ID, error) {
	if !c.initialized.Load() {
		return 0, ErrNotInitialized
	}

	if c.opts.codec != nil {
		enc, err := c.opts.codec.Encode(payload)
		if err != nil {
			return 0, err
		}
		payload = enc
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	off := c.buf.start + int64(len(c.buf.data))
	if off+segment.HeaderSize+int64(len(payload)) > math.MaxUint32 {
		return 0, ErrSegmentOverflow
	}

	c.buf.append(payload)
	id := NewID(uint32(c.active), uint32(off))

	if c.buf.count >= c.opts.flushThreshold {
		if err := c.flushLocked(); err != nil {
			return 0, err
		}
	}

	return id, nil
}

// Flush persists the buffered bytes into the active segment, refreshes its
// mapped view and, if the segment now exceeds the size cap, rotates to a new
// active segment. Flushing with an empty buffer is a no-op.
func (c *Column) Flush() error {
	if !c.initialized.Load() {
		return ErrNotInitialized
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushLocked()
}

func (c *Column) flushLocked() error {
	if c.buf.count == 0 {
		return nil
	}

	start := time.Now()
	n := len(c.buf.data)
	seg := c.segments[c.active]

	err := seg.Append(c.opts.fsys, c.buf.data, c.opts.syncOnFlush)
	if err == nil {
		err = seg.Remap()
	}
	c.opts.metrics.RecordFlush(n, time.Since(start), err)
	c.opts.logger.LogFlush(seg.ID(), n, err)
	if err != nil {
		return err
	}

	// The rotation decision is made on the on-disk file size; right after a
	// remap it matches the mapped length, which stays the buffer's anchor.
	size, err := seg.Size(c.opts.fsys)
	if err != nil {
		return err
	}
	if size > c.opts.maxSegmentSize {
		prev := seg.ID()
		if err := c.startSegmentLocked(); err != nil {
			return err
		}
		c.opts.metrics.RecordRotation()
		c.opts.logger.LogRotation(prev, uint32(c.active), size)
		return nil
	}

	// Buffered offsets keep continuing the segment's byte space.
	c.buf.reset(int64(seg.MappedLen()))
	return nil
}

// Get returns the payload stored under id.
func (c *Column) Get(id ID) ([]byte, error) {
	start := time.Now()
	payload, err := c.get(id)
	c.opts.metrics.RecordGet(len(payload), time.Since(start), err)
	return payload, err
}

// GetString is a convenience wrapper decoding the payload as text.
func (c *Column) GetString(id ID) (string, error) {
	payload, err := c.Get(id)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func (c *Column) get(id ID) ([]byte, error) {
	segID, off := id.Segment(), id.Offset()

	c.mu.RLock()

	if int(segID) >= len(c.segments) {
		known := uint32(len(c.segments))
		c.mu.RUnlock()
		c.opts.logger.LogUnknownSegment(id, known)
		return nil, &ErrUnknownSegment{SegmentID: segID, Known: known}
	}

	if int(segID) == c.active {
		// The read lock is held across the whole read so a concurrent
		// flush can neither retire the mapping nor reset the buffer
		// underneath us. Mapped capacity decides buffer vs mapping and
		// is snapshotted here, under the lock.
		seg := c.segments[c.active]
		var (
			payload []byte
			err     error
		)
		if int64(off) >= int64(seg.MappedLen()) {
			payload, err = c.buf.readRecord(int64(off))
		} else {
			payload, err = seg.ReadRecord(off)
		}
		c.mu.RUnlock()
		return c.decode(payload, err)
	}

	// Sealed segment: once published its bytes and mapped view never
	// change, so the read proceeds without any lock.
	seg := c.segments[segID]
	c.mu.RUnlock()

	payload, err := seg.ReadRecord(off)
	return c.decode(payload, err)
}

func (c *Column) decode(payload []byte, err error) ([]byte, error) {
	if err != nil || c.opts.codec == nil {
		return payload, err
	}
	return c.opts.codec.Decode(payload)
}

// Delete is a no-op: records are never reclaimed in place. Real deletion
// requires a compaction mechanism operating over sealed segments, outside
// this column.
func (c *Column) Delete(ID) error {
	c.opts.metrics.RecordDelete()
	return nil
}

// Stats is a point-in-time snapshot of the column's storage state.
type Stats struct {
	Segments        int
	ActiveSegment   uint32
	BufferedRecords int
	BufferedBytes   int
	PersistedBytes  int64
}

// Stats returns a snapshot of the column's storage state.
func (c *Column) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var persisted int64
	for _, seg := range c.segments {
		persisted += int64(seg.MappedLen())
	}

	return Stats{
		Segments:        len(c.segments),
		ActiveSegment:   uint32(c.active),
		BufferedRecords: c.buf.count,
		BufferedBytes:   len(c.buf.data),
		PersistedBytes:  persisted,
	}
}

// Close flushes the write buffer and unmaps every segment view. The column
// is unusable afterwards. Close must not race with in-flight reads: lock-free
// sealed reads could still be holding a mapped view.
func (c *Column) Close() error {
	if !c.initialized.Swap(false) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	firstErr := c.flushLocked()
	for _, seg := range c.segments {
		if err := seg.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
