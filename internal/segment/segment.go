// Package segment implements the append-only log files backing a column.
//
// A segment is a sequentially numbered file of length-prefixed records.
// Persisted bytes are exposed through a read-only memory mapping; the
// mapping is replaced, never mutated, when the file grows. Once a segment
// is superseded by rotation it is sealed: its bytes and its mapping are
// immutable for the life of the process.
package segment

import (
	"os"

	"github.com/hupe1980/vardata/internal/fs"
	"github.com/hupe1980/vardata/internal/mmap"
)

// Segment is one append-only log file and its current mapped view.
type Segment struct {
	id   uint32
	path string
	m    *mmap.Mapping
}

// Open creates the backing file at path if absent and maps its current
// length read-only. No raw file handle is retained; the mapping remains
// valid on its own.
func Open(fsys fs.FileSystem, path string, id uint32) (*Segment, error) {
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	return &Segment{id: id, path: path, m: m}, nil
}

// ID returns the segment's sequential id.
func (s *Segment) ID() uint32 { return s.id }

// Append writes p to the end of the backing file. With sync set the file is
// fsynced before closing. The mapped view is not refreshed; callers follow
// up with Remap.
func (s *Segment) Append(fsys fs.FileSystem, p []byte, sync bool) error {
	f, err := fsys.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(p); err != nil {
		f.Close()
		return err
	}
	if sync {
		if err := f.Sync(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// Remap replaces the mapped view with a fresh mapping of the file's current
// length and retires the old one. The caller must guarantee no reader holds
// the old view; the column does so by remapping only under its write lock.
func (s *Segment) Remap() error {
	m, err := mmap.Open(s.path)
	if err != nil {
		return err
	}
	old := s.m
	s.m = m
	if old != nil {
		if err := old.Close(); err != nil {
			return err
		}
	}
	return nil
}

// MappedLen returns the persisted length covered by the current mapping.
func (s *Segment) MappedLen() int {
	return s.m.Size()
}

// Bytes returns the mapped contents.
func (s *Segment) Bytes() []byte {
	return s.m.Bytes()
}

// ReadRecord reads the record starting at off from the mapped view.
func (s *Segment) ReadRecord(off uint32) ([]byte, error) {
	return ReadRecordAt(s.m.Bytes(), int(off))
}

// Advise forwards an access-pattern hint for the mapped view.
func (s *Segment) Advise(pattern mmap.AccessPattern) error {
	return s.m.Advise(pattern)
}

// Size stats the backing file and returns its on-disk length, which may
// exceed the mapped length while buffered bytes are being persisted.
func (s *Segment) Size(fsys fs.FileSystem) (int64, error) {
	fi, err := fsys.Stat(s.path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// Close unmaps the segment's view.
func (s *Segment) Close() error {
	return s.m.Close()
}
