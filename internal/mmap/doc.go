// Package mmap provides read-only memory-mapped file access.
//
// Segment files are mapped instead of read through the file API so the read
// path can address persisted records as a plain byte slice. A Mapping is
// immutable: growing a file requires opening a new Mapping and retiring the
// old one.
//
//	m, err := mmap.Open("db.vardata_users_pk.0")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	m.Advise(mmap.AccessRandom)
//
// Unix platforms use mmap(2) with madvise(2) hints; Windows uses
// CreateFileMapping/MapViewOfFile and treats Advise as a no-op.
package mmap
