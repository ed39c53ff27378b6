// Package fs abstracts the file system operations the column write path
// needs, so tests can inject I/O failures without touching real files.
//
// Reads are not part of the interface: persisted bytes are always accessed
// through a memory mapping, never through a file handle.
package fs
