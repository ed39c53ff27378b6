// Package vardata provides an append-mostly column for variable-length byte
// payloads, addressed by compact 64-bit ids.
//
// Records are staged in an in-memory write buffer and persisted into
// sequentially numbered, size-bounded segment files. Persisted bytes are
// read through read-only memory mappings, so lookups against sealed segments
// are lock-free zero-copy slice reads. The id handed out at insert time
// never changes: flushing persists and remaps bytes but never moves them.
//
// # Quick start
//
//	col := vardata.New("./data/db", "users", "pk")
//	if err := col.Init(); err != nil { ... }
//
//	id, _ := col.InsertString("hello")
//	s, _ := col.GetString(id) // "hello"
//
// # Id layout
//
// An ID packs the segment id into the high 32 bits and the record's start
// offset into the low 32 bits. Offsets address the segment's unified byte
// space: the persisted file contents followed, for the active segment only,
// by the not-yet-flushed buffer.
//
// # Durability and deletion
//
// Buffered records live in memory until the flush threshold (100 000
// records by default) or an explicit Flush persists them; WithSyncOnFlush
// additionally fsyncs on every flush. Delete is a documented no-op: space
// reclamation requires an external compaction mechanism over sealed
// segments.
//
// Concurrent use from multiple goroutines is supported; concurrent access
// to the same files from multiple processes is not.
package vardata
