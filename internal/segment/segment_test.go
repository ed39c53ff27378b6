package segment

import (
	"path/filepath"
	"testing"

	"github.com/hupe1980/vardata/internal/fs"
	"github.com/hupe1980/vardata/internal/mmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRecord_Framing(t *testing.T) {
	buf := AppendRecord(nil, []byte("hello"))
	buf = AppendRecord(buf, []byte("world!"))
	buf = AppendRecord(buf, nil)

	assert.Len(t, buf, HeaderSize+5+HeaderSize+6+HeaderSize)

	p, err := ReadRecordAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), p)

	p, err = ReadRecordAt(buf, HeaderSize+5)
	require.NoError(t, err)
	assert.Equal(t, []byte("world!"), p)

	p, err = ReadRecordAt(buf, HeaderSize+5+HeaderSize+6)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestReadRecordAt_Bounds(t *testing.T) {
	buf := AppendRecord(nil, []byte("ok"))

	_, err := ReadRecordAt(buf, len(buf))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = ReadRecordAt(buf, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Header readable but the declared payload runs past the end.
	_, err = ReadRecordAt(buf[:HeaderSize+1], 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestReadRecordAt_IndependentCursors(t *testing.T) {
	buf := AppendRecord(nil, []byte("shared"))

	a, err := ReadRecordAt(buf, 0)
	require.NoError(t, err)
	b, err := ReadRecordAt(buf, 0)
	require.NoError(t, err)

	// Copies, not views.
	a[0] = 'X'
	assert.Equal(t, []byte("shared"), b)
	assert.Equal(t, byte('s'), buf[HeaderSize])
}

func TestSegment_OpenAppendRemap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "col.vardata_users_pk.0")

	s, err := Open(fs.Default, path, 0)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, uint32(0), s.ID())
	assert.Equal(t, 0, s.MappedLen())

	data := AppendRecord(nil, []byte("first"))
	data = AppendRecord(data, []byte("second"))
	require.NoError(t, s.Append(fs.Default, data, false))

	// Mapped view lags until remap.
	assert.Equal(t, 0, s.MappedLen())

	size, err := s.Size(fs.Default)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), size)

	require.NoError(t, s.Remap())
	assert.Equal(t, len(data), s.MappedLen())

	p, err := s.ReadRecord(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), p)

	p, err = s.ReadRecord(uint32(HeaderSize + 5))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), p)

	_, err = s.ReadRecord(uint32(len(data)))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	require.NoError(t, s.Advise(mmap.AccessRandom))
}

func TestSegment_OpenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "col.vardata_users_pk.0")

	s, err := Open(fs.Default, path, 0)
	require.NoError(t, err)
	require.NoError(t, s.Append(fs.Default, AppendRecord(nil, []byte("persisted")), true))
	require.NoError(t, s.Close())

	// Reopen maps the already persisted length.
	s2, err := Open(fs.Default, path, 0)
	require.NoError(t, err)
	defer s2.Close()

	assert.Equal(t, HeaderSize+9, s2.MappedLen())
	p, err := s2.ReadRecord(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), p)
}

func TestSegment_AppendFaultPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "col.vardata_users_pk.0")

	s, err := Open(fs.Default, path, 0)
	require.NoError(t, err)
	defer s.Close()

	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("vardata_users_pk", fs.Fault{FailAfterBytes: 0})

	err = s.Append(ffs, AppendRecord(nil, []byte("boom")), false)
	assert.ErrorIs(t, err, fs.ErrInjected)
}
