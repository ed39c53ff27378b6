package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "data.0")

	require.NoError(t, Default.MkdirAll(filepath.Dir(path), 0o755))

	f, err := Default.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	fi, err := Default.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), fi.Size())

	require.NoError(t, Default.Remove(path))
	_, err = Default.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS_FailAfterBytes(t *testing.T) {
	dir := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule("data", Fault{FailAfterBytes: 4})

	f, err := ffs.OpenFile(filepath.Join(dir, "data.0"), os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write([]byte("1234"))
	require.NoError(t, err)

	_, err = f.Write([]byte("5"))
	assert.ErrorIs(t, err, ErrInjected)
}

func TestFaultyFS_FailOnSync(t *testing.T) {
	dir := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule("data", Fault{FailAfterBytes: -1, FailOnSync: true})

	f, err := ffs.OpenFile(filepath.Join(dir, "data.0"), os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write([]byte("ok"))
	require.NoError(t, err)
	assert.ErrorIs(t, f.Sync(), ErrInjected)
}

func TestFaultyFS_UnmatchedFilesPassThrough(t *testing.T) {
	dir := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule("other", Fault{FailAfterBytes: 0})

	f, err := ffs.OpenFile(filepath.Join(dir, "data.0"), os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	_, err = f.Write([]byte("unaffected"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
