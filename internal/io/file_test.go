package io

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_RegularIsMapped(t *testing.T) {
	path := writeFile(t, "a\nb\n")

	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.IsType(t, &MappedFile{}, f)
	assert.Equal(t, int64(4), f.Size())
}

func TestOpen_EmptyIsRead(t *testing.T) {
	f, err := Open(writeFile(t, ""))
	require.NoError(t, err)

	assert.IsType(t, &MemFile{}, f)
	assert.Equal(t, int64(0), f.Size())
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.ErrorIs(t, err, ErrIsDirectory)

	_, err = Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestMemFile(t *testing.T) {
	path := writeFile(t, "hello\nworld\n")

	m, err := ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	assert.Equal(t, path, m.Path())
	assert.Equal(t, int64(12), m.Size())

	data, err := m.ReadRange(6, 100)
	require.NoError(t, err)
	assert.Equal(t, "world\n", string(data))

	buf := make([]byte, 5)
	n, err := m.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	all, err := io.ReadAll(m.Reader())
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(all))
}
