package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r LineReader) []string {
	t.Helper()
	var lines []string
	var buf []byte
	for {
		var err error
		buf, err = r.ReadLine(buf[:0])
		if errors.Is(err, io.EOF) {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, string(buf))
	}
}

func TestFileSource_ReadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\r\nsecond\n\nlast"), 0644))

	src, err := NewFileSource(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	lines := readAll(t, src)
	assert.Equal(t, []string{"first\r\n", "second\n", "\n", "last"}, lines)

	count, err := src.LineCount()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	content, err := src.Content()
	require.NoError(t, err)
	assert.Equal(t, "first\r\nsecond\n\nlast", string(content))
}

func TestFileSource_ReadLineAppends(t *testing.T) {
	src := newReaderSource(strings.NewReader("abc\nd\n"))

	buf, err := src.ReadLine(nil)
	require.NoError(t, err)
	buf, err = src.ReadLine(buf)
	require.NoError(t, err)

	assert.Equal(t, "abc\nd\n", string(buf))
}

func TestFileSource_LongLine(t *testing.T) {
	long := strings.Repeat("x", readBufferSize*3) + "\n"
	src := newReaderSource(strings.NewReader(long + "tail\n"))

	lines := readAll(t, src)
	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[0])
	assert.Equal(t, "tail\n", lines[1])
}

func TestFileSource_Empty(t *testing.T) {
	src := newReaderSource(strings.NewReader(""))

	buf, err := src.ReadLine(nil)
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, buf)
}

func TestFileSource_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := newReaderSource(iotest.ErrReader(boom))

	_, err := src.ReadLine(nil)
	assert.ErrorIs(t, err, boom)
}

func TestFileSource_NoBackingFile(t *testing.T) {
	src := newReaderSource(strings.NewReader("x"))

	_, err := src.Content()
	assert.Error(t, err)
	_, err = src.LineCount()
	assert.Error(t, err)
	assert.NoError(t, src.Close())
}

func TestNewFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
