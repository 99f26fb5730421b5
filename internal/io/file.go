package io

import (
	"bytes"
	"io"
	"os"
)

// File is read-only random access to the bytes of one file
type File interface {
	io.ReaderAt
	Size() int64
	Path() string
	Reader() io.Reader
	ReadRange(start, end int64) ([]byte, error)
	Close() error
}

var (
	_ File = (*MappedFile)(nil)
	_ File = (*MemFile)(nil)
)

// Open returns a File for path. Regular files with a known size are
// mapped; pipes, character devices and procfs entries report no usable
// size and are read into memory instead.
func Open(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrIsDirectory
	}
	if info.Mode().IsRegular() && info.Size() > 0 {
		return OpenMapped(path)
	}
	return ReadFile(path)
}

// MemFile holds a whole file in memory
type MemFile struct {
	data []byte
	path string
}

// ReadFile reads path to EOF
func ReadFile(path string) (*MemFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &MemFile{data: data, path: path}, nil
}

// ReadAt reads len(p) bytes at offset
func (m *MemFile) ReadAt(p []byte, off int64) (int, error) {
	return bytes.NewReader(m.data).ReadAt(p, off)
}

// Size returns the number of bytes read
func (m *MemFile) Size() int64 {
	return int64(len(m.data))
}

// Path returns the file path
func (m *MemFile) Path() string {
	return m.path
}

// Close is a no-op; the file was closed after reading
func (m *MemFile) Close() error {
	return nil
}

// Reader returns a sequential reader over the contents
func (m *MemFile) Reader() io.Reader {
	return bytes.NewReader(m.data)
}

// ReadRange reads bytes from start to end
func (m *MemFile) ReadRange(start, end int64) ([]byte, error) {
	return readRange(m, m.Size(), start, end)
}
