package io

import (
	"errors"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

var (
	// ErrIsDirectory is returned when the path names a directory
	ErrIsDirectory = errors.New("is a directory")

	// ErrNotRegular is returned by OpenMapped for pipes, devices and
	// other files that cannot be mapped
	ErrNotRegular = errors.New("not a regular file")
)

// MappedFile provides memory-mapped read access to a file
type MappedFile struct {
	reader *mmap.ReaderAt
	size   int64
	path   string
}

// OpenMapped opens a regular file with memory mapping
func OpenMapped(path string) (*MappedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrIsDirectory
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotRegular
	}

	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	return &MappedFile{
		reader: reader,
		size:   int64(reader.Len()),
		path:   path,
	}, nil
}

// ReadAt reads len(p) bytes at offset
func (m *MappedFile) ReadAt(p []byte, off int64) (int, error) {
	return m.reader.ReadAt(p, off)
}

// Size returns the file size
func (m *MappedFile) Size() int64 {
	return m.size
}

// Path returns the file path
func (m *MappedFile) Path() string {
	return m.path
}

// Close closes the memory mapping
func (m *MappedFile) Close() error {
	return m.reader.Close()
}

// Reader returns a sequential reader over the whole mapping.
// Each call starts at offset zero.
func (m *MappedFile) Reader() io.Reader {
	return io.NewSectionReader(m.reader, 0, m.size)
}

// ReadRange reads bytes from start to end
func (m *MappedFile) ReadRange(start, end int64) ([]byte, error) {
	return readRange(m.reader, m.size, start, end)
}

func readRange(r io.ReaderAt, size, start, end int64) ([]byte, error) {
	if end > size {
		end = size
	}
	if start >= end {
		return nil, nil
	}

	buf := make([]byte, end-start)
	_, err := r.ReadAt(buf, start)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf, nil
}
