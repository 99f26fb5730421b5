package source

import (
	"bufio"
	"errors"
	"io"

	"github.com/TimelordUK/hilite/internal/index"
	hlio "github.com/TimelordUK/hilite/internal/io"
)

const readBufferSize = 64 * 1024

// FileSource reads lines sequentially from a single file
type FileSource struct {
	file   hlio.File
	reader *bufio.Reader
	path   string
}

// NewFileSource opens path for sequential line reading
func NewFileSource(path string) (*FileSource, error) {
	file, err := hlio.Open(path)
	if err != nil {
		return nil, err
	}

	s := newReaderSource(file.Reader())
	s.file = file
	s.path = path
	return s, nil
}

// newReaderSource reads lines from r with no backing file, so Content
// and LineCount fail until a file is attached
func newReaderSource(r io.Reader) *FileSource {
	return &FileSource{reader: bufio.NewReaderSize(r, readBufferSize)}
}

// ReadLine appends the next line to buf
func (s *FileSource) ReadLine(buf []byte) ([]byte, error) {
	start := len(buf)
	for {
		chunk, err := s.reader.ReadSlice('\n')
		buf = append(buf, chunk...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) && len(buf) > start {
			return buf, nil
		}
		return buf, err
	}
}

// Content returns the whole file
func (s *FileSource) Content() ([]byte, error) {
	if s.file == nil {
		return nil, errors.New("source has no backing file")
	}
	return s.file.ReadRange(0, s.file.Size())
}

// LineCount returns the total number of lines in the file
func (s *FileSource) LineCount() (int, error) {
	if s.file == nil {
		return 0, errors.New("source has no backing file")
	}
	return index.CountLines(s.file, s.file.Size())
}

// Path returns the file path
func (s *FileSource) Path() string {
	return s.path
}

// Close closes the file source
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
