package index

import (
	"bytes"
	"io"
)

const chunkSize = 64 * 1024

// CountLines scans size bytes of r and returns the number of lines.
// A final line without a trailing newline still counts; an empty
// input has zero lines.
func CountLines(r io.ReaderAt, size int64) (int, error) {
	if size == 0 {
		return 0, nil
	}

	buf := make([]byte, chunkSize)
	count := 0
	var last byte

	var pos int64
	for pos < size {
		readSize := chunkSize
		if pos+int64(readSize) > size {
			readSize = int(size - pos)
		}

		n, err := r.ReadAt(buf[:readSize], pos)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		if n == 0 {
			break
		}

		pos += int64(n)
	}

	if last != '\n' {
		count++
	}
	return count, nil
}
