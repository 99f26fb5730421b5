package source

// Line is a single line read from a file, terminator included
type Line struct {
	Content []byte
	Number  int // 1-based line number in the file
}

// LineReader is the core abstraction for reading lines sequentially
type LineReader interface {
	// ReadLine appends the next line, including its terminator, to buf
	// and returns the extended slice. It returns io.EOF once no bytes
	// remain. A final unterminated line is returned with a nil error.
	ReadLine(buf []byte) ([]byte, error)
}
