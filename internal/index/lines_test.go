package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "single terminated", input: "a\n", want: 1},
		{name: "single unterminated", input: "a", want: 1},
		{name: "blank lines", input: "\n\n\n", want: 3},
		{name: "mixed", input: "one\ntwo\nthree", want: 3},
		{name: "crlf", input: "one\r\ntwo\r\n", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountLines(strings.NewReader(tt.input), int64(len(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountLines_SpansChunks(t *testing.T) {
	line := strings.Repeat("x", 1000) + "\n"
	input := strings.Repeat(line, 200)
	require.Greater(t, len(input), chunkSize)

	got, err := CountLines(strings.NewReader(input), int64(len(input)))
	require.NoError(t, err)
	assert.Equal(t, 200, got)
}
