package highlight

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "init with path", err: NewInitError("a.c", cause), want: "cannot open a.c: boom"},
		{name: "init without path", err: NewInitError("", cause), want: "boom"},
		{name: "io with line", err: NewIOError("a.c", 3, cause), want: "io error in a.c at line 3: boom"},
		{name: "highlight", err: NewHighlightError("a.c", 7, cause), want: "highlight error in a.c at line 7: boom"},
		{name: "io without line", err: NewIOError("a.c", 0, cause), want: "io error in a.c: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestError_Kinds(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("running: %w", NewHighlightError("a.c", 1, cause))

	assert.True(t, IsHighlight(wrapped))
	assert.False(t, IsIO(wrapped))
	assert.False(t, IsInit(wrapped))
	assert.False(t, IsInit(cause))

	assert.True(t, IsIO(NewIOError("a.c", 1, cause)))
	assert.True(t, IsInit(NewInitError("a.c", cause)))
	assert.Equal(t, "unknown", Kind(0).String())
}
