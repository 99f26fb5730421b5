package cli

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_NamedPipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipe.c")
	require.NoError(t, syscall.Mkfifo(path, 0o600))

	done := make(chan error, 1)
	go func() {
		done <- os.WriteFile(path, []byte("int x = 1;\n"), 0o600)
	}()

	out, _, err := execute(t, "p", path)
	require.NoError(t, err)
	require.NoError(t, <-done)

	assert.Equal(t, "int x = 1;\n", ansi.Strip(out))
	idx := strings.Index(out, "int")
	require.GreaterOrEqual(t, idx, 0)
	assert.Contains(t, out[:idx], "\x1b[38;2;")
}

func TestRoot_Procfs(t *testing.T) {
	out, _, err := execute(t, "--color", "never", "-n", "p", "/proc/self/status")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Regexp(t, `^\s*1 Name:`, lines[0])
}
