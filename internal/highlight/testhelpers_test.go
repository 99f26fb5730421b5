package highlight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func openSession(t *testing.T, name, content string) *Session {
	t.Helper()
	style, err := LoadDefaultThemes().Get(DefaultTheme)
	require.NoError(t, err)

	sess, err := Open(writeFile(t, name, content), LoadDefaultGrammars(), style)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	return sess
}

func joinTokens(tokens []chroma.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	return b.String()
}
