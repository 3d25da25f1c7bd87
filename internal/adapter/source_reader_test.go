package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linemark/internal/model"
)

func TestLocalSourceReader_Read(t *testing.T) {
	t.Run("reads lines and detects language", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "main.go")
		writeTestFile(t, path, "package main\n\nfunc main() {}\n")

		doc, err := NewLocalSourceReader().Read(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, "main.go", doc.Name)
		assert.Equal(t, "Go", doc.Language)
		assert.Equal(t, []string{"package main", "", "func main() {}"}, doc.Lines)
		assert.Len(t, doc.Hash, 64)
	})

	t.Run("empty path gives scratch document", func(t *testing.T) {
		doc, err := NewLocalSourceReader().Read("")
		require.NoError(t, err)

		assert.Equal(t, []string{m.DefaultContent}, doc.Lines)
		assert.Equal(t, m.DefaultLanguage, doc.Language)
		assert.Empty(t, doc.Hash)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalSourceReader().Read(m.Path(filepath.Join(t.TempDir(), "nope.js")))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := NewLocalSourceReader().Read(m.Path(t.TempDir()))
		assert.Error(t, err)
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitLines(tt.in), "SplitLines(%q)", tt.in)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
