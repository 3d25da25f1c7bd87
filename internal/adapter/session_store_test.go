package adapter

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linemark/internal/model"
)

func TestLocalSessionStore_SaveLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "nested", "a.js"+sessionFileSuffix))
	store := NewSessionStore()

	session := m.Session{Filename: "a.js", In: []int{4, 5, 6}, Out: []int{9}, SourceHash: "abc"}
	require.NoError(t, store.Save(path, session))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), "filename: a.js")
	assert.Contains(t, string(data), "source_hash: abc")

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	leftovers, err := filepath.Glob(filepath.Join(dir, "nested", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestLocalSessionStore_ConcurrentSaves(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "a.js"+sessionFileSuffix))
	store := NewSessionStore()

	const writers = 8

	errs := make(chan error, writers)

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			errs <- store.Save(path, m.Session{Filename: "a.js", In: []int{i + 1}})
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded.In, 1)

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestLocalSessionStore_LoadMissing(t *testing.T) {
	t.Parallel()

	_, err := NewSessionStore().Load(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLocalSessionStore_LoadInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("in: [1, 2\n"), 0o600))

	_, err := NewSessionStore().Load(m.Path(path))
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestSessionPath(t *testing.T) {
	dir := m.Path("/tmp/sessions")

	got := SessionPath(dir, m.Path("src/app/page.tsx"))
	assert.Equal(t, filepath.Join("/tmp/sessions"), filepath.Dir(string(got)))
	assert.True(t, strings.HasPrefix(filepath.Base(string(got)), "page.tsx."))
	assert.True(t, strings.HasSuffix(string(got), sessionFileSuffix))

	t.Run("same base name in different directories", func(t *testing.T) {
		a := SessionPath(dir, m.Path("svc/a/main.go"))
		b := SessionPath(dir, m.Path("svc/b/main.go"))

		assert.NotEqual(t, a, b)
	})

	t.Run("relative and absolute spellings agree", func(t *testing.T) {
		abs, err := filepath.Abs("svc/a/main.go")
		require.NoError(t, err)

		assert.Equal(t, SessionPath(dir, m.Path("svc/a/main.go")), SessionPath(dir, m.Path(abs)))
		assert.Equal(t, SessionPath(dir, m.Path("svc/a/main.go")), SessionPath(dir, m.Path("svc/a/../a/main.go")))
	})
}
