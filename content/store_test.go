package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreListFiltersAndSorts(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "posts/b.md", []byte("b"), 0o644))
	require.NoError(t, util.WriteFile(fs, "posts/a.mdx", []byte("a"), 0o644))
	require.NoError(t, util.WriteFile(fs, "posts/C.MD", []byte("c"), 0o644))
	require.NoError(t, util.WriteFile(fs, "posts/notes.txt", []byte("x"), 0o644))
	require.NoError(t, util.WriteFile(fs, "posts/drafts/d.md", []byte("d"), 0o644))

	names, err := NewStore(fs, "posts").List()
	require.NoError(t, err)
	assert.Equal(t, []string{"C.MD", "a.mdx", "b.md"}, names)
}

func TestStoreRead(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "posts/a.md", []byte("hello"), 0o644))

	s := NewStore(fs, "posts")
	data, err := s.Read("a.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = s.Read("missing.md")
	assert.Error(t, err)
}

func TestStoreMissingDirectory(t *testing.T) {
	_, err := NewStore(memfs.New(), "nope").List()
	assert.ErrorIs(t, err, ErrMissingStore)
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "first.md"),
		[]byte("---\ntitle: First\ndate: 2024-01-01\ndescription: d\n---\nbody\n"), 0o644))

	store := NewDirStore(dir)
	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"first.md"}, names)

	c, err := Load(store, ModeProduction)
	require.NoError(t, err)
	post, ok := c.GetPost("first")
	require.True(t, ok)
	assert.Equal(t, "First", post.Meta.Title)
}

func TestDirStoreMissing(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "absent"))
	_, err := store.List()
	assert.ErrorIs(t, err, ErrMissingStore)

	c, err := Load(store, ModeProduction)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
