package reloadgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterWritesNewFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.ld")
	w := new(Writer)
	wrote, err := w.Write(p, []byte("foo = 0x1000;\n"))
	require.NoError(t, err)
	require.True(t, wrote)
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "foo = 0x1000;\n", string(got))
	require.Equal(t, []string{p}, w.Written())
}

func TestWriterSkipsIdenticalContent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.ld")
	require.NoError(t, os.WriteFile(p, []byte("same"), 0o644))
	before, err := os.Stat(p)
	require.NoError(t, err)
	w := new(Writer)
	wrote, err := w.Write(p, []byte("same"))
	require.NoError(t, err)
	require.False(t, wrote)
	require.Empty(t, w.Written())
	require.Equal(t, []string{p}, w.Unchanged())
	after, err := os.Stat(p)
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime())
}

func TestWriterReplacesChangedContent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.ld")
	require.NoError(t, os.WriteFile(p, []byte("old"), 0o644))
	w := new(Writer)
	wrote, err := w.Write(p, []byte("new"))
	require.NoError(t, err)
	require.True(t, wrote)
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

func TestWriterSecondRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}
	first := new(Writer)
	for _, p := range paths {
		_, err := first.Write(p, []byte("content of "+p))
		require.NoError(t, err)
	}
	require.Len(t, first.Written(), 2)
	second := new(Writer)
	for _, p := range paths {
		wrote, err := second.Write(p, []byte("content of "+p))
		require.NoError(t, err)
		require.False(t, wrote)
	}
	require.Empty(t, second.Written())
	require.Len(t, second.Unchanged(), 2)
}
