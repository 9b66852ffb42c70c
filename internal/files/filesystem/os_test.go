package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_WalkAndRead(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.xml"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "a.xml"), []byte("a"), 0644))

	p := NewOSFileSystem()
	dir, err := p.Open(root)
	require.NoError(t, err)

	var files []string
	err = dir.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if !f.Info().IsDir() {
			files = append(files, filepath.ToSlash(f.RelativePath()))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.xml", "sub/a.xml"}, files)

	infos, err := p.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	content, err := p.ReadFile(filepath.Join(root, "b.xml"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(content))
}

func TestOSFileSystem_OpenRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.zip")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewOSFileSystem().Open(file)
	assert.Error(t, err)
}
