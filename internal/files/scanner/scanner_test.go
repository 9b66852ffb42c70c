package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/egrn/internal/files/filesystem"
	"github.com/vvka-141/egrn/pkg/egrn"
)

func TestFindArchives_TopLevelOnly(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/in")
	mfs.AddFile("b.ZIP", "")
	mfs.AddFile("a.zip", "")
	mfs.AddFile("notes.txt", "")
	mfs.AddFile("nested/c.zip", "")

	got, err := NewScannerWithFS(mfs).FindArchives("/in")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/in", "a.zip"), filepath.Join("/in", "b.ZIP")}, got)
}

func TestFindPrefixedXML_Recursive(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/docs")
	mfs.AddFile("proto_1.xml", "")
	mfs.AddFile("sub/PROTO_2.XML", "")
	mfs.AddFile("sub/other.xml", "")
	mfs.AddFile("sub/proto_3.txt", "")

	got, err := NewScannerWithFS(mfs).FindPrefixedXML("/docs", egrn.DefaultURLFilePrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"/docs/proto_1.xml", "/docs/sub/PROTO_2.XML"}, got)
}

func TestFindPrefixedXML_MissingDirectory(t *testing.T) {
	_, err := NewScannerWithFS(filesystem.NewMemoryFileSystem("/docs")).FindPrefixedXML("/elsewhere", "proto_")
	assert.Error(t, err)
}

func TestRequireDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.zip")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	s := NewScanner()
	assert.NoError(t, s.RequireDirectory("source", root))

	for _, p := range []string{"", filepath.Join(root, "missing"), file} {
		err := s.RequireDirectory("source", p)
		assert.True(t, errors.Is(err, egrn.ErrInvalidInput), "path %q: %v", p, err)
	}
}

func TestHasExt(t *testing.T) {
	assert.True(t, HasExt("A.XML", ".xml"))
	assert.True(t, HasExt("doc.pdf", ".PDF"))
	assert.False(t, HasExt("xml", ".xml"))
	assert.False(t, HasExt("doc.xml.sig", ".xml"))
}

func TestNewScannerWithFS_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewScannerWithFS(nil) })
}
