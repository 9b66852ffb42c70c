package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/egrn/pkg/egrn"
)

func TestReadFirstXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.zip")
	writeZip(t, path,
		member{"folder/", ""},
		member{"scan.pdf", "%PDF"},
		member{"folder/First.XML", "<a/>"},
		member{"second.xml", "<b/>"},
	)

	name, data, err := ReadFirstXML(path)
	require.NoError(t, err)
	assert.Equal(t, "folder/First.XML", name)
	assert.Equal(t, "<a/>", string(data))
}

func TestReadFirstXML_NoMember(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.zip")
	writeZip(t, path, member{"scan.pdf", "%PDF"})

	_, _, err := ReadFirstXML(path)
	assert.ErrorIs(t, err, egrn.ErrNoXMLMember)
}

func TestReadFirstXML_NotAnArchive(t *testing.T) {
	_, _, err := ReadFirstXML(filepath.Join(t.TempDir(), "missing.zip"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, egrn.ErrNoXMLMember)
}
