package harvest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/egrn/internal/files/filesystem"
	"github.com/vvka-141/egrn/pkg/egrn"
)

const protoXML = `<?xml version="1.0" encoding="UTF-8"?>
<Protocol>
  <Stage><URL>https://example.org/a</URL></Stage>
  <Stage><Name>no url here</Name></Stage>
  <Stage><URL>  </URL></Stage>
  <Stage><URL>https://example.org/b</URL><URL>https://example.org/ignored</URL></Stage>
  <Group><Stage><URL>https://example.org/nested</URL></Stage></Group>
</Protocol>`

func TestStageURLs(t *testing.T) {
	urls, err := StageURLs([]byte(protoXML))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org/a", "https://example.org/b"}, urls)
}

func TestStageURLs_NoStages(t *testing.T) {
	urls, err := StageURLs([]byte(`<Protocol><Info/></Protocol>`))
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestStageURLs_Malformed(t *testing.T) {
	_, err := StageURLs([]byte(`<Protocol><Stage>`))
	assert.Error(t, err)
}

func TestHarvestDirectory(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/protocols")
	mfs.AddFile("proto_1.xml", protoXML)
	mfs.AddFile("2024/PROTO_2.XML", `<P><Stage><URL>https://example.org/c</URL></Stage></P>`)
	mfs.AddFile("2024/proto_empty.xml", `<P><Stage/></P>`)
	mfs.AddFile("2024/proto_broken.xml", `<P><Stage>`)
	mfs.AddFile("other.xml", `<P><Stage><URL>https://example.org/skip</URL></Stage></P>`)

	r, err := NewHarvester(mfs, nil).HarvestDirectory(context.Background(), "/protocols")
	require.NoError(t, err)

	assert.Equal(t, 4, r.TotalFiles)
	assert.Equal(t, 2, r.WithURLs)
	assert.Equal(t, 1, r.WithoutURLs)
	assert.Equal(t, []string{"/protocols/2024/proto_broken.xml"}, r.Unreadable)
	assert.Equal(t, []string{
		"https://example.org/c",
		"https://example.org/a",
		"https://example.org/b",
	}, r.URLs)
}

func TestHarvestDirectory_CustomPrefix(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/p")
	mfs.AddFile("proto_1.xml", protoXML)
	mfs.AddFile("stage_1.xml", `<P><Stage><URL>u</URL></Stage></P>`)

	r, err := NewHarvester(mfs, nil).WithPrefix("stage_").HarvestDirectory(context.Background(), "/p")
	require.NoError(t, err)
	assert.Equal(t, []string{"u"}, r.URLs)
}

func TestHarvestDirectory_Errors(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/p")
	mfs.AddFile("readme.txt", "")

	_, err := NewHarvester(mfs, nil).HarvestDirectory(context.Background(), "/missing")
	assert.ErrorIs(t, err, egrn.ErrInvalidInput)

	_, err = NewHarvester(mfs, nil).HarvestDirectory(context.Background(), "/p")
	assert.ErrorIs(t, err, egrn.ErrNothingToDo)
}

func TestHarvestDirectory_Cancelled(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/p")
	mfs.AddFile("proto_1.xml", protoXML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHarvester(mfs, nil).HarvestDirectory(ctx, "/p")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewHarvester_PanicsOnNilFS(t *testing.T) {
	assert.Panics(t, func() { NewHarvester(nil, nil) })
}

func TestWriteCSV_BOMAndCRLF(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"https://example.org/a", "https://example.org/b?x=1,2", `say "hi"`})
	require.NoError(t, err)

	want := "\xef\xbb\xbf" +
		"https://example.org/a\r\n" +
		"\"https://example.org/b?x=1,2\"\r\n" +
		"\"say \"\"hi\"\"\"\r\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	require.NoError(t, WriteCSVFile(path, []string{"https://пример.рф/a"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\xef\xbb\xbfhttps://пример.рф/a\r\n", string(data))
}
