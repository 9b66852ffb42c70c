package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/egrn/internal/files/scanner"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// firstMember returns the first regular member whose name ends in ext,
// ignoring case, in archive order.
func firstMember(r *zip.Reader, ext string) *zip.File {
	for _, f := range r.File {
		if isDirMember(f) {
			continue
		}
		if scanner.HasExt(f.Name, ext) {
			return f
		}
	}
	return nil
}

func isDirMember(f *zip.File) bool {
	return strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir()
}

// readMember reads a member fully, refusing anything larger than limit bytes.
func readMember(f *zip.File, limit int64) ([]byte, error) {
	if f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("member %s is %d bytes, limit is %d", f.Name, f.UncompressedSize64, limit)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open member %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read member %s: %w", f.Name, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("member %s exceeds %d bytes", f.Name, limit)
	}
	return data, nil
}

// ReadFirstXML opens the archive at path and returns the name and content of
// its first XML member. The archive is closed before ReadFirstXML returns.
// An archive without XML members yields an error wrapping egrn.ErrNoXMLMember.
func ReadFirstXML(path string) (string, []byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", nil, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	m := firstMember(&zr.Reader, egrn.ExtXML)
	if m == nil {
		return "", nil, egrn.ErrNoXMLMember
	}
	data, err := readMember(m, egrn.MaxXMLMemberSize)
	if err != nil {
		return "", nil, err
	}
	return m.Name, data, nil
}
