package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/egrn/pkg/egrn"
)

// scratch is a private extraction directory owned by one archive.
type scratch struct {
	root string
}

// extracted maps an archive member to its location inside the scratch area.
type extracted struct {
	Name string
	Path string
}

func newScratch(targetRoot string, id uuid.UUID) (*scratch, error) {
	root := filepath.Join(targetRoot, egrn.ScratchDirPrefix+id.String())
	if err := os.Mkdir(root, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch area: %w", err)
	}
	return &scratch{root: root}, nil
}

// Remove deletes the scratch area and everything in it.
func (s *scratch) Remove() error {
	return os.RemoveAll(s.root)
}

// resolve maps a member name to a path inside the scratch root, rejecting
// absolute names and names that climb out of it.
func (s *scratch) resolve(name string) (string, error) {
	clean := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("member %q has an absolute path", name)
	}
	dst := filepath.Join(s.root, clean)
	rel, err := filepath.Rel(s.root, dst)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("member %q escapes extraction directory", name)
	}
	return dst, nil
}

// ExtractAll writes every member of r into the scratch area and returns the
// regular files in archive order.
func (s *scratch) ExtractAll(r *zip.Reader) ([]extracted, error) {
	var files []extracted
	for _, f := range r.File {
		dst, err := s.resolve(f.Name)
		if err != nil {
			return nil, err
		}
		if isDirMember(f) {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return nil, err
			}
			continue
		}
		if err := extractMember(f, dst); err != nil {
			return nil, err
		}
		files = append(files, extracted{Name: f.Name, Path: dst})
	}
	return files, nil
}

func extractMember(f *zip.File, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open member %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("extract member %s: %w", f.Name, err)
	}
	return out.Close()
}
