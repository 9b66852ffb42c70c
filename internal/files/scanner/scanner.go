package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/egrn/internal/files/filesystem"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// Scanner discovers input files through a filesystem provider.
// Scanner is safe for concurrent use as long as the provider is.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// RequireDirectory returns an error wrapping egrn.ErrInvalidInput unless
// path is an existing directory. role names the argument in the message.
func (s *Scanner) RequireDirectory(role, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s directory not specified: %w", role, egrn.ErrInvalidInput)
	}
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		return fmt.Errorf("%s directory %s: %v: %w", role, path, err, egrn.ErrInvalidInput)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s path %s is not a directory: %w", role, path, egrn.ErrInvalidInput)
	}
	return nil
}

// FindArchives returns the .zip files (case-insensitive) directly inside dir,
// sorted by name. Subdirectories are not searched.
func (s *Scanner) FindArchives(dir string) ([]string, error) {
	infos, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var archives []string
	for _, info := range infos {
		if info.IsDir() || !HasExt(info.Name(), egrn.ExtZIP) {
			continue
		}
		archives = append(archives, filepath.Join(dir, info.Name()))
	}
	return archives, nil
}

// FindPrefixedXML walks dir recursively and returns .xml files whose name
// starts with prefix. Both checks are case-insensitive.
func (s *Scanner) FindPrefixedXML(dir, prefix string) ([]string, error) {
	root, err := s.fsProvider.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	prefix = strings.ToLower(prefix)
	var found []string
	err = root.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() {
			return nil
		}
		name := file.Info().Name()
		if strings.HasPrefix(strings.ToLower(name), prefix) && HasExt(name, egrn.ExtXML) {
			found = append(found, file.Path())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// HasExt reports whether name ends with ext, ignoring case.
func HasExt(name, ext string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext))
}
