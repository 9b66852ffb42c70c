package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/egrn/pkg/egrn"
)

// maxSuffix bounds the collision search so a misbehaving existence check
// cannot spin forever.
const maxSuffix = 100000

// reservedChars cannot appear in a file name on at least one supported platform.
const reservedChars = `/\<>:"|?*`

// ValidBaseName reports whether name can be used verbatim as a base file name.
func ValidBaseName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%q: %w", name, egrn.ErrUnsafeIdentifier)
	}
	if strings.ContainsAny(name, reservedChars) {
		return fmt.Errorf("%q: %w", name, egrn.ErrUnsafeIdentifier)
	}
	for _, r := range name {
		if r < 0x20 {
			return fmt.Errorf("%q: %w", name, egrn.ErrUnsafeIdentifier)
		}
	}
	return nil
}

// Candidate returns the n-th candidate base name: base for n == 0,
// base_n otherwise.
func Candidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, n)
}

// FirstFree returns the first candidate base name for which taken reports false.
func FirstFree(base string, taken func(candidate string) (bool, error)) (string, error) {
	for n := 0; n <= maxSuffix; n++ {
		candidate := Candidate(base, n)
		busy, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !busy {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free name for %q after %d attempts", base, maxSuffix)
}

// FirstFreePath returns dir/<candidate><ext> for the first candidate that
// does not exist on disk.
func FirstFreePath(dir, base, ext string) (string, error) {
	name, err := FirstFree(base, func(candidate string) (bool, error) {
		return Exists(filepath.Join(dir, candidate+ext))
	})
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+ext), nil
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
