package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vvka-141/egrn/internal/naming"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// OutputSet is the trio of output directories under a target root.
type OutputSet struct {
	ZIP string
	XML string
	PDF string
}

// NewOutputSet returns the output directories for targetRoot.
func NewOutputSet(targetRoot string) OutputSet {
	return OutputSet{
		ZIP: filepath.Join(targetRoot, egrn.ZIPDirName),
		XML: filepath.Join(targetRoot, egrn.XMLDirName),
		PDF: filepath.Join(targetRoot, egrn.PDFDirName),
	}
}

// Ensure creates the output directories. Existing directories are kept.
func (o OutputSet) Ensure() error {
	for _, dir := range []string{o.ZIP, o.XML, o.PDF} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// ZIPPath returns the archive copy destination for base.
func (o OutputSet) ZIPPath(base string) string { return filepath.Join(o.ZIP, base+egrn.ExtZIP) }

// XMLPath returns the XML destination for base.
func (o OutputSet) XMLPath(base string) string { return filepath.Join(o.XML, base+egrn.ExtXML) }

// PDFPath returns the PDF destination for base.
func (o OutputSet) PDFPath(base string) string { return filepath.Join(o.PDF, base+egrn.ExtPDF) }

// taken reports whether any of the three outputs for base exists.
func (o OutputSet) taken(base string) (bool, error) {
	for _, p := range []string{o.ZIPPath(base), o.XMLPath(base), o.PDFPath(base)} {
		exists, err := naming.Exists(p)
		if err != nil || exists {
			return exists, err
		}
	}
	return false, nil
}

// ResolveBase picks the base file name for identifier id under policy.
func (o OutputSet) ResolveBase(id string, policy egrn.CollisionPolicy) (string, error) {
	switch policy {
	case egrn.CollisionOverwrite:
		return id, nil
	case egrn.CollisionError:
		busy, err := o.taken(id)
		if err != nil {
			return "", err
		}
		if busy {
			return "", fmt.Errorf("outputs for %s: %w", id, egrn.ErrOutputExists)
		}
		return id, nil
	default:
		return naming.FirstFree(id, o.taken)
	}
}
