// Package rename renames single XML or ZIP files after the cadastral number
// they carry.
package rename

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/egrn/internal/archive"
	"github.com/vvka-141/egrn/internal/cadastral"
	"github.com/vvka-141/egrn/internal/files/transfer"
	"github.com/vvka-141/egrn/internal/logging"
	"github.com/vvka-141/egrn/internal/naming"
	"github.com/vvka-141/egrn/pkg/egrn"
)

const (
	reasonUnsupported  = "unsupported file type"
	reasonNoXML        = "no XML member"
	reasonNoIdentifier = "cadastral number not found"
	reasonMalformedXML = "cadastral number not found (malformed XML)"
)

// Renamer renames files in place, in their own directory.
type Renamer struct {
	logger   egrn.Logger
	transfer *transfer.Transfer
}

// Option configures a Renamer.
type Option func(*Renamer)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(logger egrn.Logger) Option {
	return func(r *Renamer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTransfer sets the transfer used for the rename itself.
func WithTransfer(t *transfer.Transfer) Option {
	return func(r *Renamer) {
		if t != nil {
			r.transfer = t
		}
	}
}

// NewRenamer creates a Renamer.
func NewRenamer(opts ...Option) *Renamer {
	r := &Renamer{
		logger:   logging.NewNullLogger(),
		transfer: transfer.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rename renames path to <id><ext> in the same directory, where id is the
// cadastral number found in the file and ext its lower-cased extension.
// When that name is taken, <id>_1<ext>, <id>_2<ext> and so on are tried.
//
// Files that yield no identifier or have an unsupported extension come back
// as RenameSkipped with a nil error and are left untouched. A non-nil error
// means reading or renaming failed; the result is then RenameFailed.
func (r *Renamer) Rename(ctx context.Context, path string) (egrn.RenameResult, error) {
	res := egrn.RenameResult{Source: path, Destination: path}

	ext := strings.ToLower(filepath.Ext(path))
	var (
		data []byte
		err  error
	)
	switch ext {
	case egrn.ExtXML:
		data, err = os.ReadFile(path)
	case egrn.ExtZIP:
		_, data, err = archive.ReadFirstXML(path)
		if errors.Is(err, egrn.ErrNoXMLMember) {
			return skipped(res, reasonNoXML), nil
		}
	default:
		return skipped(res, reasonUnsupported), nil
	}
	if err != nil {
		return failed(res, err), err
	}

	match, found, perr := cadastral.Lookup(data)
	switch {
	case perr != nil:
		r.logger.Verbose("%s: %v", filepath.Base(path), perr)
		return skipped(res, reasonMalformedXML), nil
	case !found:
		return skipped(res, reasonNoIdentifier), nil
	}
	res.Identifier = match.Identifier

	if err := naming.ValidBaseName(match.Identifier); err != nil {
		return skipped(res, err.Error()), nil
	}

	dir := filepath.Dir(path)
	if filepath.Base(path) == match.Identifier+ext {
		res.Status = egrn.RenameUnchanged
		return res, nil
	}

	dst, err := naming.FirstFreePath(dir, match.Identifier, ext)
	if err != nil {
		return failed(res, err), err
	}
	if err := r.transfer.Rename(ctx, path, dst); err != nil {
		return failed(res, err), fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}

	res.Destination = dst
	res.Status = egrn.RenameRenamed
	r.logger.Verbose("%s -> %s", path, dst)
	return res, nil
}

// RenameAll renames each path in order. Errors are folded into RenameFailed
// results. Once ctx is cancelled the remaining paths are reported as failed
// without being touched.
func (r *Renamer) RenameAll(ctx context.Context, paths []string) []egrn.RenameResult {
	results := make([]egrn.RenameResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			results = append(results, failed(egrn.RenameResult{Source: path, Destination: path}, err))
			continue
		}
		res, err := r.Rename(ctx, path)
		if err != nil {
			r.logger.Error("%s: %v", filepath.Base(path), err)
		}
		results = append(results, res)
	}
	return results
}

func skipped(res egrn.RenameResult, reason string) egrn.RenameResult {
	res.Status = egrn.RenameSkipped
	res.Reason = reason
	return res
}

func failed(res egrn.RenameResult, err error) egrn.RenameResult {
	res.Status = egrn.RenameFailed
	res.Reason = err.Error()
	return res
}
