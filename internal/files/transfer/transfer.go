package transfer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/vvka-141/egrn/internal/retry"
)

const (
	defaultBufSize  = 256 * 1024
	defaultFilePerm = 0o644
	tempPattern     = ".egrn-tmp-*"
)

// Transfer performs atomic copies, moves and renames.
type Transfer struct {
	exec    *retry.Executor
	bufSize int
}

// Option configures a Transfer.
type Option func(*Transfer)

// WithExecutor sets the retry executor used for renames.
func WithExecutor(exec *retry.Executor) Option {
	return func(t *Transfer) {
		if exec != nil {
			t.exec = exec
		}
	}
}

// New creates a Transfer. Without options renames are not retried.
func New(opts ...Option) *Transfer {
	t := &Transfer{
		exec:    retry.NewFilesystemExecutor(0),
		bufSize: defaultBufSize,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Copy copies src to dst atomically, replacing dst if it exists.
// The source modification time is carried over to the copy.
func (t *Transfer) Copy(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: not a regular file", src)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), tempPattern)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriterSize(tmp, t.bufSize)
	if _, err := io.Copy(bw, in); err != nil {
		return fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmpPath, defaultFilePerm)
	_ = os.Chtimes(tmpPath, info.ModTime(), info.ModTime())

	if err := t.Rename(ctx, tmpPath, dst); err != nil {
		return err
	}
	committed = true
	return nil
}

// Move moves src to dst, replacing dst if it exists.
func (t *Transfer) Move(ctx context.Context, src, dst string) error {
	err := t.Rename(ctx, src, dst)
	if err == nil || !isCrossDevice(err) {
		return err
	}

	if err := t.Copy(ctx, src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// Rename renames src to dst, retrying transient failures.
func (t *Transfer) Rename(ctx context.Context, src, dst string) error {
	return t.exec.Execute(ctx, func(context.Context) error {
		return os.Rename(src, dst)
	})
}

func isCrossDevice(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return errno == syscall.EXDEV || isPlatformCrossDevice(errno)
}
