package retry

import (
	"errors"
	"io/fs"
	"syscall"
)

// FilesystemErrorClassifier implements egrn.ErrorClassifier for local file operations.
// Missing files, permission problems and invalid paths are fatal; busy
// files and interrupted calls are transient.
type FilesystemErrorClassifier struct{}

// NewFilesystemErrorClassifier creates a new filesystem error classifier.
func NewFilesystemErrorClassifier() *FilesystemErrorClassifier {
	return &FilesystemErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *FilesystemErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrExist) || errors.Is(err, fs.ErrInvalid) {
		return false
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}

	switch errno {
	case syscall.EBUSY, syscall.EAGAIN, syscall.EINTR, syscall.ETXTBSY:
		return true
	}
	return isPlatformTransient(errno)
}
