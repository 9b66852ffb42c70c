//go:build windows

package retry

import "syscall"

const (
	errorAccessDenied     syscall.Errno = 5
	errorSharingViolation syscall.Errno = 32
	errorLockViolation    syscall.Errno = 33
)

// isPlatformTransient treats sharing and lock violations as transient.
// ERROR_ACCESS_DENIED is included because Windows reports it while a
// scanner holds a handle on a file that is being renamed.
func isPlatformTransient(errno syscall.Errno) bool {
	switch errno {
	case errorSharingViolation, errorLockViolation, errorAccessDenied:
		return true
	}
	return false
}
