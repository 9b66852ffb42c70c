//go:build !windows

package retry

import "syscall"

func isPlatformTransient(errno syscall.Errno) bool {
	return false
}
