//go:build !windows

package transfer

import "syscall"

func isPlatformCrossDevice(errno syscall.Errno) bool {
	return false
}
