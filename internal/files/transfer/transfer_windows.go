//go:build windows

package transfer

import "syscall"

// ERROR_NOT_SAME_DEVICE
const errorNotSameDevice syscall.Errno = 17

func isPlatformCrossDevice(errno syscall.Errno) bool {
	return errno == errorNotSameDevice
}
