//go:build windows

package liberror

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const systemCategory = "WIN32"

// MAKELANGID(LANG_ENGLISH, SUBLANG_DEFAULT): messages are requested in
// English regardless of the system locale.
const langEnglish = 0x01<<10 | 0x09

// LastError captures GetLastError for the calling thread and translates
// it. Reading the slot is the first thing this function does; do not put
// any call between the failing API and this one.
func LastError(context string) *SystemError {
	var code Code
	if errno, ok := windows.GetLastError().(syscall.Errno); ok {
		code = Code(errno)
	}

	return System(code, context)
}

// systemDescription asks the system to format the message for code. The
// buffer FormatMessage allocates is released on every path, including
// zero-length results.
func systemDescription(code Code) string {
	const flags = windows.FORMAT_MESSAGE_ALLOCATE_BUFFER | windows.FORMAT_MESSAGE_FROM_SYSTEM

	// With FORMAT_MESSAGE_ALLOCATE_BUFFER the buffer argument receives a
	// pointer to a system-allocated buffer, so FormatMessage is handed the
	// storage of buf itself.
	var buf *uint16
	n, err := windows.FormatMessage(flags, 0, uint32(code), langEnglish,
		unsafe.Slice((*uint16)(unsafe.Pointer(&buf)), 4), nil)
	if buf != nil {
		defer windows.LocalFree(windows.Handle(unsafe.Pointer(buf)))
	}
	if err != nil || n == 0 {
		return ""
	}

	return trimMessageTail(windows.UTF16ToString(unsafe.Slice(buf, n)))
}
