//go:build unix

package liberror

import "syscall"

const systemCategory = "POSIX"

// systemDescription translates errno through the C library's strerror
// table as exposed by the runtime. Code 0 means "no error was recorded"
// and yields an empty description.
func systemDescription(code Code) string {
	if code == 0 {
		return ""
	}

	return syscall.Errno(code).Error()
}
