package liberror

import (
	"errors"
	"strings"
	"syscall"
)

// SystemError represents a failure reported by the operating system's
// per-thread last-error slot. Its description is resolved through the
// platform's own error-to-text facility at construction time, never
// lazily: the slot is overwritten by the next system operation.
type SystemError struct {
	Base
}

var _ Error = (*SystemError)(nil)

// System builds a SystemError from a known platform error code,
// translating the code to text immediately.
func System(code Code, context string) *SystemError {
	return &SystemError{Base: New(code,
		WithContext(context),
		WithDescription(systemDescription(code)),
	)}
}

// FromSyscall extracts the platform error code carried by the error a
// failing system call returned. The last-error state is fragile: call
// this directly on the failure result, before any further system
// operation. A cause that carries no platform code degrades to code 0
// with the cause's own text as the description.
func FromSyscall(err error, context string) *SystemError {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return System(Code(errno), context)
	}

	e := &SystemError{Base: New(0, WithContext(context))}
	if err != nil {
		e.description = err.Error()
	}

	return e
}

// Category identifies the platform facility that supplied the code.
func (e *SystemError) Category() string { return systemCategory }

func (e *SystemError) Error() string { return e.Render(e) }

// trimMessageTail strips one trailing line terminator, and a preceding
// carriage return if present, from a platform-formatted message.
func trimMessageTail(s string) string {
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
		if strings.HasSuffix(s, "\r") {
			s = s[:len(s)-1]
		}
	}

	return s
}
