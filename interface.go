package liberror

// Code identifies an error's specific cause within its category. It is 32
// bits wide to match the native last-error width on the supported
// platforms (errno as surfaced through syscalls, DWORD on Windows), so
// the hexadecimal segment of a rendered message is always eight digits.
type Code uint32

// ErrorInfo pairs a code with a fixed description. Declare one per
// distinct error condition and reuse it at every raise site:
//
//	var errTruncated = liberror.ErrorInfo{Code: 0x2001, Description: "archive truncated"}
type ErrorInfo struct {
	Code        Code
	Description string
}

// Categorizer reports the short tag of the error family that produced a
// code. Every concrete variant implements it; Base deliberately does not,
// so a message can only be rendered through a variant.
type Categorizer interface {
	Category() string
}

// Error is the surface shared by all variants.
type Error interface {
	error
	Categorizer
	Code() Code
	Context() string
	Description() string
}
