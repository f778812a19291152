// Package liberror provides small, code-tagged error values with lazily
// rendered diagnostics.
//
// Every variant embeds Base, which couples a 32-bit code with an optional
// static description and an optional caller-supplied context naming the
// operation that failed. The diagnostic string
//
//	CATEGORY[0xCODE]context description
//
// is built on the first request and cached for the lifetime of the value,
// so an error that is constructed but never inspected costs nothing to
// format. SystemError captures the operating system's last-error state and
// resolves it through the platform's own message facility: the C library
// strerror table on POSIX systems, FormatMessage on Windows.
package liberror
