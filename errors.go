package liberror

import "strings"

// codeBytes is the storage width of Code; the rendered hex segment is
// always 2*codeBytes digits.
const codeBytes = 4

const hexDigits = "0123456789ABCDEF"

// renderFallback is returned when building the message itself fails.
const renderFallback = "<error formatting failed>"

// Base carries the fields shared by every variant: the code, an optional
// static description, an optional context naming the failed operation,
// and the rendered message cache. All fields except the cache are set at
// construction and never change.
type Base struct {
	code        Code
	description string
	context     string

	message string
}

// Option configures a Base during construction.
type Option func(*Base)

// WithContext sets the free-text name of the operation or call site that
// failed.
func WithContext(context string) Option {
	return func(b *Base) { b.context = context }
}

// WithDescription sets the static explanation of what the code means.
func WithDescription(description string) Option {
	return func(b *Base) { b.description = description }
}

// New builds a Base for embedding in a concrete variant.
func New(code Code, opts ...Option) Base {
	b := Base{code: code}
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// FromInfo builds a Base from a declared error identity. Options may
// still attach a context or override the description.
func FromInfo(info ErrorInfo, opts ...Option) Base {
	opts = append([]Option{WithDescription(info.Description)}, opts...)

	return New(info.Code, opts...)
}

// Code returns the numeric code set at construction.
func (b *Base) Code() Code { return b.code }

// Context returns the context text, possibly empty.
func (b *Base) Context() string { return b.context }

// Description returns the description text, possibly empty.
func (b *Base) Description() string { return b.description }

// Render returns the diagnostic string, computing it on the first call
// and caching it for the lifetime of the value. The category comes from
// the concrete variant; Base alone cannot render. The cache fill is not
// synchronized: an instance handed to another goroutine must be rendered
// first.
func (b *Base) Render(c Categorizer) string {
	if b.message == "" {
		b.message = b.build(c.Category())
	}

	return b.message
}

// build assembles CATEGORY[0xHEX]context description. It must not panic:
// any failure degrades to renderFallback instead of raising a second
// error out of error rendering.
func (b *Base) build(category string) (msg string) {
	defer func() {
		if recover() != nil {
			msg = renderFallback
		}
	}()

	var sb strings.Builder
	sb.Grow(len(category) + len(b.context) + len(b.description) + 2*codeBytes + 4)

	sb.WriteString(category)
	sb.WriteString("[0x")
	writeHex(&sb, uint64(b.code), codeBytes)
	sb.WriteString("]")

	if b.context != "" {
		sb.WriteString(b.context)
	}

	if b.description != "" {
		sb.WriteString(" ")
		sb.WriteString(b.description)
	}

	return sb.String()
}

// writeHex renders the low width bytes of v as big-endian uppercase hex,
// two digits per byte.
func writeHex(sb *strings.Builder, v uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		octet := byte(v >> (uint(i) * 8))
		sb.WriteByte(hexDigits[octet>>4])
		sb.WriteByte(hexDigits[octet&0x0F])
	}
}
