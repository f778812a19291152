package liberror

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hexString(v uint64, width int) string {
	var sb strings.Builder
	writeHex(&sb, v, width)

	return sb.String()
}

func TestWriteHexWidths(t *testing.T) {
	tests := []struct {
		value uint64
		width int
		want  string
	}{
		{0x00, 1, "00"},
		{0x0F, 1, "0F"},
		{0x0001, 2, "0001"},
		{0x00FF, 2, "00FF"},
		{0xBEEF, 2, "BEEF"},
		{0x00000001, 4, "00000001"},
		{0xDEADBEEF, 4, "DEADBEEF"},
		{0xFFFFFFFF, 4, "FFFFFFFF"},
		{0x0123456789ABCDEF, 8, "0123456789ABCDEF"},
	}

	for _, tt := range tests {
		got := hexString(tt.value, tt.width)
		assert.Equal(t, tt.want, got)
		assert.Len(t, got, 2*tt.width)
	}
}

func TestWriteHexComposesMessage(t *testing.T) {
	// The 2-byte shape of the rendering contract, checked against the
	// width-parametrized encoder directly.
	assert.Equal(t, "CAT[0x0001]", "CAT"+"[0x"+hexString(0x0001, 2)+"]")
	assert.Equal(t, "CAT[0x00FF]", "CAT"+"[0x"+hexString(0x00FF, 2)+"]")
}

func TestTrimMessageTail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"access denied", "access denied"},
		{"access denied\n", "access denied"},
		{"access denied\r\n", "access denied"},
		{"access denied\r", "access denied\r"},
		{"access denied\n\n", "access denied\n"},
		{"access denied\r\n\r\n", "access denied\r\n"},
		{"\r\n", ""},
		{"\n", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, trimMessageTail(tt.in))
	}
}
