package main

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/andrewstalin/liberror"
	"github.com/andrewstalin/liberror/internal/config"
	"github.com/andrewstalin/liberror/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(false, false, false)
	os.Exit(m.Run())
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    liberror.Code
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "2", want: 2},
		{in: "13", want: 13},
		{in: "0x35", want: 0x35},
		{in: "0X10", want: 0x10},
		{in: "0xDEADBEEF", want: 0xDEADBEEF},
		{in: "4294967295", want: 0xFFFFFFFF},
		{in: "4294967296", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0x", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseCode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parseCode(%q)", tt.in)
			continue
		}

		require.NoError(t, err, "parseCode(%q)", tt.in)
		assert.Equal(t, tt.want, got, "parseCode(%q)", tt.in)
	}
}

func TestUsageErrorRendering(t *testing.T) {
	e := newUsageError(errBadCode, `parsing "abc"`)

	assert.Equal(t, "ERRSTR", e.Category())
	assert.Equal(t, `ERRSTR[0x00000002]parsing "abc" not a decimal or 0x-prefixed code`, e.Error())
}

func TestRunNoArgs(t *testing.T) {
	var out bytes.Buffer

	err := run(&config.Config{}, nil, &out)
	require.Error(t, err)

	lerr, ok := err.(liberror.Error)
	require.True(t, ok)
	assert.Equal(t, errNoCodes.Code, lerr.Code())
	assert.Empty(t, out.String())
}

func TestRunBadArg(t *testing.T) {
	var out bytes.Buffer

	err := run(&config.Config{}, []string{"2", "abc"}, &out)
	require.Error(t, err)

	lerr, ok := err.(liberror.Error)
	require.True(t, ok)
	assert.Equal(t, errBadCode.Code, lerr.Code())
}

func TestRunRendersCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("expected output is POSIX-specific")
	}

	var out bytes.Buffer

	err := run(&config.Config{Context: "opening file"}, []string{"2"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "POSIX[0x00000002]opening file no such file or directory\n", out.String())
}

func TestRunMultipleCodes(t *testing.T) {
	var out bytes.Buffer

	err := run(&config.Config{}, []string{"1", "0x2"}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[0x00000001]")
	assert.Contains(t, lines[1], "[0x00000002]")
}
