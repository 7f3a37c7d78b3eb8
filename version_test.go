package beerus

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	require.Equal(t, Version, v.Version)
	require.Equal(t, runtime.Version(), v.GoVersion)
	require.Equal(t, runtime.GOOS, v.OS)
	require.Equal(t, runtime.GOARCH, v.Arch)
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "Version:"))
	require.Contains(t, out, Version)
	require.Contains(t, out, runtime.Version())
}
