package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexLiteral(t *testing.T) {
	assert.Equal(t, "0x0", HexLiteral(0))
	assert.Equal(t, "0x64", HexLiteral(0x64))
	assert.Equal(t, "0x1A2B3C4D", HexLiteral(0x1A2B3C4D))
	assert.Equal(t, "0xFFFFFFFFFFFFFFFF", HexLiteral(^uint64(0)))

	for _, v := range []uint64{1, 0xABC, 0xDEADBEEF, 1 << 63} {
		lit := HexLiteral(v)
		got, err := strconv.ParseUint(lit[2:], 16, 64)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestStringLiteral(t *testing.T) {
	tests := []struct{ in, want string }{
		{in: "PlayerHP", want: `"PlayerHP"`},
		{in: "", want: `""`},
		{in: `say "hi"`, want: `"say \"hi\""`},
		{in: `C:\game`, want: `"C:\\game"`},
		{in: "a\nb\tc", want: `"a\nb\tc"`},
		{in: "\x01A", want: `"\001A"`},
		{in: "EAX+1C", want: `"EAX+1C"`},
		{in: "ünïcode", want: "\"ünïcode\""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StringLiteral(tt.in), "input %q", tt.in)
	}
}

func TestGetVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = ""
	v, err := GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	Version = "v1.4.2-dirty"
	v, err = GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.4.2-dirty", v)

	Version = "v1"
	_, err = GetVersion()
	assert.Error(t, err)
}
