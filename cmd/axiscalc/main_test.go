package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calc(t *testing.T, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	require.NoError(t, run(args, &out, &errOut), errOut.String())
	return out.String()
}

func TestOps(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"axisangle", "-axis", "0,1,0", "-angle", "180"}, "0.0000 1.0000 0.0000 0.0000\n"},
		{[]string{"axisangle", "-axis", "0,0,0", "-angle", "90"}, "0.0000 0.0000 0.0000 0.7071\n"},
		{[]string{"lookrot"}, "0.0000 0.0000 0.0000 1.0000\n"},
		{[]string{"angleaxis", "-q", "0,0,0,1"}, "axis 1.0000 0.0000 0.0000 angle 0.0000\n"},
		{[]string{"sphere", "-r", "2", "-yaw", "90"}, "2.0000 0.0000 0.0000\n"},
		{[]string{"cylinder", "-r", "1"}, "0.0000 0.0000 1.0000\n"},
		{[]string{"hsv", "-rgb", "255,0,0"}, "h 0.0000 s 1.0000 v 1.0000\n"},
		{[]string{"rgb", "-hsv", "120,1,1"}, "r 0 g 255 b 0 rgb565 0x07e0\n"},
	}
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			assert.Equal(t, c.want, calc(t, c.args...))
		})
	}
}

func TestMatrixOfZeroQuaternionIsIdentity(t *testing.T) {
	got := calc(t, "matrix", "-q", "0,0,0,0")
	want := "1.0000 0.0000 0.0000 0.0000\n" +
		"0.0000 1.0000 0.0000 0.0000\n" +
		"0.0000 0.0000 1.0000 0.0000\n" +
		"0.0000 0.0000 0.0000 1.0000\n"
	assert.Equal(t, want, got)
}

func TestEulerDirectionOnly(t *testing.T) {
	assert.Equal(t, calc(t, "euler", "-angles", "0,0,2"), calc(t, "euler", "-angles", "0,0,0.5"))
}

func TestErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(nil, &out, &errOut)
	assert.True(t, errors.Is(err, errUsage))
	assert.Contains(t, errOut.String(), "axisangle")

	assert.Error(t, run([]string{"teleport"}, &out, &errOut))
	assert.Error(t, run([]string{"axisangle", "-axis", "1,2"}, &out, &errOut))
	assert.Error(t, run([]string{"hsv", "-rgb", "256,0,0"}, &out, &errOut))
	assert.Error(t, run([]string{"matrix", "-bogus"}, &out, &errOut))
}
