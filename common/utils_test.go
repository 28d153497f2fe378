package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lowerHexTest struct {
	s    string
	want bool
}

var lowerHexTests = []lowerHexTest{
	{"", true},
	{"0000", true},
	{"00000", true},
	{"0123456789abcdef", true},
	{"00FF", false},
	{"00gg", false},
	{"0x00", false},
	{"00 00", false},
}

func TestIsLowerHex(t *testing.T) {
	for _, test := range lowerHexTests {
		assert.Equal(t, test.want, IsLowerHex(test.s), "s=%q", test.s)
	}
}
