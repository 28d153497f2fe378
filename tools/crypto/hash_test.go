package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type hashTest struct {
	data      string
	sha256Hex string
}

var hashTests = []hashTest{
	{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"Sam0", "6869620c29345c2606a6848a1c45730e68638badaaf28d25a8f60171af385be4"},
	{"Sam194920", "0000688b7bed299929fb2f5af229d5dacc4bfab1a167e50357570e408e9222a3"},
}

func TestSha256Hex(t *testing.T) {
	for _, test := range hashTests {
		assert.Equal(t, test.sha256Hex, Sha256Hex([]byte(test.data)), "data %q", test.data)
	}
}

func TestHashToInt(t *testing.T) {
	h := HashToInt(Sha256Sum([]byte("Sam0")))
	assert.Equal(t, 255, h.BitLen()) // top hex digit is 6, so 255 significant bits
	assert.Equal(t, "6869620c29345c2606a6848a1c45730e68638badaaf28d25a8f60171af385be4", h.Text(16))

	assert.Zero(t, HashToInt(nil).Sign())
}

func TestKeccak256Hex(t *testing.T) {
	// well known empty input digest of legacy keccak
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", Keccak256Hex(nil))
}
