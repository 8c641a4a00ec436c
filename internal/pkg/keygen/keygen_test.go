package keygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKey(t *testing.T) {
	first := NewKey()
	second := NewKey()

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, Digest("some-key"), Digest("some-key"))
	assert.NotEqual(t, Digest("some-key"), Digest("other-key"))
	assert.Len(t, Digest("some-key"), 64)
}

func TestDigestTrimsWhitespace(t *testing.T) {
	assert.Equal(t, Digest("some-key"), Digest("  some-key \n"))
}
