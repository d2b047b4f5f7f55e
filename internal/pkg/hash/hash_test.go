package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare_RoundTrip(t *testing.T) {
	h := NewBcrypt()
	digest, err := h.Hash("1234")
	require.NoError(t, err)
	require.NotEqual(t, "1234", digest)

	ok, err := h.Compare("1234", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompare_Mismatch(t *testing.T) {
	h := NewBcrypt()
	digest, err := h.Hash("1234")
	require.NoError(t, err)

	ok, err := h.Compare("5678", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompare_MalformedDigest(t *testing.T) {
	h := NewBcrypt()
	_, err := h.Compare("1234", "not-a-bcrypt-digest")
	require.Error(t, err)
}
