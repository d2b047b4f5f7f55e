package token

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkToken_EmbedsAccountID(t *testing.T) {
	tok := NewLinkToken("ACC123")
	assert.True(t, strings.HasSuffix(tok, "ACC123"))
	assert.Greater(t, len(tok), len("ACC123"))
}

func TestNewLinkToken_Unique(t *testing.T) {
	a := NewLinkToken("ACC123")
	b := NewLinkToken("ACC123")
	assert.NotEqual(t, a, b)
}

func TestNewOTP_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp, err := NewOTP()
		require.NoError(t, err)
		require.Len(t, otp, 4)
		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
