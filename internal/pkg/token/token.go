package token

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// NewLinkToken generates the unique string embedded in a verification
// link: a random UUID concatenated with the account id. The UUID carries
// the unguessable part; the account id suffix keeps the string globally
// unique.
func NewLinkToken(accountID string) string {
	return uuid.NewString() + accountID
}

// NewOTP generates a 4-digit numeric code in [1000, 9999] from a
// cryptographically secure source.
func NewOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
