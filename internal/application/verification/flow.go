package verification

import (
	"context"

	"github.com/go-account-verify/internal/domain"
)

// ExpiryPolicy decides what happens to the owning Account when a flow
// finds its pending record expired at redemption time. The link flow runs
// with DeleteAccount (an expired link voids the whole signup), the OTP
// flow with KeepAccount (the caller can just request a new code).
type ExpiryPolicy int

const (
	KeepAccount ExpiryPolicy = iota
	DeleteAccount
)

// accountStore is what a flow needs from the accounts table: flip the
// verified flag on success, remove the account on an expiry cascade.
type accountStore interface {
	Update(ctx context.Context, accountID string, updates map[string]interface{}) error
	Delete(ctx context.Context, accountID string) error
}

// mailer is the outbound notifier. Fire-and-forget with a success/failure
// signal; flows never retry a failed send.
type mailer interface {
	SendEmail(to, subject, htmlBody string) error
}

// hasher is the one-way secret hasher shared by both flows.
type hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) (bool, error)
}

const fieldVerified = "verified"

func markVerified(ctx context.Context, accounts accountStore, accountID string) error {
	return accounts.Update(ctx, accountID, map[string]interface{}{fieldVerified: true})
}

// Issuer is the issuance half of a verification flow, used by the account
// service to kick off verification after signup.
type Issuer interface {
	Issue(ctx context.Context, accountID, email string) domain.Outcome
}
