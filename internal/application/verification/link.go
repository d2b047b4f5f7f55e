package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-account-verify/internal/domain"
	"github.com/go-account-verify/internal/pkg/token"
)

// linkTTL is how long a verification link stays redeemable.
const linkTTL = 6 * time.Hour

type linkStore interface {
	Put(ctx context.Context, v *domain.LinkVerification) error
	Get(ctx context.Context, accountID string) (*domain.LinkVerification, error)
	Delete(ctx context.Context, accountID string) error
}

// LinkFlow issues and redeems single-use, time-limited link tokens.
// The plaintext token travels only in the email; the store keeps a hash.
type LinkFlow struct {
	links    linkStore
	accounts accountStore
	hasher   hasher
	mailer   mailer
	appURL   string
	onExpire ExpiryPolicy
}

type LinkFlowDeps struct {
	Links    linkStore
	Accounts accountStore
	Hasher   hasher
	Mailer   mailer
	AppURL   string
	OnExpire ExpiryPolicy
}

func NewLinkFlow(deps LinkFlowDeps) *LinkFlow {
	return &LinkFlow{
		links:    deps.Links,
		accounts: deps.Accounts,
		hasher:   deps.Hasher,
		mailer:   deps.Mailer,
		appURL:   deps.AppURL,
		onExpire: deps.OnExpire,
	}
}

// Issue creates a pending link record for the account and mails the
// redemption URL. The outcome is PENDING on success; every internal
// failure is converted to a FAILED outcome here.
func (f *LinkFlow) Issue(ctx context.Context, accountID, email string) domain.Outcome {
	tok := token.NewLinkToken(accountID)

	digest, err := f.hasher.Hash(tok)
	if err != nil {
		slog.Error("hash link token", "account_id", accountID, "err", err)
		return domain.Failed("An error occured while hashing email data!")
	}

	now := time.Now()
	v := &domain.LinkVerification{
		AccountID:   accountID,
		HashedToken: digest,
		CreatedAt:   now.Unix(),
		ExpiresAt:   now.Add(linkTTL).Unix(),
	}
	if err := f.links.Put(ctx, v); err != nil {
		slog.Error("save link verification", "account_id", accountID, "err", err)
		return domain.Failed("Could not save verification Email data!")
	}

	url := fmt.Sprintf("%s/account/verify/%s/%s", f.appURL, accountID, tok)
	body := fmt.Sprintf(
		`<p>Verify your email address to complete the signup and login into your account.</p><p>This link expires in six hours.</p><p>Press <a href=%q>here</a> to proceed.</p>`,
		url,
	)
	if err := f.mailer.SendEmail(email, "Verify your Email", body); err != nil {
		slog.Error("send verification email", "account_id", accountID, "err", err)
		return domain.Failed("verification Mail Failed!")
	}
	return domain.Pending("Verification Email sent!", nil)
}

// Redeem validates a presented link token against the pending record.
// An expired record is deleted; under the DeleteAccount policy the
// owning account cascades away with it.
func (f *LinkFlow) Redeem(ctx context.Context, accountID, presented string) domain.Outcome {
	v, err := f.links.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Failed("Account record does not exist or has been verified already. Please Signup or Login!")
		}
		slog.Error("look up link verification", "account_id", accountID, "err", err)
		return domain.Failed("An error occured while checking for existing user verification record!")
	}

	if v.ExpiresAt < time.Now().Unix() {
		if err := f.links.Delete(ctx, accountID); err != nil {
			slog.Error("clear expired link verification", "account_id", accountID, "err", err)
			return domain.Failed("An error occured while clearing expired user verification record!")
		}
		if f.onExpire == DeleteAccount {
			if err := f.accounts.Delete(ctx, accountID); err != nil {
				slog.Error("cascade delete account", "account_id", accountID, "err", err)
				return domain.Failed("Clearing user with expired unique string failed!")
			}
		}
		return domain.Failed("Link has expired. Please signup again.")
	}

	ok, err := f.hasher.Compare(presented, v.HashedToken)
	if err != nil {
		slog.Error("compare link token", "account_id", accountID, "err", err)
		return domain.Failed("An error occured while comparing unique strings!")
	}
	if !ok {
		return domain.Failed("Invalid verification details passed. Check your Inbox.")
	}

	if err := markVerified(ctx, f.accounts, accountID); err != nil {
		slog.Error("mark account verified", "account_id", accountID, "err", err)
		return domain.Failed("An error occured while updating user record to show verified.")
	}
	if err := f.links.Delete(ctx, accountID); err != nil {
		// The account is already verified at this point; the stale record
		// stays behind until its TTL clears it.
		slog.Warn("delete redeemed link verification", "account_id", accountID, "err", err)
		return domain.Failed("An error occured while finalizing successful verification!")
	}
	return domain.Verified("User Email verified successfully")
}
