package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-account-verify/internal/domain"
	"github.com/go-account-verify/internal/pkg/id"
	"github.com/go-account-verify/internal/pkg/token"
)

// otpTTL is how long a one-time code stays redeemable.
const otpTTL = time.Hour

type otpStore interface {
	Put(ctx context.Context, v *domain.OTPVerification) error
	FirstByAccount(ctx context.Context, accountID string) (*domain.OTPVerification, error)
	DeleteAllByAccount(ctx context.Context, accountID string) error
}

// OTPFlow issues and redeems single-use, time-limited numeric codes.
// Unlike the link flow it supports resend, and its expiry policy keeps
// the account so the caller can simply request another code.
type OTPFlow struct {
	otps     otpStore
	accounts accountStore
	hasher   hasher
	mailer   mailer
	onExpire ExpiryPolicy
}

type OTPFlowDeps struct {
	OTPs     otpStore
	Accounts accountStore
	Hasher   hasher
	Mailer   mailer
	OnExpire ExpiryPolicy
}

func NewOTPFlow(deps OTPFlowDeps) *OTPFlow {
	return &OTPFlow{
		otps:     deps.OTPs,
		accounts: deps.Accounts,
		hasher:   deps.Hasher,
		mailer:   deps.Mailer,
		onExpire: deps.OnExpire,
	}
}

// OTPPendingData is the payload returned with a PENDING issue outcome so
// the client knows which account to verify against.
type OTPPendingData struct {
	AccountID string `json:"userId"`
	Email     string `json:"email"`
}

// Issue generates a fresh code, stores its hash and mails the plaintext.
// Every internal error is converted to a FAILED outcome carrying the
// error's message; nothing escapes this boundary.
func (f *OTPFlow) Issue(ctx context.Context, accountID, email string) domain.Outcome {
	code, err := token.NewOTP()
	if err != nil {
		return domain.Failed(err.Error())
	}
	digest, err := f.hasher.Hash(code)
	if err != nil {
		return domain.Failed(err.Error())
	}

	now := time.Now()
	v := &domain.OTPVerification{
		AccountID: accountID,
		OTPID:     id.New(),
		HashedOTP: digest,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(otpTTL).Unix(),
	}
	if err := f.otps.Put(ctx, v); err != nil {
		return domain.Failed(err.Error())
	}

	body := fmt.Sprintf(
		`<p>Enter <b>%s</b> in the app to verify your email address and complete the signup process.</p><p>This code <b>expires in one hour</b>.</p>`,
		code,
	)
	if err := f.mailer.SendEmail(email, "Verify your Email", body); err != nil {
		return domain.Failed(err.Error())
	}
	return domain.Pending("Verification otp email sent", OTPPendingData{AccountID: accountID, Email: email})
}

// Verify checks a presented code against the account's first pending row.
// Expired rows are cleared in bulk; the account itself survives under the
// KeepAccount policy.
func (f *OTPFlow) Verify(ctx context.Context, accountID, otp string) domain.Outcome {
	if accountID == "" || otp == "" {
		return domain.Failed("OTP field is empty")
	}

	v, err := f.otps.FirstByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Failed("Account record does not exist or has been verified already. Please Signup or Login.")
		}
		return domain.Failed(err.Error())
	}

	if v.ExpiresAt < time.Now().Unix() {
		if err := f.otps.DeleteAllByAccount(ctx, accountID); err != nil {
			return domain.Failed(err.Error())
		}
		if f.onExpire == DeleteAccount {
			if err := f.accounts.Delete(ctx, accountID); err != nil {
				return domain.Failed(err.Error())
			}
		}
		return domain.Failed("Code has expired. Please request again.")
	}

	ok, err := f.hasher.Compare(otp, v.HashedOTP)
	if err != nil {
		return domain.Failed(err.Error())
	}
	if !ok {
		return domain.Failed("Invalid OTP. Check your inbox again.")
	}

	if err := markVerified(ctx, f.accounts, accountID); err != nil {
		return domain.Failed(err.Error())
	}
	if err := f.otps.DeleteAllByAccount(ctx, accountID); err != nil {
		slog.Warn("delete redeemed otp rows", "account_id", accountID, "err", err)
		return domain.Failed(err.Error())
	}
	return domain.Verified("User Email verified successfully")
}

// Resend clears any prior codes for the account and issues a fresh one,
// so at most the newest code redeems.
func (f *OTPFlow) Resend(ctx context.Context, accountID, email string) domain.Outcome {
	if accountID == "" || email == "" {
		return domain.Failed("Empty user details are not allowed")
	}
	if err := f.otps.DeleteAllByAccount(ctx, accountID); err != nil {
		return domain.Failed(err.Error())
	}
	return f.Issue(ctx, accountID, email)
}
