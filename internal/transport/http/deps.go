package http

import (
	"context"

	"github.com/go-account-verify/internal/domain"
	"github.com/go-account-verify/internal/infrastructure/smtp"
	"github.com/go-account-verify/internal/pkg/hash"
)

// AccountRepository is the minimal interface the router requires from the
// accounts store.
type AccountRepository interface {
	Put(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, accountID string, updates map[string]interface{}) error
	Delete(ctx context.Context, accountID string) error
}

// LinkVerificationRepository is the minimal interface the router requires
// from the link-verification store.
type LinkVerificationRepository interface {
	Put(ctx context.Context, v *domain.LinkVerification) error
	Get(ctx context.Context, accountID string) (*domain.LinkVerification, error)
	Delete(ctx context.Context, accountID string) error
}

// OTPVerificationRepository is the minimal interface the router requires
// from the otp-verification store.
type OTPVerificationRepository interface {
	Put(ctx context.Context, v *domain.OTPVerification) error
	FirstByAccount(ctx context.Context, accountID string) (*domain.OTPVerification, error)
	DeleteAllByAccount(ctx context.Context, accountID string) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	AccountRepo AccountRepository
	LinkRepo    LinkVerificationRepository
	OTPRepo     OTPVerificationRepository
	Mailer      smtp.Mailer
	Hasher      hash.Hasher
}
