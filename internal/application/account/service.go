package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-account-verify/internal/application/verification"
	"github.com/go-account-verify/internal/domain"
	"github.com/go-account-verify/internal/pkg/id"
	"github.com/go-account-verify/internal/pkg/validate"
)

// Service orchestrates signup, signin and the verified/unverified state
// of an Account. Both operations return a structured Outcome; internal
// errors never escape the boundary.
type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) domain.Outcome
	Signin(ctx context.Context, req domain.SigninRequest) domain.Outcome
}

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Put(ctx context.Context, a *domain.Account) error
}

type hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) (bool, error)
}

type service struct {
	repo   accountStore
	hasher hasher
	otp    verification.Issuer
}

type ServiceDeps struct {
	AccountRepo accountStore
	Hasher      hasher
	// OTPFlow receives the issuance step after a successful signup. The
	// link flow exists as an alternate issuer but is not wired here.
	OTPFlow verification.Issuer
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:   deps.AccountRepo,
		hasher: deps.Hasher,
		otp:    deps.OTPFlow,
	}
}

// Signup validates the raw fields, rejects duplicate emails, persists an
// unverified account and hands off to the OTP flow's issuance step. The
// duplicate-email check is read-then-write, so a concurrent signup race
// can slip through; see the repo notes on why the store cannot enforce it.
func (s *service) Signup(ctx context.Context, req domain.SignupRequest) domain.Outcome {
	if msg := validate.SignupFields(req.Name, req.Email, req.Password, req.DateOfBirth); msg != "" {
		return domain.Failed(msg)
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return domain.Failed("User with provided email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		slog.Error("check existing account", "email", req.Email, "err", err)
		return domain.Failed("An error occured while checking for existing user!")
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("hash password", "err", err)
		return domain.Failed("Error occured while hashing password!")
	}

	// Already validated by SignupFields.
	dob, _ := validate.ParseDateOfBirth(req.DateOfBirth)

	now := time.Now().UTC()
	a := &domain.Account{
		AccountID:    id.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		DateOfBirth:  dob,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		slog.Error("save account", "email", req.Email, "err", err)
		return domain.Failed("Error occured while saving user account!")
	}

	return s.otp.Issue(ctx, a.AccountID, a.Email)
}

// Signin checks credentials against the stored hash. Unknown emails and
// wrong passwords report distinct messages, and the unverified state is
// revealed before the password check.
func (s *service) Signin(ctx context.Context, req domain.SigninRequest) domain.Outcome {
	if req.Email == "" || req.Password == "" {
		return domain.Failed("Please fill in the credentials.")
	}

	a, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Failed("Invalid credentials entered!")
		}
		slog.Error("look up account", "email", req.Email, "err", err)
		return domain.Failed("An error occured while checking for existing user!")
	}

	if !a.Verified {
		return domain.Failed("Email hasn't been verified yet. Check your inbox.")
	}

	ok, err := s.hasher.Compare(req.Password, a.PasswordHash)
	if err != nil {
		slog.Error("compare password", "account_id", a.AccountID, "err", err)
		return domain.Failed("An error occured while comparing the passwords!")
	}
	if !ok {
		return domain.Failed("Invalid Password entered")
	}
	return domain.Success("Signin Successful", a.Public())
}
