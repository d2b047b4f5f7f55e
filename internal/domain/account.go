package domain

import "time"

// Account is the root identity record. Verified starts false and flips to
// true exactly once, when a verification flow redeems successfully.
type Account struct {
	AccountID    string    `json:"id" dynamodbav:"account_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Email        string    `json:"email" dynamodbav:"email"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	DateOfBirth  time.Time `json:"date_of_birth" dynamodbav:"date_of_birth"`
	Verified     bool      `json:"verified" dynamodbav:"verified"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

// PublicAccount is the subset of Account returned to callers on signin.
type PublicAccount struct {
	AccountID   string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Verified    bool      `json:"verified"`
}

// Public strips credential material from an Account.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		AccountID:   a.AccountID,
		Name:        a.Name,
		Email:       a.Email,
		DateOfBirth: a.DateOfBirth,
		Verified:    a.Verified,
	}
}

type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"` // expected format: YYYY-MM-DD
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyOTPRequest struct {
	AccountID string `json:"userId" validate:"required"`
	OTP       string `json:"otp" validate:"required"`
}

type ResendOTPRequest struct {
	AccountID string `json:"userId" validate:"required"`
	Email     string `json:"email" validate:"required"`
}
