package verification

import (
	"context"

	"github.com/go-account-verify/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockAccountStore struct{ mock.Mock }

func (m *mockAccountStore) Update(ctx context.Context, accountID string, updates map[string]interface{}) error {
	return m.Called(ctx, accountID, updates).Error(0)
}
func (m *mockAccountStore) Delete(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

type mockLinkStore struct{ mock.Mock }

func (m *mockLinkStore) Put(ctx context.Context, v *domain.LinkVerification) error {
	return m.Called(ctx, v).Error(0)
}
func (m *mockLinkStore) Get(ctx context.Context, accountID string) (*domain.LinkVerification, error) {
	args := m.Called(ctx, accountID)
	if v, _ := args.Get(0).(*domain.LinkVerification); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLinkStore) Delete(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

type mockOTPStore struct{ mock.Mock }

func (m *mockOTPStore) Put(ctx context.Context, v *domain.OTPVerification) error {
	return m.Called(ctx, v).Error(0)
}
func (m *mockOTPStore) FirstByAccount(ctx context.Context, accountID string) (*domain.OTPVerification, error) {
	args := m.Called(ctx, accountID)
	if v, _ := args.Get(0).(*domain.OTPVerification); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOTPStore) DeleteAllByAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}
func (m *mockHasher) Compare(plaintext, digest string) (bool, error) {
	args := m.Called(plaintext, digest)
	return args.Bool(0), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}
