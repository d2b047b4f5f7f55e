package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-account-verify/internal/application/verification"
	"github.com/go-account-verify/internal/domain"
	"github.com/stretchr/testify/assert"
)

// --- fakes backing a real OTPFlow ---

type fakeOTPStore struct {
	rows map[string][]*domain.OTPVerification
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{rows: make(map[string][]*domain.OTPVerification)}
}

func (s *fakeOTPStore) Put(_ context.Context, v *domain.OTPVerification) error {
	s.rows[v.AccountID] = append(s.rows[v.AccountID], v)
	return nil
}

func (s *fakeOTPStore) FirstByAccount(_ context.Context, accountID string) (*domain.OTPVerification, error) {
	rows := s.rows[accountID]
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}

func (s *fakeOTPStore) DeleteAllByAccount(_ context.Context, accountID string) error {
	delete(s.rows, accountID)
	return nil
}

type fakeAccountStore struct {
	verified map[string]bool
	deleted  map[string]bool
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{verified: make(map[string]bool), deleted: make(map[string]bool)}
}

func (s *fakeAccountStore) Update(_ context.Context, accountID string, updates map[string]interface{}) error {
	if v, ok := updates["verified"].(bool); ok {
		s.verified[accountID] = v
	}
	return nil
}

func (s *fakeAccountStore) Delete(_ context.Context, accountID string) error {
	s.deleted[accountID] = true
	return nil
}

// fakeHasher pairs plaintext and digest with a marker prefix so tests can
// mint matching and non-matching digests without bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "h:" + plaintext, nil }
func (fakeHasher) Compare(plaintext, digest string) (bool, error) {
	if len(digest) < 2 || digest[:2] != "h:" {
		return false, errors.New("malformed digest")
	}
	return digest == "h:"+plaintext, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) SendEmail(to, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func newTestOTPHandler(otps *fakeOTPStore, accounts *fakeAccountStore, ml *fakeMailer) *OTPVerifyHandler {
	flow := verification.NewOTPFlow(verification.OTPFlowDeps{
		OTPs:     otps,
		Accounts: accounts,
		Hasher:   fakeHasher{},
		Mailer:   ml,
		OnExpire: verification.KeepAccount,
	})
	return NewOTPVerifyHandler(flow)
}

func seedOTP(otps *fakeOTPStore, accountID, code string, expiresAt time.Time) {
	otps.rows[accountID] = append(otps.rows[accountID], &domain.OTPVerification{
		AccountID: accountID,
		OTPID:     "O1",
		HashedOTP: "h:" + code,
		ExpiresAt: expiresAt.Unix(),
	})
}

// --- Verify ---

func TestVerifyOTPHandler_MissingFields(t *testing.T) {
	h := newTestOTPHandler(newFakeOTPStore(), newFakeAccountStore(), &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/account/verifyOTP", bytes.NewReader([]byte(`{"userId":"A1"}`)))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	out := decodeOutcome(t, rec)
	assert.Equal(t, domain.StatusFailed, out.Status)
	assert.Equal(t, "OTP field is empty", out.Message)
}

func TestVerifyOTPHandler_CorrectCode_VerifiesAndClearsRows(t *testing.T) {
	otps := newFakeOTPStore()
	accounts := newFakeAccountStore()
	seedOTP(otps, "A1", "1234", time.Now().Add(time.Hour))
	h := newTestOTPHandler(otps, accounts, &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/account/verifyOTP", bytes.NewReader([]byte(`{"userId":"A1","otp":"1234"}`)))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	out := decodeOutcome(t, rec)
	assert.Equal(t, domain.StatusVerified, out.Status)
	assert.Equal(t, "User Email verified successfully", out.Message)
	assert.True(t, accounts.verified["A1"])
	assert.Empty(t, otps.rows["A1"])
}

func TestVerifyOTPHandler_WrongCode_LeavesState(t *testing.T) {
	otps := newFakeOTPStore()
	accounts := newFakeAccountStore()
	seedOTP(otps, "A1", "1234", time.Now().Add(time.Hour))
	h := newTestOTPHandler(otps, accounts, &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/account/verifyOTP", bytes.NewReader([]byte(`{"userId":"A1","otp":"9999"}`)))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	out := decodeOutcome(t, rec)
	assert.Equal(t, domain.StatusFailed, out.Status)
	assert.Equal(t, "Invalid OTP. Check your inbox again.", out.Message)
	assert.False(t, accounts.verified["A1"])
	assert.Len(t, otps.rows["A1"], 1)
}

func TestVerifyOTPHandler_Expired_KeepsAccount(t *testing.T) {
	otps := newFakeOTPStore()
	accounts := newFakeAccountStore()
	seedOTP(otps, "A1", "1234", time.Now().Add(-time.Minute))
	h := newTestOTPHandler(otps, accounts, &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/account/verifyOTP", bytes.NewReader([]byte(`{"userId":"A1","otp":"1234"}`)))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	out := decodeOutcome(t, rec)
	assert.Equal(t, domain.StatusFailed, out.Status)
	assert.Equal(t, "Code has expired. Please request again.", out.Message)
	assert.Empty(t, otps.rows["A1"])
	assert.False(t, accounts.deleted["A1"])
}

// --- Resend ---

func TestResendOTPHandler_MissingFields(t *testing.T) {
	h := newTestOTPHandler(newFakeOTPStore(), newFakeAccountStore(), &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/account/resendOTPVerificationCode", bytes.NewReader([]byte(`{"email":"a@b.com"}`)))
	rec := httptest.NewRecorder()
	h.Resend(rec, req)

	out := decodeOutcome(t, rec)
	assert.Equal(t, domain.StatusFailed, out.Status)
	assert.Equal(t, "Empty user details are not allowed", out.Message)
}

func TestResendOTPHandler_InvalidatesOldCode(t *testing.T) {
	otps := newFakeOTPStore()
	accounts := newFakeAccountStore()
	ml := &fakeMailer{}
	seedOTP(otps, "A1", "1234", time.Now().Add(time.Hour))
	h := newTestOTPHandler(otps, accounts, ml)

	req := httptest.NewRequest(http.MethodPost, "/account/resendOTPVerificationCode", bytes.NewReader([]byte(`{"userId":"A1","email":"a@b.com"}`)))
	rec := httptest.NewRecorder()
	h.Resend(rec, req)

	out := decodeOutcome(t, rec)
	assert.Equal(t, domain.StatusPending, out.Status)
	assert.Equal(t, []string{"a@b.com"}, ml.sent)

	// Exactly one fresh row remains and the old code no longer matches it.
	assert.Len(t, otps.rows["A1"], 1)
	assert.NotEqual(t, "h:1234", otps.rows["A1"][0].HashedOTP)
}
