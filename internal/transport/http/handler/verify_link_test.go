package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-account-verify/internal/application/verification"
	"github.com/go-account-verify/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLinkStore struct {
	rows map[string]*domain.LinkVerification
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{rows: make(map[string]*domain.LinkVerification)}
}

func (s *fakeLinkStore) Put(_ context.Context, v *domain.LinkVerification) error {
	s.rows[v.AccountID] = v
	return nil
}

func (s *fakeLinkStore) Get(_ context.Context, accountID string) (*domain.LinkVerification, error) {
	if v, ok := s.rows[accountID]; ok {
		return v, nil
	}
	return nil, domain.ErrNotFound
}

func (s *fakeLinkStore) Delete(_ context.Context, accountID string) error {
	delete(s.rows, accountID)
	return nil
}

func newLinkRouter(links *fakeLinkStore, accounts *fakeAccountStore) http.Handler {
	flow := verification.NewLinkFlow(verification.LinkFlowDeps{
		Links:    links,
		Accounts: accounts,
		Hasher:   fakeHasher{},
		Mailer:   &fakeMailer{},
		AppURL:   "http://localhost:3037",
		OnExpire: verification.DeleteAccount,
	})
	h := NewLinkVerifyHandler(flow)

	r := chi.NewRouter()
	r.Get("/account/verify/{accountID}/{token}", h.Redeem)
	r.Get("/account/verified", h.VerifiedPage)
	return r
}

func seedLink(links *fakeLinkStore, accountID, tok string, expiresAt time.Time) {
	links.rows[accountID] = &domain.LinkVerification{
		AccountID:   accountID,
		HashedToken: "h:" + tok,
		ExpiresAt:   expiresAt.Unix(),
	}
}

func TestLinkRedeemHandler_Success_ServesVerifiedPage(t *testing.T) {
	links := newFakeLinkStore()
	accounts := newFakeAccountStore()
	seedLink(links, "A1", "tok", time.Now().Add(time.Hour))

	rec := httptest.NewRecorder()
	newLinkRouter(links, accounts).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/account/verify/A1/tok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "verified")
	assert.True(t, accounts.verified["A1"])
	assert.Empty(t, links.rows)
}

func TestLinkRedeemHandler_InvalidToken_RedirectsWithMessage(t *testing.T) {
	links := newFakeLinkStore()
	accounts := newFakeAccountStore()
	seedLink(links, "A1", "tok", time.Now().Add(time.Hour))

	rec := httptest.NewRecorder()
	newLinkRouter(links, accounts).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/account/verify/A1/wrong", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	assert.Contains(t, loc, "/account/verified?error=true")
	assert.Contains(t, loc, "Invalid+verification+details")
	assert.False(t, accounts.verified["A1"])
}

func TestLinkRedeemHandler_Expired_CascadesAccountDelete(t *testing.T) {
	links := newFakeLinkStore()
	accounts := newFakeAccountStore()
	seedLink(links, "A1", "tok", time.Now().Add(-time.Minute))

	rec := httptest.NewRecorder()
	newLinkRouter(links, accounts).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/account/verify/A1/tok", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "Link+has+expired")
	assert.True(t, accounts.deleted["A1"])
	assert.Empty(t, links.rows)
}

func TestLinkRedeemHandler_NoRecord(t *testing.T) {
	rec := httptest.NewRecorder()
	newLinkRouter(newFakeLinkStore(), newFakeAccountStore()).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/account/verify/A1/tok", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "Account+record+does+not+exist")
}

func TestVerifiedPageHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	newLinkRouter(newFakeLinkStore(), newFakeAccountStore()).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/account/verified", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}
