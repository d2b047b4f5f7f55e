package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-account-verify/internal/application/verification"
	"github.com/go-account-verify/internal/domain"
)

const verifiedPage = `<!DOCTYPE html>
<html>
<head><title>Email Verified</title></head>
<body>
<h1>Your email has been verified.</h1>
<p>You can now sign in to your account.</p>
</body>
</html>`

// LinkVerifyHandler handles link-token redemption and the verified page.
type LinkVerifyHandler struct {
	flow *verification.LinkFlow
}

func NewLinkVerifyHandler(flow *verification.LinkFlow) *LinkVerifyHandler {
	return &LinkVerifyHandler{flow: flow}
}

// Redeem serves GET /account/verify/{accountID}/{token}. Browser-facing:
// failures redirect to the verified page with the outcome message embedded,
// success renders the page directly.
func (h *LinkVerifyHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	tok := chi.URLParam(r, "token")

	out := h.flow.Redeem(r.Context(), accountID, tok)
	if out.Status != domain.StatusVerified {
		http.Redirect(w, r,
			"/account/verified?error=true&message="+url.QueryEscape(out.Message),
			http.StatusSeeOther)
		return
	}
	h.VerifiedPage(w, r)
}

// VerifiedPage serves GET /account/verified.
func (h *LinkVerifyHandler) VerifiedPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(verifiedPage))
}
