package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-account-verify/internal/application/verification"
	"github.com/go-account-verify/internal/domain"
	"github.com/go-account-verify/internal/pkg/validate"
)

// OTPVerifyHandler handles OTP redemption and resend.
type OTPVerifyHandler struct {
	flow *verification.OTPFlow
}

func NewOTPVerifyHandler(flow *verification.OTPFlow) *OTPVerifyHandler {
	return &OTPVerifyHandler{flow: flow}
}

func (h *OTPVerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		// Same outcome the flow reports for missing fields.
		writeOutcome(w, domain.Failed("OTP field is empty"))
		return
	}
	writeOutcome(w, h.flow.Verify(r.Context(), req.AccountID, req.OTP))
}

func (h *OTPVerifyHandler) Resend(w http.ResponseWriter, r *http.Request) {
	var req domain.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeOutcome(w, domain.Failed("Empty user details are not allowed"))
		return
	}
	writeOutcome(w, h.flow.Resend(r.Context(), req.AccountID, req.Email))
}
