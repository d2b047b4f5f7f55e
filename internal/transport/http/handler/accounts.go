package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-account-verify/internal/application/account"
	"github.com/go-account-verify/internal/domain"
)

// AccountHandler handles signup and signin.
type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Fields are trimmed here so the validation rules see clean input.
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)

	writeOutcome(w, h.svc.Signup(r.Context(), req))
}

func (h *AccountHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req domain.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)

	writeOutcome(w, h.svc.Signin(r.Context(), req))
}
