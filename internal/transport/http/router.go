package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-account-verify/internal/application/account"
	"github.com/go-account-verify/internal/application/verification"
	"github.com/go-account-verify/internal/config"
	"github.com/go-account-verify/internal/transport/http/handler"
	appmiddleware "github.com/go-account-verify/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second with a burst of 10 on the credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	linkFlow := verification.NewLinkFlow(verification.LinkFlowDeps{
		Links:    deps.LinkRepo,
		Accounts: deps.AccountRepo,
		Hasher:   deps.Hasher,
		Mailer:   deps.Mailer,
		AppURL:   cfg.AppURL,
		OnExpire: verification.DeleteAccount,
	})
	otpFlow := verification.NewOTPFlow(verification.OTPFlowDeps{
		OTPs:     deps.OTPRepo,
		Accounts: deps.AccountRepo,
		Hasher:   deps.Hasher,
		Mailer:   deps.Mailer,
		OnExpire: verification.KeepAccount,
	})
	accountSvc := account.NewService(account.ServiceDeps{
		AccountRepo: deps.AccountRepo,
		Hasher:      deps.Hasher,
		OTPFlow:     otpFlow,
	})

	healthH := handler.NewHealthHandler()
	accountH := handler.NewAccountHandler(accountSvc)
	linkH := handler.NewLinkVerifyHandler(linkFlow)
	otpH := handler.NewOTPVerifyHandler(otpFlow)

	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/health-check/{action}", healthH.Ping)

	r.Route("/account", func(r chi.Router) {
		r.With(sensitiveRL.Limit).Post("/signup", accountH.Signup)
		r.With(sensitiveRL.Limit).Post("/signin", accountH.Signin)
		r.Get("/verify/{accountID}/{token}", linkH.Redeem)
		r.Get("/verified", linkH.VerifiedPage)
		r.Post("/verifyOTP", otpH.Verify)
		r.Post("/resendOTPVerificationCode", otpH.Resend)
	})

	return r
}
