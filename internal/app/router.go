package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"boxdrop/internal/auth"
)

func NewRouter(h *Handler, tokens *auth.TokenIssuer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", h.HandleHealth)

	r.Route("/box", func(r chi.Router) {
		r.Post("/", h.HandleCreateBox)
		r.Post("/get", h.HandleGetBox)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/otp/request", h.HandleOTPRequest)
		r.Post("/otp/verify", h.HandleOTPVerify)
		r.Post("/admin/login", h.HandleAdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(RequireBroker(tokens))
			r.Get("/session", h.HandleSession)
		})
	})

	return r
}
