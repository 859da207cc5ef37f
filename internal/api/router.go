/**
 * @description
 * This file sets up the HTTP router for the wallet service. It defines the
 * API endpoints, associates them with their corresponding handlers, and
 * applies middleware for logging, panic recovery, timeouts and bearer-token
 * authentication.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kudiwallet/wallet-service/pkg/token"
)

// WalletRoutes creates and returns the router for the wallet service.
func WalletRoutes(h *WalletHandlers, tokens *token.Manager) http.Handler {
	r := chi.NewRouter()

	// Add standard middleware for logging, panic recovery, and timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	// Public authentication endpoints.
	r.Post("/auth/register", h.RegisterHandler)
	r.Post("/auth/login", h.LoginHandler)

	// Group routes that require authentication.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(tokens))

		r.Get("/auth/profile", h.ProfileHandler)
		r.Put("/auth/password", h.ChangePasswordHandler)

		r.Get("/users", h.ListAccountsHandler)
		r.Get("/users/{id}", h.GetAccountHandler)
		r.Patch("/users/{id}", h.UpdateAccountHandler)
		r.Delete("/users/{id}", h.DeleteAccountHandler)

		r.Post("/transactions", h.CreateTransferHandler)
		r.Get("/transactions", h.ListTransactionsHandler)
		r.Delete("/transactions/{id}", h.DeleteTransactionHandler)
	})

	return r
}
