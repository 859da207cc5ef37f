/**
 * @description
 * This file contains the bearer-token middleware for the HTTP router. It
 * validates the Authorization header, resolves the authenticated caller
 * (account id + role) and places it on the request context. Handlers never
 * see the raw credential.
 *
 * @dependencies
 * - context, net/http, strings: Standard Go libraries.
 * - pkg/token: Token parsing.
 */

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/kudiwallet/wallet-service/internal/app"
	"github.com/kudiwallet/wallet-service/pkg/token"
)

// callerContextKey is a custom type for the context key to avoid collisions.
type callerContextKey string

const authenticatedCallerKey callerContextKey = "authenticatedCaller"

// AuthMiddleware creates a middleware that validates bearer tokens issued by
// the wallet's own token manager.
func AuthMiddleware(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			caller := app.Caller{AccountID: claims.AccountID(), Role: claims.Role}
			ctx := context.WithValue(r.Context(), authenticatedCallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCaller retrieves the authenticated caller from the request context.
func GetCaller(ctx context.Context) (app.Caller, bool) {
	caller, ok := ctx.Value(authenticatedCallerKey).(app.Caller)
	return caller, ok
}
