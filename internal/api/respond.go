package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kudiwallet/wallet-service/internal/app"
	"github.com/kudiwallet/wallet-service/internal/store"
)

// writeJSON is a helper for writing JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for writing JSON error responses. Only the
// classified kind and a human-readable reason ever reach the client.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// mapServiceError translates app/store sentinels onto HTTP statuses. Anything
// unrecognized is an internal error; store connectivity failures map to 503
// so clients can retry with backoff.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, store.ErrTransactionNotFound):
		return http.StatusNotFound, "Transaction log not found"
	case errors.Is(err, store.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "Insufficient balance"
	case errors.Is(err, store.ErrDuplicateEmail):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, app.ErrInvalidPIN),
		errors.Is(err, app.ErrInvalidOTP),
		errors.Is(err, app.ErrInvalidOldPassword):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, app.ErrForbidden),
		errors.Is(err, app.ErrNotTransactionSender):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, app.ErrInvalidAmount),
		errors.Is(err, app.ErrBelowMinimumTransfer),
		errors.Is(err, app.ErrSelfTransfer),
		errors.Is(err, app.ErrInvalidTransferParty),
		errors.Is(err, app.ErrPasswordRequired),
		errors.Is(err, app.ErrPasswordMismatch),
		errors.Is(err, app.ErrSamePassword),
		errors.Is(err, app.ErrInvalidPINFormat),
		errors.Is(err, app.ErrMissingFields),
		errors.Is(err, app.ErrEmptyUpdate):
		return http.StatusBadRequest, err.Error()
	}

	if store.IsUnavailable(err) {
		return http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"
	}
	return http.StatusInternalServerError, "Internal server error"
}
