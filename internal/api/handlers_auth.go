/**
 * @description
 * This file contains the HTTP handlers for registration, login, profile and
 * password management. Handlers parse the request, call the application
 * service and write the response; all business rules live in internal/app.
 *
 * @dependencies
 * - encoding/json, log, net/http: Standard Go libraries.
 * - internal/app, internal/domain: For service logic and models.
 */

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/kudiwallet/wallet-service/internal/app"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

// WalletHandlers holds the application service that handlers will use.
type WalletHandlers struct {
	service *app.Service
}

// NewWalletHandlers creates a new instance of WalletHandlers.
func NewWalletHandlers(service *app.Service) *WalletHandlers {
	return &WalletHandlers{service: service}
}

// RegisterHandler handles new account registration.
func (h *WalletHandlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Register(r.Context(), req)
	if err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=register outcome=failed err=%v", err)
		}
		writeError(w, status, msg)
		return
	}

	log.Printf("level=info component=api endpoint=register outcome=created account_id=%s", account.ID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": account})
}

// LoginHandler authenticates an account and issues a bearer token. Any
// credential mismatch maps to a single unauthorized response.
func (h *WalletHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		status, msg := mapServiceError(err)
		log.Printf("level=error component=api endpoint=login outcome=failed err=%v", err)
		writeError(w, status, msg)
		return
	}
	if result == nil {
		writeError(w, http.StatusUnauthorized, "Invalid login credentials")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ProfileHandler returns the authenticated caller's own account.
func (h *WalletHandlers) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	account, err := h.service.Profile(r.Context(), caller)
	if err != nil {
		status, msg := mapServiceError(err)
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// ChangePasswordHandler rotates the caller's password.
func (h *WalletHandlers) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	var req domain.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(r.Context(), caller.AccountID, req); err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=change_password outcome=failed account_id=%s err=%v", caller.AccountID, err)
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
