package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

func parseOptionalPositiveInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("value must be a positive integer")
	}
	return value, nil
}

// ListAccountsHandler returns one page of all accounts. Admin role required.
func (h *WalletHandlers) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	page, err := parseOptionalPositiveInt(r.URL.Query().Get("page"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	pageSize, err := parseOptionalPositiveInt(r.URL.Query().Get("pageSize"), 10)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pageSize")
		return
	}

	result, err := h.service.ListAccounts(r.Context(), caller, page, pageSize)
	if err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=list_accounts outcome=failed caller_id=%s err=%v", caller.AccountID, err)
		}
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetAccountHandler returns a single account by id.
func (h *WalletHandlers) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, err := h.service.GetAccount(r.Context(), caller, accountID)
	if err != nil {
		status, msg := mapServiceError(err)
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// UpdateAccountHandler applies a typed partial profile update. Unknown fields
// are rejected at the decode boundary rather than by runtime string matching.
func (h *WalletHandlers) UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	var patch domain.UpdateAccountRequest
	if err := decoder.Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid updates!")
		return
	}

	account, err := h.service.UpdateProfile(r.Context(), caller, accountID, patch)
	if err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=update_account outcome=failed account_id=%s err=%v", accountID, err)
		}
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// DeleteAccountHandler removes an account.
func (h *WalletHandlers) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, err := h.service.DeleteAccount(r.Context(), caller, accountID)
	if err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=delete_account outcome=failed account_id=%s err=%v", accountID, err)
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User %s has been deleted successfully!", account.FullName),
	})
}
