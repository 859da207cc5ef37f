/**
 * @description
 * HTTP handlers for the transfer engine and the transaction ledger. The
 * sender of a transfer is always the authenticated caller; it is never read
 * from the request body.
 */

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

// CreateTransferHandler executes a balance transfer from the caller to the
// receiver and returns the resulting ledger record.
func (h *WalletHandlers) CreateTransferHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	var req domain.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.ExecuteTransfer(r.Context(), caller.AccountID, req)
	if err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=create_transfer outcome=failed sender_id=%s err=%v", caller.AccountID, err)
		} else {
			log.Printf("level=warn component=api endpoint=create_transfer outcome=reject sender_id=%s reason=%q", caller.AccountID, msg)
		}
		writeError(w, status, msg)
		return
	}

	log.Printf("level=info component=api endpoint=create_transfer outcome=success transaction_id=%s amount=%d", transaction.ID, transaction.Amount)
	writeJSON(w, http.StatusCreated, transaction)
}

// ListTransactionsHandler returns one page of the caller's ledger history.
// Admins may pass account_id to read another account's history.
func (h *WalletHandlers) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
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

	accountID := caller.AccountID
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		accountID, err = uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid account ID")
			return
		}
	}

	result, err := h.service.ListTransactions(r.Context(), caller, accountID, page)
	if err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=list_transactions outcome=failed account_id=%s err=%v", accountID, err)
		}
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DeleteTransactionHandler removes a ledger record after PIN re-verification.
// Only the transaction's sender may delete it.
func (h *WalletHandlers) DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	caller, ok := GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "Could not get caller from context")
		return
	}

	transactionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req domain.DeleteTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), caller.AccountID, transactionID, req.PIN); err != nil {
		status, msg := mapServiceError(err)
		if status == http.StatusInternalServerError {
			log.Printf("level=error component=api endpoint=delete_transaction outcome=failed transaction_id=%s err=%v", transactionID, err)
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction log deleted successfully"})
}
