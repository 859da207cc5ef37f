/**
 * @description
 * This file defines the transaction ledger record and the transfer DTOs.
 * A Transaction is created only as the side effect of a committed transfer
 * and maps directly to the `transactions` table.
 *
 * @notes
 * - The PIN and OTP submitted with a transfer are persisted on the record but
 *   are never serialized and never returned by history queries.
 * - Amounts are `int64` in whole currency units.
 */

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction status values. A record is only ever inserted after the balance
// mutations committed, so persisted rows carry StatusSuccess.
const (
	StatusPending = "Pending"
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Direction tags for a transaction relative to the authenticated caller.
const (
	TransactionSent     = "sent"
	TransactionReceived = "received"
)

// Transaction is the immutable ledger record of one transfer.
type Transaction struct {
	ID                uuid.UUID `json:"id"`
	SenderAccountID   uuid.UUID `json:"senderAccountId"`
	ReceiverAccountID uuid.UUID `json:"receiverAccountId"`
	Amount            int64     `json:"amount"`
	PIN               string    `json:"-"`
	OTP               string    `json:"-"`
	TransactionType   string    `json:"transactionType"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"timestamp"`
}

// TransferRequest is the DTO for initiating a transfer. The sender is always
// the authenticated caller and is never taken from the request body.
type TransferRequest struct {
	ReceiverAccountID uuid.UUID `json:"receiverAccountId"`
	Amount            int64     `json:"amount"`
	PIN               string    `json:"pin"`
	OTP               string    `json:"otp"`
}

// DeleteTransactionRequest carries the PIN re-verification for a deletion.
type DeleteTransactionRequest struct {
	PIN string `json:"pin"`
}

// TransactionPage is one page of ledger history plus the total matching count,
// so clients can render pagination controls.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
}
