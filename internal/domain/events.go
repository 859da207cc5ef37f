package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountRegisteredEvent is published after a new account is provisioned.
type AccountRegisteredEvent struct {
	AccountID uuid.UUID `json:"account_id"`
	Email     string    `json:"email"`
	WalletID  string    `json:"wallet_id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// TransferCompletedEvent is published after a transfer commits. It carries no
// PIN or OTP material.
type TransferCompletedEvent struct {
	TransactionID     uuid.UUID `json:"transaction_id"`
	SenderAccountID   uuid.UUID `json:"sender_account_id"`
	ReceiverAccountID uuid.UUID `json:"receiver_account_id"`
	Amount            int64     `json:"amount"`
	Timestamp         time.Time `json:"timestamp"`
}
