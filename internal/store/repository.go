/**
 * @description
 * This file defines the `Repository` interface, the contract for all data
 * access required by the wallet service. The interface decouples the business
 * logic from the PostgreSQL implementation and allows app-layer tests to run
 * against an in-memory fake.
 *
 * @dependencies
 * - context: Standard Go library.
 * - github.com/google/uuid: For account and transaction identifiers.
 * - internal/domain: For the service's domain models.
 */

package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

// TransferParams carries everything the store needs to apply one transfer as
// a single atomic unit.
type TransferParams struct {
	TransactionID     uuid.UUID
	SenderAccountID   uuid.UUID
	ReceiverAccountID uuid.UUID
	Amount            int64
	PIN               string
	OTP               string
	TransactionType   string
}

// Repository defines the set of methods for interacting with the database.
type Repository interface {
	// Account methods
	CreateAccount(ctx context.Context, account *domain.Account) error
	FindAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error)
	UpdateAccountProfile(ctx context.Context, accountID uuid.UUID, patch domain.UpdateAccountRequest) (*domain.Account, error)
	UpdateAccountPassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error

	// Transfer engine. Debit, credit and ledger insert commit together or not
	// at all; the sender balance is re-checked under a row lock so concurrent
	// transfers on the same account cannot both pass.
	ExecuteTransfer(ctx context.Context, p TransferParams) (*domain.Transaction, error)

	// Ledger methods
	ListTransactionsByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.Transaction, int64, error)
	FindTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error
}
