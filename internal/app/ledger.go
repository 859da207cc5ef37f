/**
 * @description
 * Transaction ledger operations: paginated, privacy-filtered history and
 * authorized deletion. History rows never carry the PIN or OTP stored on the
 * record; the store projection drops them before they leave the ledger.
 */

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
	"github.com/kudiwallet/wallet-service/internal/store"
)

// ListTransactions returns one page of ledger history for an account,
// newest first, plus the total matching count. Pages are 1-indexed with a
// fixed size of ten. Admins may read any account's history; agents only
// their own.
func (s *Service) ListTransactions(ctx context.Context, caller Caller, accountID uuid.UUID, page int) (*domain.TransactionPage, error) {
	if err := Authorize(caller, PolicyViewLedger, accountID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	offset := transactionPageSize * (page - 1)

	transactions, total, err := s.repo.ListTransactionsByAccount(ctx, accountID, transactionPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &domain.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		PageSize:     transactionPageSize,
	}, nil
}

// DeleteTransaction permanently removes a ledger record. The requester's
// stored PIN must match, the record must exist, and only the sender of the
// transaction may delete it.
func (s *Service) DeleteTransaction(ctx context.Context, callerID uuid.UUID, transactionID uuid.UUID, pin string) error {
	requester, err := s.repo.FindAccountByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			// A requester without an account holds no valid PIN.
			return ErrInvalidPIN
		}
		return fmt.Errorf("failed to find requester: %w", err)
	}
	if pin != requester.PIN {
		return ErrInvalidPIN
	}

	transaction, err := s.repo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if transaction.SenderAccountID != callerID {
		return ErrNotTransactionSender
	}

	return s.repo.DeleteTransaction(ctx, transactionID)
}
