/**
 * @description
 * The transfer engine. ExecuteTransfer validates a transfer request, applies
 * the two balance mutations and the ledger insert as one atomic unit, and
 * emits a completion event. Every precondition runs before any mutation;
 * first failure wins.
 */

package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
	"github.com/kudiwallet/wallet-service/internal/store"
)

// otpDigits is the length of the code checked against the sender's registered
// phone number. The code is supplied by the caller and compared against a
// locally derivable value, so it is an integrity checksum rather than an
// out-of-band second factor.
const otpDigits = 3

// deriveOTP returns the expected code for a sender: the last three digits of
// the registered phone number, as a string.
func deriveOTP(phoneNumber string) string {
	digits := make([]rune, 0, len(phoneNumber))
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < otpDigits {
		return string(digits)
	}
	return string(digits[len(digits)-otpDigits:])
}

// resolveTransactionType tags the transfer relative to the authenticated
// caller. Through the HTTP surface the caller is always the sender, but the
// relation is still checked: anything else is an invalid operation.
func resolveTransactionType(callerID, senderID, receiverID uuid.UUID) (string, error) {
	switch callerID {
	case senderID:
		return domain.TransactionSent, nil
	case receiverID:
		return domain.TransactionReceived, nil
	default:
		return "", ErrInvalidTransferParty
	}
}

// ExecuteTransfer moves funds from the caller's account to the receiver and
// records exactly one Success transaction. Validation order (first failure
// wins): existence of both parties, positive amount, no self-transfer,
// sufficient balance, PIN, OTP, minimum threshold. Only then does the store
// apply debit + credit + insert inside a single database transaction, where
// the balance is re-checked under a row lock.
func (s *Service) ExecuteTransfer(ctx context.Context, callerID uuid.UUID, req domain.TransferRequest) (*domain.Transaction, error) {
	senderID := callerID

	sender, err := s.repo.FindAccountByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sender: %w", err)
	}
	receiver, err := s.repo.FindAccountByID(ctx, req.ReceiverAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find receiver: %w", err)
	}

	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if sender.ID == receiver.ID {
		return nil, ErrSelfTransfer
	}
	if sender.Balance < req.Amount {
		return nil, store.ErrInsufficientFunds
	}
	if req.PIN != sender.PIN {
		return nil, ErrInvalidPIN
	}
	if req.OTP != deriveOTP(sender.PhoneNumber) {
		return nil, ErrInvalidOTP
	}
	if req.Amount < s.minTransferAmount {
		return nil, ErrBelowMinimumTransfer
	}

	transactionType, err := resolveTransactionType(callerID, sender.ID, receiver.ID)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.ExecuteTransfer(ctx, store.TransferParams{
		TransactionID:     uuid.New(),
		SenderAccountID:   sender.ID,
		ReceiverAccountID: receiver.ID,
		Amount:            req.Amount,
		PIN:               req.PIN,
		OTP:               req.OTP,
		TransactionType:   transactionType,
	})
	if err != nil {
		return nil, err
	}

	// Best effort; a committed transfer never fails on a publish error.
	if s.eventProducer != nil {
		event := domain.TransferCompletedEvent{
			TransactionID:     record.ID,
			SenderAccountID:   record.SenderAccountID,
			ReceiverAccountID: record.ReceiverAccountID,
			Amount:            record.Amount,
			Timestamp:         time.Now().UTC(),
		}
		if err := s.eventProducer.Publish(ctx, eventsExchange, "transfer.completed", event); err != nil {
			log.Printf("level=warn component=app msg=\"transfer event publish failed\" transaction_id=%s err=%v", record.ID, err)
		}
	}

	return record, nil
}
