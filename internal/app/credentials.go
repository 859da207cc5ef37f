/**
 * @description
 * Registration and authentication. Passwords are stored as bcrypt digests;
 * login failures yield a nil result rather than an error so the boundary
 * layer can translate any mismatch into a single unauthorized response
 * without leaking which part was wrong.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
	"github.com/kudiwallet/wallet-service/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Register provisions a new account. Password and confirmation must both be
// present and equal, the PIN must be four digits, and the email must be
// unique. Wallet id and initial balance come from the injected provisioning
// policy. New accounts default to the agent role.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Account, error) {
	if req.Password == "" || req.ConfirmPassword == "" {
		return nil, ErrPasswordRequired
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.PhoneNumber) == "" {
		return nil, ErrMissingFields
	}
	if !validPIN(req.PIN) {
		return nil, ErrInvalidPINFormat
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Balance:      s.provisioner.InitialBalance(),
		PIN:          req.PIN,
		WalletID:     s.provisioner.WalletID(req.Email),
		PasswordHash: string(hash),
		Role:         domain.RoleAgent,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	if s.eventProducer != nil {
		event := domain.AccountRegisteredEvent{
			AccountID: account.ID,
			Email:     account.Email,
			WalletID:  account.WalletID,
			Role:      account.Role,
			Timestamp: time.Now().UTC(),
		}
		if err := s.eventProducer.Publish(ctx, eventsExchange, "account.registered", event); err != nil {
			log.Printf("level=warn component=app msg=\"registration event publish failed\" account_id=%s err=%v", account.ID, err)
		}
	}

	return account, nil
}

// Login verifies email + password and issues a bearer token. Any mismatch
// (unknown email, wrong password, empty input) returns (nil, nil); only
// infrastructure failures surface as errors.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, nil
	}

	account, err := s.repo.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil
	}

	signed, err := s.tokens.Generate(account.ID, account.Role, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &domain.LoginResult{Token: signed, Account: account}, nil
}

// ChangePassword rotates an account password after verifying the old one.
// Reusing the old password is rejected.
func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, req domain.ChangePasswordRequest) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return ErrPasswordRequired
	}

	account, err := s.repo.FindAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.OldPassword)) != nil {
		return ErrInvalidOldPassword
	}
	if req.OldPassword == req.NewPassword {
		return ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.repo.UpdateAccountPassword(ctx, accountID, string(hash))
}
