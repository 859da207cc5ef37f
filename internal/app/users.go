/**
 * @description
 * Account management operations behind the authorization gate: profile
 * lookup, admin listing, typed partial profile updates and deletion.
 */

package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

const defaultAccountPageSize = 10

// GetAccount retrieves an account by id. Both roles may look up accounts.
func (s *Service) GetAccount(ctx context.Context, caller Caller, accountID uuid.UUID) (*domain.Account, error) {
	if err := Authorize(caller, PolicyViewAccount, accountID); err != nil {
		return nil, err
	}
	return s.repo.FindAccountByID(ctx, accountID)
}

// ListAccounts returns one page of all accounts. Admin only.
func (s *Service) ListAccounts(ctx context.Context, caller Caller, page, pageSize int) (*domain.AccountPage, error) {
	if err := Authorize(caller, PolicyListAccounts, uuid.Nil); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultAccountPageSize
	}

	accounts, total, err := s.repo.ListAccounts(ctx, pageSize, pageSize*(page-1))
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return &domain.AccountPage{Accounts: accounts, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateProfile applies a typed partial update to the caller's own profile.
// Identity match is required independent of role; the patch enumerates
// exactly the mutable fields and must carry at least one change.
func (s *Service) UpdateProfile(ctx context.Context, caller Caller, accountID uuid.UUID, patch domain.UpdateAccountRequest) (*domain.Account, error) {
	if err := AuthorizeSelf(caller, accountID); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, ErrEmptyUpdate
	}
	if patch.PIN != nil && !validPIN(*patch.PIN) {
		return nil, ErrInvalidPINFormat
	}
	return s.repo.UpdateAccountProfile(ctx, accountID, patch)
}

// DeleteAccount removes an account. Admins may delete any account; agents
// only their own.
func (s *Service) DeleteAccount(ctx context.Context, caller Caller, accountID uuid.UUID) (*domain.Account, error) {
	if err := Authorize(caller, PolicyDeleteAccount, accountID); err != nil {
		return nil, err
	}
	account, err := s.repo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return account, nil
}

// Profile returns the authenticated caller's own account.
func (s *Service) Profile(ctx context.Context, caller Caller) (*domain.Account, error) {
	return s.repo.FindAccountByID(ctx, caller.AccountID)
}
