package app

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
	"github.com/kudiwallet/wallet-service/internal/store"
)

// fakeRepository is an in-memory store.Repository. Its ExecuteTransfer holds
// the lock for the whole debit/credit/insert sequence, mirroring the
// single-transaction guarantee of the Postgres implementation so concurrency
// properties can be exercised in-process.
type fakeRepository struct {
	mu           sync.Mutex
	accounts     map[uuid.UUID]*domain.Account
	transactions map[uuid.UUID]*domain.Transaction
	seq          int64
}

var _ store.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		accounts:     map[uuid.UUID]*domain.Account{},
		transactions: map[uuid.UUID]*domain.Transaction{},
	}
}

func (f *fakeRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return store.ErrDuplicateEmail
		}
	}
	copied := *account
	f.accounts[account.ID] = &copied
	return nil
}

func (f *fakeRepository) FindAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (f *fakeRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if strings.EqualFold(account.Email, strings.TrimSpace(email)) {
			copied := *account
			return &copied, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

func (f *fakeRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]domain.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		all = append(all, *account)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return []domain.Account{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeRepository) UpdateAccountProfile(ctx context.Context, accountID uuid.UUID, patch domain.UpdateAccountRequest) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	if patch.FullName != nil {
		account.FullName = *patch.FullName
	}
	if patch.PhoneNumber != nil {
		account.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		account.Email = *patch.Email
	}
	if patch.PIN != nil {
		account.PIN = *patch.PIN
	}
	copied := *account
	return &copied, nil
}

func (f *fakeRepository) UpdateAccountPassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok {
		return store.ErrAccountNotFound
	}
	account.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepository) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[accountID]; !ok {
		return store.ErrAccountNotFound
	}
	delete(f.accounts, accountID)
	return nil
}

func (f *fakeRepository) ExecuteTransfer(ctx context.Context, p store.TransferParams) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sender, ok := f.accounts[p.SenderAccountID]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	receiver, ok := f.accounts[p.ReceiverAccountID]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	if sender.Balance < p.Amount {
		return nil, store.ErrInsufficientFunds
	}

	sender.Balance -= p.Amount
	receiver.Balance += p.Amount

	f.seq++
	record := &domain.Transaction{
		ID:                p.TransactionID,
		SenderAccountID:   p.SenderAccountID,
		ReceiverAccountID: p.ReceiverAccountID,
		Amount:            p.Amount,
		PIN:               p.PIN,
		OTP:               p.OTP,
		TransactionType:   p.TransactionType,
		Status:            domain.StatusSuccess,
		CreatedAt:         fakeClock(f.seq),
	}
	f.transactions[record.ID] = record
	copied := *record
	return &copied, nil
}

func (f *fakeRepository) ListTransactionsByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.Transaction, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matching := []domain.Transaction{}
	for _, t := range f.transactions {
		if t.SenderAccountID == accountID || t.ReceiverAccountID == accountID {
			copied := *t
			// Same projection as the SQL query: pin/otp stay in the ledger.
			copied.PIN = ""
			copied.OTP = ""
			matching = append(matching, copied)
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].CreatedAt.After(matching[j].CreatedAt) })

	total := int64(len(matching))
	if offset >= len(matching) {
		return []domain.Transaction{}, total, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], total, nil
}

func (f *fakeRepository) FindTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.transactions[transactionID]
	if !ok {
		return nil, store.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRepository) DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.transactions[transactionID]; !ok {
		return store.ErrTransactionNotFound
	}
	delete(f.transactions, transactionID)
	return nil
}

func (f *fakeRepository) transactionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transactions)
}

func (f *fakeRepository) balance(accountID uuid.UUID) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[accountID].Balance
}
