/**
 * @description
 * This file provides the PostgreSQL implementation of the `Repository`
 * interface. It contains all SQL for the accounts and transactions tables,
 * including the transfer execution path that applies debit, credit and ledger
 * insert inside one database transaction.
 *
 * @dependencies
 * - context, errors, strings: Standard Go libraries.
 * - github.com/jackc/pgx/v5: The PostgreSQL driver for database operations.
 * - internal/domain: Contains the domain models used for data transfer.
 */

package store

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrUnavailable         = errors.New("store unavailable")
)

const accountColumns = "id, fullname, email, phone_number, balance, pin, wallet_id, password_hash, role, created_at, updated_at"

// PostgresRepository is a concrete implementation of the Repository interface for PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new instance of PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsUnavailable reports whether an error is a connectivity failure rather than
// a caller error. Class 08 covers connection exceptions.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.PhoneNumber,
		&a.Balance,
		&a.PIN,
		&a.WalletID,
		&a.PasswordHash,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// CreateAccount inserts a newly provisioned account.
func (r *PostgresRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, fullname, email, phone_number, balance, pin, wallet_id, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		account.ID,
		account.FullName,
		account.Email,
		account.PhoneNumber,
		account.Balance,
		account.PIN,
		account.WalletID,
		account.PasswordHash,
		account.Role,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// FindAccountByID retrieves an account by its primary key.
func (r *PostgresRepository) FindAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRow(ctx, query, accountID))
}

// FindAccountByEmail retrieves an account by email. Emails are unique and
// matched case-insensitively.
func (r *PostgresRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE lower(email) = lower(btrim($1))`
	return scanAccount(r.db.QueryRow(ctx, query, email))
}

// ListAccounts returns one page of accounts plus the total count.
func (r *PostgresRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(
			&a.ID, &a.FullName, &a.Email, &a.PhoneNumber, &a.Balance,
			&a.PIN, &a.WalletID, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

// UpdateAccountProfile applies a typed partial update. COALESCE keeps the
// stored value where the patch field is NULL.
func (r *PostgresRepository) UpdateAccountProfile(ctx context.Context, accountID uuid.UUID, patch domain.UpdateAccountRequest) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET fullname     = COALESCE($2, fullname),
		    phone_number = COALESCE($3, phone_number),
		    email        = COALESCE($4, email),
		    pin          = COALESCE($5, pin),
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID, patch.FullName, patch.PhoneNumber, patch.Email, patch.PIN))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return account, nil
}

// UpdateAccountPassword stores a new password digest.
func (r *PostgresRepository) UpdateAccountPassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	result, err := r.db.Exec(ctx, `UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, accountID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeleteAccount removes an account permanently.
func (r *PostgresRepository) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ExecuteTransfer applies debit, credit and ledger insert as one database
// transaction. Both account rows are locked FOR UPDATE in deterministic id
// order to avoid deadlocks between crossing transfers, and the sender balance
// is re-checked under the lock so two concurrent transfers can never both
// observe sufficient funds.
func (r *PostgresRepository) ExecuteTransfer(ctx context.Context, p TransferParams) (*domain.Transaction, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	first, second := p.SenderAccountID, p.ReceiverAccountID
	if second.String() < first.String() {
		first, second = second, first
	}

	balances := map[uuid.UUID]int64{}
	for _, id := range []uuid.UUID{first, second} {
		var balance int64
		err = tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, id).Scan(&balance)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, ErrAccountNotFound
			}
			return nil, err
		}
		balances[id] = balance
	}

	if balances[p.SenderAccountID] < p.Amount {
		return nil, ErrInsufficientFunds
	}

	if _, err = tx.Exec(ctx, `UPDATE accounts SET balance = balance - $1, updated_at = NOW() WHERE id = $2`, p.Amount, p.SenderAccountID); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`, p.Amount, p.ReceiverAccountID); err != nil {
		return nil, err
	}

	record := &domain.Transaction{
		ID:                p.TransactionID,
		SenderAccountID:   p.SenderAccountID,
		ReceiverAccountID: p.ReceiverAccountID,
		Amount:            p.Amount,
		PIN:               p.PIN,
		OTP:               p.OTP,
		TransactionType:   p.TransactionType,
		Status:            domain.StatusSuccess,
	}
	insert := `
		INSERT INTO transactions (id, sender_account_id, receiver_account_id, amount, pin, otp, transaction_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err = tx.QueryRow(ctx, insert,
		record.ID,
		record.SenderAccountID,
		record.ReceiverAccountID,
		record.Amount,
		record.PIN,
		record.OTP,
		record.TransactionType,
		record.Status,
	).Scan(&record.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

// ListTransactionsByAccount returns one page of ledger history for an account,
// newest first. The projection deliberately omits the pin and otp columns;
// that authorization material never leaves the ledger once persisted.
func (r *PostgresRepository) ListTransactionsByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.Transaction, int64, error) {
	query := `
		SELECT id, sender_account_id, receiver_account_id, amount, transaction_type, status, created_at
		FROM transactions
		WHERE sender_account_id = $1 OR receiver_account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.SenderAccountID, &t.ReceiverAccountID, &t.Amount, &t.TransactionType, &t.Status, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE sender_account_id = $1 OR receiver_account_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, accountID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// FindTransactionByID retrieves a full ledger record, including the stored
// pin/otp, for ownership checks. Callers must not expose those fields.
func (r *PostgresRepository) FindTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	var t domain.Transaction
	query := `
		SELECT id, sender_account_id, receiver_account_id, amount, pin, otp, transaction_type, status, created_at
		FROM transactions
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&t.ID, &t.SenderAccountID, &t.ReceiverAccountID, &t.Amount,
		&t.PIN, &t.OTP, &t.TransactionType, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction removes a ledger record permanently. No tombstone.
func (r *PostgresRepository) DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
