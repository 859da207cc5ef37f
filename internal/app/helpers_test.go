package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
	"github.com/kudiwallet/wallet-service/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

var testEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// fakeClock produces strictly increasing timestamps so ordering assertions
// are deterministic.
func fakeClock(seq int64) time.Time {
	return testEpoch.Add(time.Duration(seq) * time.Second)
}

func newTestService(t *testing.T, repo *fakeRepository) *Service {
	t.Helper()
	tokens := token.NewManager("test-secret", "wallet-service-test", time.Hour)
	provisioner := NewProvisioner(5000, 5000)
	return NewService(repo, tokens, nil, provisioner, DefaultMinTransferAmount)
}

func seedAccount(t *testing.T, repo *fakeRepository, email, phone, pin string, balance int64, role domain.Role) *domain.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash seed password: %v", err)
	}
	account := &domain.Account{
		ID:           uuid.New(),
		FullName:     "Seed Account",
		Email:        email,
		PhoneNumber:  phone,
		Balance:      balance,
		PIN:          pin,
		WalletID:     "abc123def456",
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    testEpoch,
		UpdatedAt:    testEpoch,
	}
	if err := repo.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return account
}
