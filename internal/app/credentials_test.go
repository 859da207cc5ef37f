package app

import (
	"context"
	"errors"
	"testing"

	"github.com/kudiwallet/wallet-service/internal/domain"
	"github.com/kudiwallet/wallet-service/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func validRegistration() domain.RegisterRequest {
	return domain.RegisterRequest{
		FullName:        "Ada Lovelace",
		Email:           "Ada@Example.com",
		PhoneNumber:     "08031234567",
		PIN:             "1234",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	account, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}

	if account.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", account.Email)
	}
	if account.Role != domain.RoleAgent {
		t.Fatalf("expected default role %q, got %q", domain.RoleAgent, account.Role)
	}
	if account.Balance != 5000 {
		t.Fatalf("expected provisioned balance 5000, got %d", account.Balance)
	}
	if len(account.WalletID) != walletIDLength {
		t.Fatalf("expected %d-char wallet id, got %q", walletIDLength, account.WalletID)
	}
	if account.PasswordHash == "s3cretpass" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cretpass")) != nil {
		t.Fatal("stored hash does not verify the registered password")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.RegisterRequest)
		expectedErr error
	}{
		{name: "missing password", mutate: func(r *domain.RegisterRequest) { r.Password = "" }, expectedErr: ErrPasswordRequired},
		{name: "missing confirmation", mutate: func(r *domain.RegisterRequest) { r.ConfirmPassword = "" }, expectedErr: ErrPasswordRequired},
		{name: "confirmation mismatch", mutate: func(r *domain.RegisterRequest) { r.ConfirmPassword = "different" }, expectedErr: ErrPasswordMismatch},
		{name: "blank name", mutate: func(r *domain.RegisterRequest) { r.FullName = "   " }, expectedErr: ErrMissingFields},
		{name: "blank email", mutate: func(r *domain.RegisterRequest) { r.Email = "" }, expectedErr: ErrMissingFields},
		{name: "blank phone", mutate: func(r *domain.RegisterRequest) { r.PhoneNumber = "" }, expectedErr: ErrMissingFields},
		{name: "short pin", mutate: func(r *domain.RegisterRequest) { r.PIN = "123" }, expectedErr: ErrInvalidPINFormat},
		{name: "long pin", mutate: func(r *domain.RegisterRequest) { r.PIN = "12345" }, expectedErr: ErrInvalidPINFormat},
		{name: "non-numeric pin", mutate: func(r *domain.RegisterRequest) { r.PIN = "12a4" }, expectedErr: ErrInvalidPINFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			svc := newTestService(t, repo)
			req := validRegistration()
			tt.mutate(&req)
			if _, err := svc.Register(context.Background(), req); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), validRegistration()); !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("expected %v, got %v", store.ErrDuplicateEmail, err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)
	account := seedAccount(t, repo, "ada@example.com", "08031234567", "1234", 1000, domain.RoleAgent)

	result, err := svc.Login(context.Background(), domain.LoginRequest{Email: "ada@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if result == nil {
		t.Fatal("expected a login result")
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}
	if result.Account.ID != account.ID {
		t.Fatalf("expected account %s, got %s", account.ID, result.Account.ID)
	}
}

func TestLoginRejections(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)
	seedAccount(t, repo, "ada@example.com", "08031234567", "1234", 1000, domain.RoleAgent)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "nobody@example.com", password: "password123"},
		{name: "wrong password", email: "ada@example.com", password: "wrong"},
		{name: "empty email", email: "", password: "password123"},
		{name: "empty password", email: "ada@example.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Login(context.Background(), domain.LoginRequest{Email: tt.email, Password: tt.password})
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if result != nil {
				t.Fatal("expected nil result on rejected login")
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)
	account := seedAccount(t, repo, "ada@example.com", "08031234567", "1234", 1000, domain.RoleAgent)

	t.Run("wrong old password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), account.ID, domain.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "newpass456"})
		if !errors.Is(err, ErrInvalidOldPassword) {
			t.Fatalf("expected %v, got %v", ErrInvalidOldPassword, err)
		}
	})

	t.Run("same as old", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), account.ID, domain.ChangePasswordRequest{OldPassword: "password123", NewPassword: "password123"})
		if !errors.Is(err, ErrSamePassword) {
			t.Fatalf("expected %v, got %v", ErrSamePassword, err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), account.ID, domain.ChangePasswordRequest{OldPassword: "password123"})
		if !errors.Is(err, ErrPasswordRequired) {
			t.Fatalf("expected %v, got %v", ErrPasswordRequired, err)
		}
	})

	t.Run("successful rotation", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), account.ID, domain.ChangePasswordRequest{OldPassword: "password123", NewPassword: "newpass456"})
		if err != nil {
			t.Fatalf("expected rotation to succeed, got %v", err)
		}
		if result, err := svc.Login(context.Background(), domain.LoginRequest{Email: account.Email, Password: "password123"}); err != nil || result != nil {
			t.Fatalf("old password still accepted (result=%v err=%v)", result, err)
		}
		if result, err := svc.Login(context.Background(), domain.LoginRequest{Email: account.Email, Password: "newpass456"}); err != nil || result == nil {
			t.Fatalf("new password rejected (result=%v err=%v)", result, err)
		}
	})
}
