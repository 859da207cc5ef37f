package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

func TestGenerateAndParse(t *testing.T) {
	manager := NewManager("test-secret", "wallet-service", time.Hour)
	accountID := uuid.New()

	signed, err := manager.Generate(accountID, domain.RoleAgent, "ada@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := manager.Parse(signed)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.AccountID() != accountID {
		t.Fatalf("expected subject %s, got %s", accountID, claims.AccountID())
	}
	if claims.Role != domain.RoleAgent {
		t.Fatalf("expected role %q, got %q", domain.RoleAgent, claims.Role)
	}
	if claims.Email != "ada@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
}

func TestParseRejections(t *testing.T) {
	manager := NewManager("test-secret", "wallet-service", time.Hour)
	accountID := uuid.New()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage input",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewManager("other-secret", "wallet-service", time.Hour)
				signed, err := other.Generate(accountID, domain.RoleAgent, "ada@example.com")
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return signed
			},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				other := NewManager("test-secret", "someone-else", time.Hour)
				signed, err := other.Generate(accountID, domain.RoleAgent, "ada@example.com")
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return signed
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				expired := NewManager("test-secret", "wallet-service", -time.Minute)
				signed, err := expired.Generate(accountID, domain.RoleAgent, "ada@example.com")
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return signed
			},
		},
		{
			name: "unknown role",
			token: func(t *testing.T) string {
				signed, err := manager.Generate(accountID, domain.Role("superuser"), "ada@example.com")
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := manager.Parse(tt.token(t)); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected %v, got %v", ErrInvalidToken, err)
			}
		})
	}
}
