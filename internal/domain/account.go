/**
 * @description
 * This file defines the account domain model and the request/response DTOs for
 * registration, authentication and profile management. Accounts carry both the
 * identity data and the wallet balance; the balance is stored as an `int64` in
 * whole currency units to avoid floating-point inaccuracies.
 *
 * @notes
 * - The password digest and the transaction PIN never serialize to JSON.
 * - Partial profile updates use a dedicated struct enumerating exactly the
 *   mutable fields; unknown fields are rejected at the decode boundary.
 */

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies an account for authorization purposes.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAgent
}

// Account is a user's identity, security and balance record. It maps directly
// to the `accounts` table.
type Account struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Balance      int64     `json:"balance"`
	PIN          string    `json:"-"`
	WalletID     string    `json:"wallet_id"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the DTO for creating a new account.
type RegisterRequest struct {
	FullName        string `json:"fullname"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	PIN             string `json:"pin"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the DTO for authenticating an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token   string   `json:"token"`
	Account *Account `json:"user"`
}

// ChangePasswordRequest is the DTO for rotating an account password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateAccountRequest enumerates exactly the mutable profile fields. A nil
// pointer means "leave unchanged".
type UpdateAccountRequest struct {
	FullName    *string `json:"fullname,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
	PIN         *string `json:"pin,omitempty"`
}

// Empty reports whether the patch carries no changes.
func (u UpdateAccountRequest) Empty() bool {
	return u.FullName == nil && u.PhoneNumber == nil && u.Email == nil && u.PIN == nil
}

// AccountPage is one page of accounts plus the total matching count.
type AccountPage struct {
	Accounts []Account `json:"users"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}
