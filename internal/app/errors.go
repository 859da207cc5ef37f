package app

import "errors"

// Validation failures are caller errors and are surfaced synchronously with no
// retry. The API layer maps each sentinel onto the wire taxonomy: invalid
// request, invalid credential, not found, conflict, insufficient funds,
// unauthorized and invalid operation.
var (
	// InvalidRequest
	ErrInvalidAmount        = errors.New("transfer amount must be a positive number")
	ErrBelowMinimumTransfer = errors.New("transferred amount is below the minimum transfer threshold")
	ErrPasswordRequired     = errors.New("password and confirm password are required")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrSamePassword         = errors.New("new password cannot be the same as old password")
	ErrInvalidPINFormat     = errors.New("pin must be exactly 4 digits")
	ErrMissingFields        = errors.New("required fields are missing")
	ErrEmptyUpdate          = errors.New("update contains no changes")

	// InvalidCredential
	ErrInvalidPIN         = errors.New("invalid pin")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrInvalidOldPassword = errors.New("invalid old password")

	// InvalidOperation
	ErrSelfTransfer         = errors.New("cannot send money to yourself")
	ErrInvalidTransferParty = errors.New("caller is neither sender nor receiver of the transfer")

	// Unauthorized
	ErrForbidden            = errors.New("caller is not permitted to perform this operation")
	ErrNotTransactionSender = errors.New("only the sender may delete this transaction")
)
