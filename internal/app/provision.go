/**
 * @description
 * Account provisioning policy. Initial balance seeding and wallet-id
 * derivation are explicit, injectable decisions rather than side effects of
 * registration: the balance range comes from configuration (set min == max
 * for a deterministic seed) and the id strategy is a named function.
 */

package app

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strings"
)

const walletIDLength = 12

// Provisioner decides the initial state of a newly registered account.
type Provisioner struct {
	InitialBalanceMin int64
	InitialBalanceMax int64
}

// NewProvisioner normalizes the configured balance range.
func NewProvisioner(min, max int64) Provisioner {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return Provisioner{InitialBalanceMin: min, InitialBalanceMax: max}
}

// InitialBalance draws the seed balance from the configured range, inclusive
// on both ends.
func (p Provisioner) InitialBalance() int64 {
	if p.InitialBalanceMax == p.InitialBalanceMin {
		return p.InitialBalanceMin
	}
	return p.InitialBalanceMin + rand.Int63n(p.InitialBalanceMax-p.InitialBalanceMin+1)
}

// WalletID derives a stable wallet identifier from the account email: the
// first 12 hex characters of its SHA-256 digest.
func (p Provisioner) WalletID(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])[:walletIDLength]
}
