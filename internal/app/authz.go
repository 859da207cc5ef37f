/**
 * @description
 * Declarative authorization gate. Each protected operation declares a Policy:
 * the set of roles permitted to invoke it and whether the caller must own the
 * target resource. Handlers resolve the authenticated caller from the bearer
 * token and the service checks the policy explicitly before delegating.
 */

package app

import (
	"github.com/google/uuid"
	"github.com/kudiwallet/wallet-service/internal/domain"
)

// Caller is the authenticated principal resolved from a bearer credential.
// The core never sees the raw credential.
type Caller struct {
	AccountID uuid.UUID
	Role      domain.Role
}

// Policy declares who may invoke an operation.
type Policy struct {
	Roles     []domain.Role
	OwnerOnly bool
}

// Per-operation policies. Admins have full access to all accounts and
// transactions; agents are restricted to themselves where OwnerOnly is set.
var (
	PolicyListAccounts  = Policy{Roles: []domain.Role{domain.RoleAdmin}}
	PolicyViewAccount   = Policy{Roles: []domain.Role{domain.RoleAdmin, domain.RoleAgent}}
	PolicyDeleteAccount = Policy{Roles: []domain.Role{domain.RoleAdmin, domain.RoleAgent}, OwnerOnly: true}
	PolicyUpdateProfile = Policy{Roles: []domain.Role{domain.RoleAdmin, domain.RoleAgent}, OwnerOnly: true}
	PolicyViewLedger    = Policy{Roles: []domain.Role{domain.RoleAdmin, domain.RoleAgent}, OwnerOnly: true}
)

// Authorize checks the caller's role against the policy's role set and, where
// the policy demands ownership, the caller's identity against the resource
// owner. Admins satisfy ownership for any resource.
func Authorize(caller Caller, policy Policy, ownerID uuid.UUID) error {
	allowed := false
	for _, role := range policy.Roles {
		if caller.Role == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrForbidden
	}
	if policy.OwnerOnly && caller.Role != domain.RoleAdmin && caller.AccountID != ownerID {
		return ErrForbidden
	}
	return nil
}

// AuthorizeSelf enforces an identity match between caller and target resource
// independent of role. Self-service operations (profile update, password
// change) use this in addition to their role policy.
func AuthorizeSelf(caller Caller, ownerID uuid.UUID) error {
	if caller.AccountID != ownerID {
		return ErrForbidden
	}
	return nil
}
