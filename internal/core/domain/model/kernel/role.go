package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation on an order.
// The engine receives an already-authenticated (actor, role) pair; Role only
// names the capability class, it never carries credentials.
//
// Role is a value object: immutable, comparable, and validated on parse.
type Role string

const (
	// RoleWriter is a writer claiming and working on orders.
	RoleWriter Role = "writer"

	// RoleQC is a quality-control reviewer acting on the shared QC pool.
	RoleQC Role = "qc"

	// RoleAdmin is an operations admin managing assignment and shipment.
	RoleAdmin Role = "admin"

	// RoleSuperAdmin has every admin capability.
	RoleSuperAdmin Role = "super_admin"

	// RoleSystem marks autonomous transitions (offer dispatch, offer expiry).
	RoleSystem Role = "system"
)

// getValidRoles returns the set of roles accepted from callers.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleWriter:     {},
		RoleQC:         {},
		RoleAdmin:      {},
		RoleSuperAdmin: {},
		RoleSystem:     {},
	}
}

// RoleFromString parses a role received from the transport layer.
// Returns an error for unknown role names.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a known role", string(r)),
		)
	}
	return nil
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// IsAdmin reports whether the role carries admin capabilities.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Actor is the trusted identity attached to every operation.
// Authentication happens outside the engine; Actor is accepted as already
// verified and only checked against each operation's required role set.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates a validated Actor from an identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate checks that the actor carries a constructed identity and role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return errs.NewUnauthorizedError("actor identity is missing")
	}
	return a.role.Validate()
}

// Require checks that the actor's role is one of the allowed roles for
// the named action. RoleSuperAdmin passes wherever RoleAdmin does.
// Returns ErrForbidden on a role mismatch. Every command handler funnels
// its role check through here.
func (a Actor) Require(action string, allowed ...Role) error {
	if err := a.Validate(); err != nil {
		return err
	}
	for _, role := range allowed {
		if a.role == role {
			return nil
		}
		if role == RoleAdmin && a.role == RoleSuperAdmin {
			return nil
		}
	}
	return errs.NewForbiddenError(a.role.String(), action)
}
