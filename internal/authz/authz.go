// Package authz is the authorization gate: every operation declares a
// capability Requirement and the gate evaluates it uniformly against the
// resolved caller identity.
package authz

import (
	"context"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/errs"
)

// Requirement is what an operation demands of its caller: a role, ownership
// of the target entity, or both.
type Requirement struct {
	Role      string
	Ownership bool
}

// AdminOnly gates catalog administration.
func AdminOnly() Requirement {
	return Requirement{Role: domain.RoleAdmin}
}

// OwnerOnly gates self-service mutations of an owned entity.
func OwnerOnly() Requirement {
	return Requirement{Ownership: true}
}

// RoleSource resolves a caller's role, usually from the profiles table.
type RoleSource interface {
	Role(ctx context.Context, userID string) (string, error)
}

// Gate evaluates Requirements. Construct one per process and share it.
type Gate struct {
	roles RoleSource
}

func NewGate(roles RoleSource) *Gate {
	return &Gate{roles: roles}
}

// Allow returns nil when callerID satisfies req against the entity owned by
// ownerID. A role-lookup failure and an insufficient role produce the same
// forbidden result, so callers learn nothing about profile existence.
func (g *Gate) Allow(ctx context.Context, req Requirement, callerID, ownerID string, forbiddenMessage string) error {
	if callerID == "" {
		return errs.NewUnauthorizedError("User not authenticated")
	}

	if req.Role != "" {
		role, err := g.roles.Role(ctx, callerID)
		if err != nil || role != req.Role {
			return errs.NewForbiddenError(forbiddenMessage)
		}
	}

	if req.Ownership && callerID != ownerID {
		return errs.NewForbiddenError(forbiddenMessage)
	}

	return nil
}
