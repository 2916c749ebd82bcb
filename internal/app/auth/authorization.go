// Package auth holds the pure authorization predicates gating mutation and
// deletion endpoints. No I/O happens here; callers load the resource first
// and decide on the result.
package auth

import (
	"github.com/mattwebdev/devcamper/internal/app/models"
)

// Actor is the authenticated identity making a request
type Actor struct {
	ID   int64
	Role models.Role
}

// IsAdmin reports whether the actor holds the administrative role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// IsOwner reports whether the actor has rights over a resource owned by
// ownerID: true when the actor is the owner or an admin.
func IsOwner(actor Actor, ownerID int64) bool {
	return actor.ID == ownerID || actor.IsAdmin()
}
