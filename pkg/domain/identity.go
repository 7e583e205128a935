package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level granted to an identity by the platform.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Admin reports whether the role grants access to the administrative area.
func (r Role) Admin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Valid reports whether the role is one the platform issues.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// Identity represents the authenticated principal as returned by the API.
// It is owned by the session controller; views only read it.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// IdentityPatch is a partial identity update. Nil fields are left unchanged.
type IdentityPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Apply shallow-merges the patch into a copy of id and returns it.
func (p IdentityPatch) Apply(id Identity) Identity {
	if p.Name != nil {
		id.Name = *p.Name
	}
	if p.Email != nil {
		id.Email = *p.Email
	}
	return id
}
