package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"taskdesk.io/entities"
)

// IdentityClaims is the full identity payload embedded in every auth token.
// The claims are immutable once signed and are re-derived fresh at each
// login. Workspace carries the resolved workspace name when the issuer had
// one at hand (login); WorkspaceID is the reference used for query scoping.
type IdentityClaims struct {
	UserID      string            `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Email       string            `json:"email"`
	Username    string            `json:"username"`
	Role        entities.UserRole `json:"role"`
	WorkspaceID *string           `json:"workspaceId,omitempty"`
	Workspace   *string           `json:"workspace,omitempty"`

	jwt.RegisteredClaims
}
