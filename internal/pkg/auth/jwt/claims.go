package jwt

import "github.com/golang-jwt/jwt"

// Payload is the set of JWT claims this service reads.
// Tokens are issued by the AAELink session service; this service only verifies them.
type Payload struct {
	jwt.StandardClaims

	// ID is the user identifier. Object keys created for a user live under "<ID>/".
	ID string `json:"id"`

	// Role is the user's workspace role, e.g. "member" or "admin".
	Role string `json:"role,omitempty"`
}

// IsAdmin reports whether the holder may act on keys outside their own prefix.
func (p *Payload) IsAdmin() bool {
	return p.Role == RoleAdmin
}
