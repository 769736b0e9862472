package models

import "github.com/golang-jwt/jwt/v4"

// SessionClaims is the payload of the stateless session credential. There is
// no server-side revocation list; expiry is the only way a credential dies.
type SessionClaims struct {
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Capabilities []string `json:"caps,omitempty"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) HasCapability(capability string) bool {
	for _, cap := range c.Capabilities {
		if cap == capability {
			return true
		}
	}
	return false
}
