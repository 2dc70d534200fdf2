// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the identity claims embedded in issued tokens.
// The email is the subject; it is trusted at issuance time (the password
// boundary lives upstream) and proven by signature at verification time.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying identity tokens.
// Tokens are stateless: validity is a pure function of the token bytes, the
// server secret and the clock. There is no revocation list.
type TokenService interface {
	// Issue signs the supplied claims with the server secret and a fixed
	// one hour validity window.
	Issue(email, name string) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	// Signature and expiry failures are distinct errors here; the HTTP
	// layer collapses both to the same response.
	Verify(token string) (*Claims, error)
}
