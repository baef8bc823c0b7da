// Package auth provides JWT validation and rate limiting for the HTTP
// surface.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "mentcare/pkg/errors"
)

// Claims carries the token payload the service cares about
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTValidator verifies bearer tokens signed with a shared HMAC secret
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator with the given secret and expected
// issuer
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Validate parses and verifies a bearer token value (with or without the
// "Bearer " prefix) and returns its claims
func (v *JWTValidator) Validate(tokenValue string) (*Claims, error) {
	tokenValue = strings.TrimPrefix(tokenValue, "Bearer ")
	if tokenValue == "" {
		return nil, pkgerrors.NewUnauthorizedError("missing token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, pkgerrors.NewUnauthorizedError("invalid token")
	}
	if !token.Valid {
		return nil, pkgerrors.NewUnauthorizedError("invalid token")
	}

	return claims, nil
}

// Issue creates a signed token for a user. Used by tests and local tooling;
// production tokens come from the identity provider.
func (v *JWTValidator) Issue(userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
