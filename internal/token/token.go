// Package token mints and verifies the JWTs issued by the login flow.
// Tokens are signed with HMAC-SHA256 using the process-wide secret from config,
// carry the user's id and role as custom claims, and expire one hour after issuance.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL is how long an issued token stays valid. There is no refresh flow;
// after expiry the user logs in again.
const TTL = time.Hour

// ErrInvalid is returned when a token parses but its claims cannot be trusted.
var ErrInvalid = errors.New("invalid token")

// Claims is the JWT payload. The json tags define the claim names on the wire:
// clients decode {"userId": ..., "role": ...} plus the registered fields
// (exp, iat, jti).
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Sign mints a signed token for the given user.
func Sign(secret string, userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(), // jti: lets logs distinguish otherwise-identical tokens
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies a token's signature and expiry and returns its claims.
// The signing-method check rejects tokens that claim a different algorithm —
// without it an attacker could present an unsigned ("none") token.
func Parse(secret, tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
