// Package auth signs and verifies the session cookie value. The cookie does
// not carry identity: it wraps the opaque session token, which is always
// resolved server-side by the session manager. Signing only guards against
// tampered or expired cookie values before the session store is consulted.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/loginbox/loginbox/internal/common"
)

// Claims includes the registered claims plus the opaque session token.
type Claims struct {
	jwt.RegisteredClaims
	SessionToken string
}

// GenerateToken wraps a session token in a signed HS256 JWT that expires
// together with the session.
func GenerateToken(sessionToken string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		SessionToken: sessionToken,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSessionTokenFromToken verifies the signature and expiry and returns the
// embedded session token.
func GetSessionTokenFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.SessionToken == "" {
		return "", common.ErrInvalidToken
	}

	return claims.SessionToken, nil
}
