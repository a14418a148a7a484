// Package auth verifies caller bearer credentials. It only validates and
// decodes tokens; issuing them is the account service's job.
package auth

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates HS256-signed bearer tokens against a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates the token and returns the user ID from its
// "id" claim. Any signature, expiry, or claim problem is an error.
func (v *Verifier) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	// The account service issues tokens with a string id, but be lenient
	// about numeric ids.
	switch id := claims["id"].(type) {
	case string:
		if id == "" {
			return "", fmt.Errorf("missing user ID in token")
		}
		return id, nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("missing user ID in token")
	}
}
