// Package jwt provides functions for generating and validating session JWTs
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTDuration = 7 * 24 * time.Hour
)

var ErrMissingSubject = errors.New("token has no subject")

// GenerateJWT signs a session token for username. version is stored in the
// kid header.
func GenerateJWT(username string, secret []byte, version string, now time.Time) (string, error) {
	// Build token
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(JWTDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = version

	// Sign token
	signedKey, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signedKey, nil
}

// ValidateJWT verifies rawToken and returns the username it was issued to.
func ValidateJWT(rawToken, version string, secret []byte) (string, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		kidVal, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing/invalid kid value")
		}

		if kidVal != version {
			return nil, fmt.Errorf("verifying KID value, value=%q", kidVal)
		}

		return secret, nil
	}

	// Parse the token
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(rawToken, &claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}
