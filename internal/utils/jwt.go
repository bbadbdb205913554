package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/tollgate-go/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateAPIKeyToken creates a short-lived HMAC-SHA256 JWT proving
// possession of key.
//
// The token includes the following standard claims:
//   - Issuer    (iss): the API key id
//   - Subject   (sub): the API key id
//   - ID        (jti): a fresh request id, so tokens are never reused
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus ttl
//
// Example usage:
//
//	token, err := utils.GenerateAPIKeyToken(key, time.Minute, time.Now())
func GenerateAPIKeyToken(key models.APIKey, ttl time.Duration, now time.Time) (string, error) {
	if key.IsZero() || ttl <= 0 {
		return "", errors.New("invalid params for generating api key token")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    key.ID,
		Subject:   key.ID,
		ID:        NewRequestID(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key.Secret))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing api key token: %w", err)
	}

	return signed, nil
}

// ParseAPIKeyToken verifies a token produced by [GenerateAPIKeyToken] with
// secret and returns its claims.
func ParseAPIKeyToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
