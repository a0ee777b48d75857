package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/calm-journal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrInvalidTokenClaims         = errors.New("invalid token claims")
	ErrEmptySubject               = errors.New("empty subject error")
)

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseIdentityFromJWT reads the "sub" and optional "email" claims of an ID
// token without verifying its signature. The token is expected to come
// straight from the identity provider over TLS; the remote store verifies it
// on every request.
func ParseIdentityFromJWT(tokenString string) (models.Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(tokenString), jwt.MapClaims{})
	if err != nil {
		return models.Identity{}, fmt.Errorf("parse id token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, ErrInvalidTokenClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if sub == "" {
		return models.Identity{}, ErrEmptySubject
	}

	email, _ := claims["email"].(string)

	return models.Identity{UID: sub, Email: email}, nil
}
