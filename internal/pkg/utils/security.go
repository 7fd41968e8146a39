package utils

import (
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// AuthClaims is what the upstream identity service puts inside a bearer
// token. Issuance lives outside this service; only verification happens here.
type AuthClaims struct {
	ID   string
	Role string
}

func ParseAuthJWT(tokenString, secret string) (*AuthClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	id, _ := claims["id"].(string)
	role, _ := claims["type"].(string)
	if id == "" || role == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return &AuthClaims{ID: id, Role: role}, nil
}
