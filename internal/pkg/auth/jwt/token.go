package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// TokenIssuer identifies the issuer expected on every token.
	TokenIssuer = "AAELink"

	// RoleAdmin grants access to every object key.
	RoleAdmin = "admin"
)

// GenerateToken signs payload with HS256, stamping issue time, expiry and issuer.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		Subject:   payload.ID,
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken validates tokenString against secretKey and returns its claims.
// Tokens from another issuer or without a user ID are rejected.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if !claims.VerifyIssuer(TokenIssuer, true) {
		return nil, errors.New("unexpected token issuer")
	}

	if claims.ID == "" {
		return nil, errors.New("token carries no user id")
	}

	return claims, nil
}
