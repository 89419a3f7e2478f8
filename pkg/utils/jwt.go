package utils

import (
	"github.com/golang-jwt/jwt/v5"
	"os"
	"time"
)

// jwtKey reads the secret on every use rather than at package init, so a
// secret that only arrives via the .env load in main still takes effect.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// AuthEnabled reports whether API auth is configured. Without a secret the
// planning API is open, which is the expected mode for local development.
func AuthEnabled() bool {
	return len(jwtKey()) > 0
}

type Claims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}

func CreateToken(clientName string, ttl time.Duration) (string, error) {
	claims := &Claims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
