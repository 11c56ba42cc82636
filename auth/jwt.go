package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long an issued token stays usable.
const TokenValidity = time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated identity inside the token. The payload
// is trusted as-is on verification; no database lookup happens here.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"id"`
	Email  string `json:"email"`
}

// GenerateToken signs an HS256 token embedding the user's id and email.
func GenerateToken(userID uint, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
