package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CashierClaims identifies the cashier operating the till.
type CashierClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateCashierJWT signs a token for a cashier. Tokens are issued out of band; the API only verifies them.
func GenerateCashierJWT(cashierID, name, email, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := CashierClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   cashierID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseCashierJWT validates the signature and standard claims and returns the cashier claims.
func ParseCashierJWT(tokenString, secretKey string) (*CashierClaims, error) {
	claims := &CashierClaims{}

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
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
