package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
)

// Claims are the JWT claims issued to farmers, dealers and admins.
// The subject is the farmer or dealer ID for those roles.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for principal that expires after ttl.
func IssueToken(principal domain.Principal, secret string, ttl time.Duration, issuer string) (string, error) {
	if principal.UserID == "" || !principal.Role.IsValid() {
		return "", fmt.Errorf("cannot issue token for user %q with role %q", principal.UserID, principal.Role)
	}
	now := time.Now()
	claims := Claims{
		Role: principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   principal.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates the signature and standard claims of tokenString.
// Role and subject are checked by the caller.
func ParseToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
