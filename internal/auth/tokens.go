// Package auth issues and verifies the signed bearer tokens that gate
// portfolio mutations.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity window of an issued token.
const DefaultTokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the typed payload carried by every issued token. Parsing fails
// closed: a structurally valid JWT without a usable userId claim is rejected.
type Claims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 bearer tokens with a secret injected
// at construction. It holds no per-user state; any validly signed,
// non-expired token is honored until expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token embedding the account id and email with
// iat/exp set from the manager's clock and TTL.
func (manager *TokenManager) Issue(userID uint, email string) (string, error) {
	now := manager.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(manager.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(manager.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of rawToken and returns its typed
// claims. It rejects tokens signed with an unexpected method, expired tokens,
// tokens without an expiry, and tokens whose userId claim is missing or zero.
func (manager *TokenManager) Parse(rawToken string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return manager.secret, nil
	}, jwt.WithTimeFunc(manager.now))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(manager.now()) {
		return Claims{}, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
