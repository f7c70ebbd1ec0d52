// Package auth implements password hashing, stateless session tokens and the
// bearer-token middleware guarding protected routes.
package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"poimap/errs"
)

// Identity is the authenticated caller recovered from a session token.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

type tokenClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed HS256 session tokens. Verification
// is stateless: the server keeps no session-side bookkeeping.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService constructs a TokenService. A zero ttl issues tokens without
// an embedded expiry (long-lived bearer semantics).
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is empty")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the caller's id, username and role.
func (s *TokenService) Issue(ident Identity) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:   ident.UserID,
		Username: ident.Username,
		Role:     ident.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify validates a token string and extracts the caller identity.
func (s *TokenService) Verify(tokenStr string) (*Identity, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, errs.ErrInvalidToken
	}
	claims, ok := tok.Claims.(*tokenClaims)
	if !ok || claims.Username == "" || claims.Role == "" {
		return nil, errs.ErrInvalidToken
	}
	return &Identity{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}
