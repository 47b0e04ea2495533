// Package token issues and verifies the signed session tokens handed to
// clients at login. Tokens carry the user id and role and, matching the
// original contract, never expire.
package token

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
)

// Claims is the token payload attached to authenticated requests.
type Claims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HMAC-SHA256 tokens.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) (*Issuer, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// Sign returns a signed token for the given user.
func (i *Issuer) Sign(userID int64, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses raw and returns its claims, or ErrInvalidToken on any
// signature, shape, or claim failure.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, authdomain.ErrInvalidToken
	}

	if claims.UserID <= 0 || !authdomain.ValidRole(claims.Role) {
		return nil, authdomain.ErrInvalidToken
	}

	return claims, nil
}
