package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by both token types. TokenVersion pins the token to the
// user's credential generation at issue time; Role is only set on access
// tokens.
type Claims struct {
	UserID       uint      `json:"uid"`
	Role         string    `json:"role,omitempty"`
	TokenVersion int       `json:"tv"`
	Type         TokenType `json:"typ"`
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// IssuePair issues a fresh access+refresh pair for the given identity.
func (j *JWTer) IssuePair(userID uint, role string, tokenVersion int) (TokenPair, error) {
	access, err := j.issue(userID, role, tokenVersion, TokenAccess, j.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := j.issue(userID, "", tokenVersion, TokenRefresh, j.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (j *JWTer) issue(userID uint, role string, tokenVersion int, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:       userID,
		Role:         role,
		TokenVersion: tokenVersion,
		Type:         typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.Secret)
}

// Parse validates signature, issuer and expiry. Callers still have to check
// Claims.Type and the token version against the stored user.
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %v", token.Header["alg"])
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, ErrInvalidToken
}
