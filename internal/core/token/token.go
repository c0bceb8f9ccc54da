// Package token signs and verifies the compact session tokens carried in the
// auth cookie. Verification is a pure function over the token string and the
// shared secret; no state is kept and no store is consulted.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Typed verification outcomes. Verify never returns a raw parser error for
// attacker-controlled input; every failure maps to one of these.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// SessionClaims is the payload carried by a session token.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret and issuing tokens valid for
// ttl. A non-positive ttl defaults to one hour.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity window applied to issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a signed token for the given subject whose validity window
// is now..now+ttl.
func (c *Codec) Issue(subjectID, username, role string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates tokenString, returning the decoded claims or a
// typed failure: ErrTokenMalformed when the structure cannot be parsed,
// ErrTokenSignatureInvalid when the signature does not match, ErrTokenExpired
// when the validity window has elapsed.
func (c *Codec) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !tkn.Valid || claims.Subject == "" || claims.Username == "" || claims.Role == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
