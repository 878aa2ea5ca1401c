package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. Times are Unix milliseconds, not the seconds
// jwt.RegisteredClaims would use.
type Claims struct {
	Email     string `json:"email"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

var _ jwt.Claims = (*Claims)(nil)

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.UnixMilli(c.ExpiresAt)), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.UnixMilli(c.IssuedAt)), nil
}

func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c *Claims) GetIssuer() (string, error)              { return "", nil }
func (c *Claims) GetSubject() (string, error)             { return c.Email, nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// expired reports whether now is at or past the expiry instant.
func (c *Claims) expired(now time.Time) bool {
	return c.ExpiresAt <= now.UnixMilli()
}
