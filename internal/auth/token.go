// Package auth issues and checks session tokens.
//
// A token is "header.payload.signature" with base64url JSON segments. Two
// codecs exist:
//
//   - LegacyCodec signs with the reversible cryptox.Cipher and never checks
//     the signature; validity only means three segments and an unexpired
//     payload.
//   - HMACCodec signs with HS256 and verifies the signature on every check.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/common"
	"github.com/dmitrijs2005/launchpad/internal/cryptox"
	"github.com/dmitrijs2005/launchpad/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// TokenCodec issues tokens for an email and reads them back.
type TokenCodec interface {
	Issue(email string) (string, error)
	// Subject returns the email of a valid token, ErrTokenExpired or
	// ErrInvalidToken.
	Subject(token string) (string, error)
	Valid(token string) bool
}

type base struct {
	ttl time.Duration
	now timex.Clock
}

func newBase(ttl time.Duration, now timex.Clock) base {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = timex.Now
	}
	return base{ttl: ttl, now: now}
}

func (b base) claims(email string) *Claims {
	iat := b.now()
	return &Claims{Email: email, IssuedAt: iat.UnixMilli(), ExpiresAt: iat.Add(b.ttl).UnixMilli()}
}

func (b base) check(c *Claims) (string, error) {
	if c.expired(b.now()) {
		return "", common.ErrTokenExpired
	}
	return c.Email, nil
}

// LegacyCodec reproduces the unverified token format: the signature is the
// cipher's encryption of "header.payload" and is ignored when reading.
type LegacyCodec struct {
	base
	cipher *cryptox.Cipher
}

func NewLegacyCodec(c *cryptox.Cipher, ttl time.Duration, now timex.Clock) *LegacyCodec {
	return &LegacyCodec{base: newBase(ttl, now), cipher: c}
}

func (l *LegacyCodec) Issue(email string) (string, error) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodHS256, l.claims(email)).SigningString()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}
	return unsigned + "." + l.cipher.Encrypt(unsigned), nil
}

func (l *LegacyCodec) Subject(token string) (string, error) {
	if strings.Count(token, ".") != 2 {
		return "", common.ErrInvalidToken
	}

	c := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return l.check(c)
}

func (l *LegacyCodec) Valid(token string) bool {
	_, err := l.Subject(token)
	return err == nil
}

// HMACCodec signs tokens with HS256 and a shared secret.
type HMACCodec struct {
	base
	secret []byte
}

func NewHMACCodec(secret []byte, ttl time.Duration, now timex.Clock) *HMACCodec {
	return &HMACCodec{base: newBase(ttl, now), secret: secret}
}

func (h *HMACCodec) Issue(email string) (string, error) {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, h.claims(email)).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

func (h *HMACCodec) Subject(token string) (string, error) {
	c := &Claims{}
	_, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return h.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// expiry is in milliseconds, checked below
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return h.check(c)
}

func (h *HMACCodec) Valid(token string) bool {
	_, err := h.Subject(token)
	return err == nil
}

var errUnknownMode = errors.New("unknown security mode")

// NewCodec picks the codec for a security mode ("legacy" or "hardened").
func NewCodec(mode string, c *cryptox.Cipher, secret string, ttl time.Duration, now timex.Clock) (TokenCodec, error) {
	switch mode {
	case "legacy":
		return NewLegacyCodec(c, ttl, now), nil
	case "hardened":
		return NewHMACCodec([]byte(secret), ttl, now), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}
