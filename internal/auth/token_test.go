package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/common"
	"github.com/dmitrijs2005/launchpad/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func codecs(t *testing.T, clock *fakeClock) map[string]TokenCodec {
	t.Helper()
	c, err := cryptox.NewCipher("LAUNCHPAD_SECRET_KEY")
	require.NoError(t, err)
	return map[string]TokenCodec{
		"legacy":   NewLegacyCodec(c, 0, clock.Now),
		"hardened": NewHMACCodec([]byte("s3cret"), 0, clock.Now),
	}
}

func decodePayload(t *testing.T, token string) map[string]any {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestIssue_PayloadShape(t *testing.T) {
	clock := newClock()
	for name, codec := range codecs(t, clock) {
		t.Run(name, func(t *testing.T) {
			tok, err := codec.Issue("ada@example.com")
			require.NoError(t, err)

			p := decodePayload(t, tok)
			assert.Equal(t, "ada@example.com", p["email"])
			assert.EqualValues(t, clock.t.UnixMilli(), p["iat"])
			assert.EqualValues(t, clock.t.Add(7*24*time.Hour).UnixMilli(), p["exp"])
		})
	}
}

func TestToken_ExpiresAfterSevenDays(t *testing.T) {
	for name := range codecs(t, newClock()) {
		t.Run(name, func(t *testing.T) {
			clock := newClock()
			codec := codecs(t, clock)[name]

			tok, err := codec.Issue("ada@example.com")
			require.NoError(t, err)
			assert.True(t, codec.Valid(tok))

			clock.Advance(7*24*time.Hour - time.Millisecond)
			assert.True(t, codec.Valid(tok))

			clock.Advance(time.Millisecond)
			assert.False(t, codec.Valid(tok))
			_, err = codec.Subject(tok)
			assert.ErrorIs(t, err, common.ErrTokenExpired)
		})
	}
}

func TestSubject_ReturnsEmail(t *testing.T) {
	for name, codec := range codecs(t, newClock()) {
		t.Run(name, func(t *testing.T) {
			tok, err := codec.Issue("bob@example.com")
			require.NoError(t, err)

			email, err := codec.Subject(tok)
			require.NoError(t, err)
			assert.Equal(t, "bob@example.com", email)
		})
	}
}

func TestValid_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"a.b",
		"a.b.c.d",
		"not-base64!.also-not.sig",
		base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + ".bm90IGpzb24.sig",
	}

	for name, codec := range codecs(t, newClock()) {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				assert.False(t, codec.Valid(in), in)
				_, err := codec.Subject(in)
				assert.ErrorIs(t, err, common.ErrInvalidToken, in)
			}
		})
	}
}

func TestLegacy_SignatureNotVerified(t *testing.T) {
	clock := newClock()
	codec := codecs(t, clock)["legacy"]

	tok, err := codec.Issue("eve@example.com")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	forged := parts[0] + "." + parts[1] + ".anything"
	assert.True(t, codec.Valid(forged))
}

func TestLegacy_SignatureIsCipherOfSigningString(t *testing.T) {
	c, err := cryptox.NewCipher("LAUNCHPAD_SECRET_KEY")
	require.NoError(t, err)
	codec := NewLegacyCodec(c, time.Hour, newClock().Now)

	tok, err := codec.Issue("ada@example.com")
	require.NoError(t, err)

	i := strings.LastIndex(tok, ".")
	plain, err := c.Decrypt(tok[i+1:])
	require.NoError(t, err)
	assert.Equal(t, tok[:i], plain)
}

func TestHMAC_RejectsTampering(t *testing.T) {
	clock := newClock()
	codec := NewHMACCodec([]byte("s3cret"), time.Hour, clock.Now)

	tok, err := codec.Issue("eve@example.com")
	require.NoError(t, err)

	other := NewHMACCodec([]byte("other"), time.Hour, clock.Now)
	assert.False(t, other.Valid(tok), "wrong secret")

	parts := strings.Split(tok, ".")
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"email":"admin@example.com","exp":99999999999999,"iat":0}`))
	assert.False(t, codec.Valid(parts[0]+"."+payload+"."+parts[2]), "swapped payload")

	legacy := codecs(t, clock)["legacy"]
	ltok, err := legacy.Issue("eve@example.com")
	require.NoError(t, err)
	assert.False(t, codec.Valid(ltok), "modes are not mixed")
}

func TestNewCodec(t *testing.T) {
	c, err := cryptox.NewCipher("k")
	require.NoError(t, err)

	l, err := NewCodec("legacy", c, "k", 0, nil)
	require.NoError(t, err)
	assert.IsType(t, &LegacyCodec{}, l)

	h, err := NewCodec("hardened", c, "k", 0, nil)
	require.NoError(t, err)
	assert.IsType(t, &HMACCodec{}, h)

	_, err = NewCodec("none", c, "k", 0, nil)
	assert.ErrorIs(t, err, errUnknownMode)
}
