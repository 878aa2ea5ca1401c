// Package cryptox holds the symmetric primitives used for stored
// credentials and legacy token signatures.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/launchpad/internal/common"
	"golang.org/x/crypto/argon2"
)

// keySalt is fixed so the same passphrase always yields the same key across
// runs; stored ciphertexts stay readable after a restart.
var keySalt = []byte("launchpad/cryptox/v1")

var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// DeriveMasterKey stretches password into a 32-byte AES key with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// Cipher is a reversible AES-256-GCM transform keyed by a passphrase.
// Output is base64(nonce|ciphertext).
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives the key once; argon2 is too slow to run per call.
func NewCipher(passphrase string) (*Cipher, error) {
	key := DeriveMasterKey([]byte(passphrase), keySalt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

func (c *Cipher) Encrypt(plaintext string) string {
	nonce := common.GenerateRandByteArray(c.aead.NonceSize())
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed)
}

func (c *Cipher) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	n := c.aead.NonceSize()
	if len(data) < n+c.aead.Overhead() {
		return "", fmt.Errorf("%w: too short", ErrMalformedCiphertext)
	}

	plaintext, err := c.aead.Open(nil, data[:n], data[n:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}
	return string(plaintext), nil
}
