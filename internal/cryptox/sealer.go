package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Sealer.Verify when the password does not match.
var ErrMismatch = errors.New("password mismatch")

// Sealer turns a password into the credential stored with an account and
// checks candidates against it.
type Sealer interface {
	Seal(password string) (string, error)
	Verify(sealed, password string) error
}

// CipherSealer stores the password reversibly and compares plaintexts.
type CipherSealer struct {
	c *Cipher
}

func NewCipherSealer(c *Cipher) *CipherSealer {
	return &CipherSealer{c: c}
}

func (s *CipherSealer) Seal(password string) (string, error) {
	return s.c.Encrypt(password), nil
}

func (s *CipherSealer) Verify(sealed, password string) error {
	plain, err := s.c.Decrypt(sealed)
	if err != nil {
		return err
	}
	if plain != password {
		return ErrMismatch
	}
	return nil
}

// BcryptSealer stores a one-way bcrypt hash.
type BcryptSealer struct {
	cost int
}

// NewBcryptSealer uses bcrypt.DefaultCost when cost is out of range.
func NewBcryptSealer(cost int) *BcryptSealer {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptSealer{cost: cost}
}

func (s *BcryptSealer) Seal(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (s *BcryptSealer) Verify(sealed, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(sealed), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
