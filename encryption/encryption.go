// Package encryption provides ChaCha20-Poly1305 authenticated encryption
// for short strings such as stored secrets or cache payloads.
//
// The key is derived from a passphrase using SHA-256, producing the 256-bit
// key the cipher requires:
//
//	enc, err := encryption.New("my-secret-passphrase")
//	ciphertext, err := enc.Encrypt(plaintext)
//	plaintext, err := enc.Decrypt(ciphertext)
package encryption

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/angmorpri/morelib/errors"
)

// Encryptor performs symmetric encryption and decryption of strings.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// ChaCha20 encrypts with ChaCha20-Poly1305, an AEAD cipher that performs
// well on CPUs without AES hardware acceleration.
type ChaCha20 struct {
	aead interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
		NonceSize() int
	}
}

// New creates a ChaCha20-Poly1305 encryptor. The passphrase is hashed with
// SHA-256 to produce a consistent 32-byte key.
func New(passphrase string) (*ChaCha20, error) {
	hasher := sha256.New()
	hasher.Write([]byte(passphrase))
	keyBytes := hasher.Sum(nil)

	aead, err := chacha20poly1305.New(keyBytes)
	if err != nil {
		return nil, errors.Internal(err)
	}

	return &ChaCha20{aead: aead}, nil
}

// Encrypt encrypts plaintext and returns a base64-encoded result with the
// nonce prepended.
func (c *ChaCha20) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Internal(err)
	}
	ciphertext := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decrypts a base64-encoded ciphertext produced by Encrypt.
func (c *ChaCha20) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.InvalidFormat("ciphertext", "base64").WithCause(err)
	}

	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize {
		return "", errors.InvalidFormat("ciphertext", "nonce-prefixed payload")
	}

	nonce, payload := data[:nonceSize], data[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, payload, nil)
	if err != nil {
		return "", errors.InvalidInput("ciphertext", "authentication failed").WithCause(err)
	}

	return string(plaintext), nil
}
