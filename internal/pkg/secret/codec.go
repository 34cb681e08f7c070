package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrMalformedCiphertext reports input that was not produced by Encode with the same key.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

const (
	ivSize  = 12
	keySize = 32
)

var (
	kdfSalt = []byte("feedbackportal/credential")
	kdfInfo = []byte("aes-256-gcm+hmac-sha256")
)

// Codec turns credentials into a printable, reversible form and back.
type Codec interface {
	Encode(plaintext string) string
	Decode(ciphertext string) (string, error)
}

// AESCodec is a deterministic AES-GCM codec. The nonce is derived from an HMAC
// of the plaintext, so equal inputs always produce equal outputs.
type AESCodec struct {
	aead   cipher.AEAD
	macKey []byte
}

// NewAESCodec derives encryption and MAC keys from secret.
func NewAESCodec(secret string) (*AESCodec, error) {
	if secret == "" {
		return nil, errors.New("credential secret must not be empty")
	}

	material := make([]byte, 2*keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), kdfSalt, kdfInfo), material); err != nil {
		return nil, fmt.Errorf("derive keys: %w", err)
	}

	block, err := aes.NewCipher(material[:keySize])
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	return &AESCodec{aead: aead, macKey: material[keySize:]}, nil
}

// Encode returns base64url(iv || ciphertext || tag).
func (c *AESCodec) Encode(plaintext string) string {
	iv := c.syntheticIV([]byte(plaintext))
	out := make([]byte, ivSize, ivSize+len(plaintext)+c.aead.Overhead())
	copy(out, iv)
	out = c.aead.Seal(out, iv, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(out)
}

// Decode reverses Encode.
func (c *AESCodec) Decode(ciphertext string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	if len(raw) < ivSize+c.aead.Overhead() {
		return "", ErrMalformedCiphertext
	}

	iv, sealed := raw[:ivSize], raw[ivSize:]
	plaintext, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	if !hmac.Equal(iv, c.syntheticIV(plaintext)) {
		return "", ErrMalformedCiphertext
	}
	return string(plaintext), nil
}

func (c *AESCodec) syntheticIV(plaintext []byte) []byte {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write(plaintext)
	return mac.Sum(nil)[:ivSize]
}
