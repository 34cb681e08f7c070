package test

import (
	"strings"

	"github.com/polkiloo/feedbackportal/internal/pkg/secret"
)

// CodecStub provides a transparent reversible encoding for tests.
type CodecStub struct {
	EncodeFn func(string) string
	DecodeFn func(string) (string, error)
}

// Encode prefixes the plaintext with "enc:".
func (c CodecStub) Encode(plaintext string) string {
	if c.EncodeFn != nil {
		return c.EncodeFn(plaintext)
	}
	return "enc:" + plaintext
}

// Decode strips the "enc:" prefix and rejects anything else.
func (c CodecStub) Decode(ciphertext string) (string, error) {
	if c.DecodeFn != nil {
		return c.DecodeFn(ciphertext)
	}
	plain, ok := strings.CutPrefix(ciphertext, "enc:")
	if !ok {
		return "", secret.ErrMalformedCiphertext
	}
	return plain, nil
}

var _ secret.Codec = CodecStub{}
