package ephemeral

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// box is a symmetric AEAD sealed under a 32-byte key, used to wrap a
// messages.Message's encoded bytes for callers that want confidentiality in
// transit.
type box struct {
	aead cipher.AEAD
}

// newBox builds a box keyed by a 32-byte symmetric key, typically derived
// from an ECDH shared secret via SymmetricEcdhKey.
func newBox(key [32]byte) *box {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		// chacha20poly1305.New only fails on a wrong-length key, which
		// cannot happen here since key is a fixed-size array.
		panic(err)
	}
	return &box{aead: aead}
}

// encrypt seals plaintext under a fresh random nonce, prefixed to the
// returned ciphertext.
func (b *box) encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return b.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// decrypt opens a ciphertext produced by encrypt.
func (b *box) decrypt(ciphertext []byte) ([]byte, error) {
	nonceSize := b.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("symmetric key decryption failed")
	}
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := b.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errors.New("symmetric key decryption failed")
	}
	return plaintext, nil
}
