// Package ephemeral provides an authenticated-encryption helper for callers
// who want confidentiality while shipping messages.Envelope bytes over a
// transport of their own choosing (spec.md §1 explicitly puts transport out
// of scope; SPEC_FULL.md's "ephemeral" addition covers confidentiality for
// whatever transport the caller picks). It is never invoked internally by
// frost or messages.
package ephemeral

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec/v2/ecdh"
)

// PrivateKey is an ephemeral secp256k1 private key used only for one
// Diffie-Hellman exchange; it carries none of the Jubjub/FROST signing
// semantics the rest of this module implements.
type PrivateKey struct {
	key *ecdh.PrivateKey
}

// PublicKey is the public half of a PrivateKey.
type PublicKey struct {
	key *ecdh.PublicKey
}

// KeyPair bundles a freshly generated PrivateKey/PublicKey pair.
type KeyPair struct {
	PrivateKey *PrivateKey
	PublicKey  *PublicKey
}

// GenerateKeyPair creates a new ephemeral secp256k1 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	key, err := ecdh.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: &PrivateKey{key: key},
		PublicKey:  &PublicKey{key: key.PublicKey()},
	}, nil
}

// Bytes returns the compressed SEC1 encoding of pk.
func (pk *PublicKey) Bytes() []byte {
	return pk.key.Bytes()
}

// PublicKeyFromBytes parses a compressed SEC1-encoded public key.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	key, err := ecdh.NewPublicKey(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}
