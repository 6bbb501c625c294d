package ephemeral

import (
	"bytes"
	"testing"

	"github.com/orchard-labs/redjubjub/messages"
)

// TestEnvelopeRoundTripThroughBox exercises testable property 12
// (SPEC_FULL.md §8): encrypting a messages.Message's wire bytes and
// decrypting them recovers the original envelope, and a flipped ciphertext
// byte fails to decrypt.
func TestEnvelopeRoundTripThroughBox(t *testing.T) {
	keyPair1, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	keyPair2, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	symKey, err := keyPair1.PrivateKey.Ecdh(keyPair2.PublicKey)
	if err != nil {
		t.Fatalf("Ecdh: %v", err)
	}

	var hiding, binding [32]byte
	hiding[0], binding[0] = 1, 2
	env := &messages.Message{
		Header: messages.Header{Version: messages.BasicFrostSerialization, Sender: messages.Signer(0), Receiver: messages.Aggregator()},
		Payload: &messages.SigningCommitments{Hiding: hiding, Binding: binding},
	}
	wire, err := env.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	ciphertext, err := symKey.Encrypt(wire)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	plaintext, err := symKey.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(plaintext, wire) {
		t.Fatalf("round trip did not recover the original envelope bytes")
	}

	decoded, err := messages.Decode(plaintext)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := decoded.Payload.(*messages.SigningCommitments); !ok {
		t.Fatalf("expected *SigningCommitments, got %T", decoded.Payload)
	}

	tampered := append([]byte(nil), ciphertext...)
	tampered[len(tampered)-1] ^= 0xFF
	if _, err := symKey.Decrypt(tampered); err == nil {
		t.Fatalf("expected decrypt of a tampered ciphertext to fail")
	}
}
