package redjubjub

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

func TestSignVerifySpendAuth(t *testing.T) {
	sk, err := GenerateSigningKeyRand[SpendAuth]()
	if err != nil {
		t.Fatalf("GenerateSigningKeyRand: %v", err)
	}
	vk := sk.VerificationKey()

	msg := []byte("message to sign")
	sig, err := SignRand(sk, msg)
	if err != nil {
		t.Fatalf("SignRand: %v", err)
	}
	if err := Verify(vk, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestSignVerifyBinding(t *testing.T) {
	sk, err := GenerateSigningKeyRand[Binding]()
	if err != nil {
		t.Fatalf("GenerateSigningKeyRand: %v", err)
	}
	vk := sk.VerificationKey()

	msg := []byte("bind these commitments")
	sig, err := SignRand(sk, msg)
	if err != nil {
		t.Fatalf("SignRand: %v", err)
	}
	if err := Verify(vk, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestKeyEncodingRoundTrip(t *testing.T) {
	sk, _ := GenerateSigningKeyRand[SpendAuth]()
	skBytes := sk.Bytes()
	decoded, err := SigningKeyFromBytes[SpendAuth](skBytes[:])
	if err != nil {
		t.Fatalf("SigningKeyFromBytes: %v", err)
	}
	if decoded.Bytes() != skBytes {
		t.Fatalf("signing key round trip mismatch")
	}

	vk := sk.VerificationKey()
	vkBytes := vk.Bytes()
	decodedVk, err := VerificationKeyFromBytes[SpendAuth](vkBytes[:])
	if err != nil {
		t.Fatalf("VerificationKeyFromBytes: %v", err)
	}
	if !vk.Equal(decodedVk) {
		t.Fatalf("verification key round trip mismatch")
	}
}

func TestSignatureEncodingRoundTrip(t *testing.T) {
	sk, _ := GenerateSigningKeyRand[SpendAuth]()
	sig, _ := SignRand(sk, []byte("msg"))
	b := sig.Bytes()
	decoded, err := SignatureFromBytes[SpendAuth](b[:])
	if err != nil {
		t.Fatalf("SignatureFromBytes: %v", err)
	}
	if decoded.Bytes() != b {
		t.Fatalf("signature round trip mismatch")
	}
}

func TestRandomizationCommutes(t *testing.T) {
	sk, _ := GenerateSigningKeyRand[SpendAuth]()
	vk := sk.VerificationKey()

	var wide [64]byte
	rand.Read(wide[:])
	r := group.RandomScalar(wide)

	skPrime := sk.Randomize(r)
	vkPrime := vk.Randomize(r)

	if !vkPrime.Equal(skPrime.VerificationKey()) {
		t.Fatalf("vk(sk + r) != randomize(vk(sk), r)")
	}

	msg := []byte("spend this note")
	sig, err := SignRand(skPrime, msg)
	if err != nil {
		t.Fatalf("SignRand: %v", err)
	}
	if err := Verify(vkPrime, msg, sig); err != nil {
		t.Fatalf("Verify under randomization: %v", err)
	}
}

func TestVerifyRejectsTweakedMessage(t *testing.T) {
	sk, _ := GenerateSigningKeyRand[SpendAuth]()
	vk := sk.VerificationKey()
	sig, _ := SignRand(sk, []byte("original"))

	err := Verify(vk, []byte("tampered"), sig)
	if !errors.Is(err, rjerr.New(rjerr.InvalidSignature)) {
		t.Fatalf("expected InvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsTweakedSignature(t *testing.T) {
	sk, _ := GenerateSigningKeyRand[SpendAuth]()
	vk := sk.VerificationKey()
	msg := []byte("original")
	sig, _ := SignRand(sk, msg)

	b := sig.Bytes()
	b[40] ^= 0xFF
	tweaked, err := SignatureFromBytes[SpendAuth](b[:])
	if err != nil {
		t.Fatalf("SignatureFromBytes: %v", err)
	}
	if err := Verify(vk, msg, tweaked); !errors.Is(err, rjerr.New(rjerr.InvalidSignature)) {
		t.Fatalf("expected InvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	sk, _ := GenerateSigningKeyRand[SpendAuth]()
	other, _ := GenerateSigningKeyRand[SpendAuth]()
	msg := []byte("original")
	sig, _ := SignRand(sk, msg)

	if err := Verify(other.VerificationKey(), msg, sig); !errors.Is(err, rjerr.New(rjerr.InvalidSignature)) {
		t.Fatalf("expected InvalidSignature, got %v", err)
	}
}

func TestMalformedKeyDecoding(t *testing.T) {
	var bad [32]byte
	for i := range bad {
		bad[i] = 0xFF
	}
	if _, err := SigningKeyFromBytes[SpendAuth](bad[:]); !errors.Is(err, rjerr.New(rjerr.MalformedSigningKey)) {
		t.Fatalf("expected MalformedSigningKey, got %v", err)
	}
}
