package redjubjub

import (
	"crypto/rand"
	"testing"
)

func TestBatchVerifyAllValid(t *testing.T) {
	v := NewVerifier()
	for i := 0; i < 32; i++ {
		sk, err := GenerateSigningKeyRand[SpendAuth]()
		if err != nil {
			t.Fatalf("GenerateSigningKeyRand: %v", err)
		}
		msg := []byte("BatchVerifyTest")
		sig, err := SignRand(sk, msg)
		if err != nil {
			t.Fatalf("SignRand: %v", err)
		}
		v.QueueSpendAuth(sk.VerificationKey(), msg, sig)
	}
	if err := v.VerifyRand(); err != nil {
		t.Fatalf("expected batch to verify, got %v", err)
	}
}

func TestBatchVerifySameKeyDistinctMessages(t *testing.T) {
	sk, _ := GenerateSigningKeyRand[SpendAuth]()
	vk := sk.VerificationKey()

	v := NewVerifier()
	for i := 0; i < 32; i++ {
		msg := []byte{}
		sig, err := SignRand(sk, msg)
		if err != nil {
			t.Fatalf("SignRand: %v", err)
		}
		v.QueueSpendAuth(vk, msg, sig)
	}
	if err := v.VerifyRand(); err != nil {
		t.Fatalf("expected batch to verify, got %v", err)
	}
}

func TestBatchVerifyMixedSigTypes(t *testing.T) {
	skSpend, _ := GenerateSigningKeyRand[SpendAuth]()
	skBind, _ := GenerateSigningKeyRand[Binding]()

	v := NewVerifier()
	msg := []byte("mixed family batch")
	spendSig, _ := SignRand(skSpend, msg)
	bindSig, _ := SignRand(skBind, msg)
	v.QueueSpendAuth(skSpend.VerificationKey(), msg, spendSig)
	v.QueueBinding(skBind.VerificationKey(), msg, bindSig)

	if err := v.VerifyRand(); err != nil {
		t.Fatalf("expected mixed batch to verify, got %v", err)
	}
}

func TestBatchVerifyRejectsOneBadItem(t *testing.T) {
	v := NewVerifier()
	for i := 0; i < 16; i++ {
		sk, _ := GenerateSigningKeyRand[SpendAuth]()
		msg := []byte("BatchVerifyTest")
		sig, _ := SignRand(sk, msg)
		v.QueueSpendAuth(sk.VerificationKey(), msg, sig)
	}

	badSk, _ := GenerateSigningKeyRand[SpendAuth]()
	otherSk, _ := GenerateSigningKeyRand[SpendAuth]()
	msg := []byte("BatchVerifyTest")
	sig, _ := SignRand(badSk, msg)
	v.QueueSpendAuth(otherSk.VerificationKey(), msg, sig)

	if err := v.VerifyRand(); err == nil {
		t.Fatalf("expected batch with a bad item to fail")
	}
}

func TestBatchVerifyEmpty(t *testing.T) {
	v := NewVerifier()
	if err := v.Verify(rand.Reader); err != nil {
		t.Fatalf("empty batch must verify, got %v", err)
	}
}
