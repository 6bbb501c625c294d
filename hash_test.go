package redjubjub

import "testing"

func TestHStarDeterministic(t *testing.T) {
	a := NewHStar().Update([]byte("hello")).Update([]byte(" world")).Finalize()
	b := hStar([]byte("hello"), []byte(" world"))
	if !a.Equal(b) {
		t.Fatalf("chained Update must equal equivalent one-shot hStar call")
	}
}

func TestHStarDistinguishesInputs(t *testing.T) {
	a := hStar([]byte("alpha"))
	b := hStar([]byte("beta"))
	if a.Equal(b) {
		t.Fatalf("distinct inputs must not collide")
	}
}

func TestHStarUnframedPartsCollideAcrossBoundaries(t *testing.T) {
	a := hStar([]byte("ab"), []byte("c"))
	b := hStar([]byte("a"), []byte("bc"))
	// BLAKE2b has no built-in framing between Update calls, so this is
	// expected to collide: callers needing unambiguous framing (the FROST
	// binding-factor preimage, for instance) must length-prefix variable
	// fields themselves.
	if !a.Equal(b) {
		t.Fatalf("expected unframed concatenation to collide across boundaries")
	}
}
