package redjubjub

import (
	"crypto/rand"
	"io"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

// Signature is a 64-byte RedDSA signature, R_bytes ‖ s_bytes (spec.md §3,
// §4.D). The two halves are kept as opaque encodings until Verify decodes
// them; an invalid encoding is only ever discovered there, never here.
type Signature[T SigType] struct {
	rBytes [32]byte
	sBytes [32]byte
}

// Bytes returns the 64-byte wire encoding, R ‖ s.
func (sig *Signature[T]) Bytes() [64]byte {
	var out [64]byte
	copy(out[:32], sig.rBytes[:])
	copy(out[32:], sig.sBytes[:])
	return out
}

// SignatureFromBytes parses a 64-byte encoding. No validity checking is
// performed here; decode failures of R or s surface only from Verify, in
// line with spec.md §3's note that a Signature's bytes need not be valid to
// exist as an opaque value.
func SignatureFromBytes[T SigType](b []byte) (*Signature[T], error) {
	if len(b) != 64 {
		return nil, rjerr.New(rjerr.InvalidSignature)
	}
	var sig Signature[T]
	copy(sig.rBytes[:], b[:32])
	copy(sig.sBytes[:], b[32:])
	return &sig, nil
}

// Sign implements spec.md §4.D's Sign algorithm: a fresh 80-byte nonce seed,
// H* to derive the nonce scalar r, R = r·P_T, a Fiat-Shamir challenge c, and
// s = r + c·sk.
func Sign[T SigType](sk *SigningKey[T], message []byte, rng io.Reader) (*Signature[T], error) {
	params := sigTypeParams[T]()
	vk := sk.VerificationKey()
	vkBytes := vk.Bytes()

	var nonceSeed [80]byte
	if _, err := io.ReadFull(rng, nonceSeed[:]); err != nil {
		return nil, err
	}

	r := hStar(nonceSeed[:], vkBytes[:], message)
	R := params.basepoint.ScalarMult(r)
	rBytes := R.Bytes()

	c := hStar(rBytes[:], vkBytes[:], message)
	s := c.MultiplyAdd(sk.scalar, r)
	sBytes := s.Bytes()

	return &Signature[T]{rBytes: rBytes, sBytes: sBytes}, nil
}

// SignRand is a convenience wrapper over crypto/rand.Reader.
func SignRand[T SigType](sk *SigningKey[T], message []byte) (*Signature[T], error) {
	return Sign(sk, message, rand.Reader)
}

// Verify implements spec.md §4.D's Verify algorithm: decode R and s, recompute
// the challenge, and check that h·(R + c·vk − s·P_T) is the identity.
func Verify[T SigType](vk *VerificationKey[T], message []byte, sig *Signature[T]) error {
	params := sigTypeParams[T]()

	R, err := group.PointFromCanonicalBytes(sig.rBytes[:])
	if err != nil {
		return rjerr.New(rjerr.InvalidSignature)
	}
	s, err := group.ScalarFromCanonicalBytes(sig.sBytes[:])
	if err != nil {
		return rjerr.New(rjerr.InvalidSignature)
	}

	vkBytes := vk.Bytes()
	c := hStar(sig.rBytes[:], vkBytes[:], message)

	check := R.Add(vk.point.ScalarMult(c)).Subtract(params.basepoint.ScalarMult(s))
	if !check.IsSmallOrder() {
		return rjerr.New(rjerr.InvalidSignature)
	}
	return nil
}
