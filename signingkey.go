package redjubjub

import (
	"crypto/rand"
	"io"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

// SigningKey is a RedDSA/RedJubjub secret scalar, parameterized by which
// signature family (SpendAuth or Binding) it signs under (spec.md §3, §4.C).
type SigningKey[T SigType] struct {
	scalar *group.Scalar
}

// GenerateSigningKey samples a fresh SigningKey by wide-reducing 64 bytes
// read from rng. The caller's rng must be a cryptographic source; this
// library never seeds its own.
func GenerateSigningKey[T SigType](rng io.Reader) (*SigningKey[T], error) {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return nil, err
	}
	return &SigningKey[T]{scalar: group.RandomScalar(wide)}, nil
}

// GenerateSigningKeyRand is a convenience wrapper over crypto/rand.Reader.
func GenerateSigningKeyRand[T SigType]() (*SigningKey[T], error) {
	return GenerateSigningKey[T](rand.Reader)
}

// SigningKeyFromBytes decodes a canonical 32-byte scalar encoding. It returns
// rjerr.MalformedSigningKey if b does not encode a canonical scalar.
func SigningKeyFromBytes[T SigType](b []byte) (*SigningKey[T], error) {
	s, err := group.ScalarFromCanonicalBytes(b)
	if err != nil {
		return nil, rjerr.Wrap(rjerr.MalformedSigningKey, err)
	}
	return &SigningKey[T]{scalar: s}, nil
}

// Bytes returns the canonical 32-byte encoding.
func (sk *SigningKey[T]) Bytes() [32]byte {
	return sk.scalar.Bytes()
}

// VerificationKey derives the corresponding public key, vk = sk·P_T.
func (sk *SigningKey[T]) VerificationKey() *VerificationKey[T] {
	params := sigTypeParams[T]()
	return newVerificationKeyFromPoint[T](params.basepoint.ScalarMult(sk.scalar))
}

// Randomize returns a re-randomized signing key sk' = sk + r (spec.md §4.C).
// Only meaningful for SigningKey[SpendAuth]; Binding keys are never
// re-randomized by callers in this protocol, but the operation itself is not
// restricted at the type level to match the upstream crate's API shape.
func (sk *SigningKey[T]) Randomize(r *group.Scalar) *SigningKey[T] {
	return &SigningKey[T]{scalar: sk.scalar.Add(r)}
}

// Zeroize overwrites the underlying secret scalar.
func (sk *SigningKey[T]) Zeroize() {
	sk.scalar.Zeroize()
}
