// Package group abstracts the prime-order group that RedDSA and FROST are
// built over.
//
// The Zcash protocol runs RedJubjub over Jubjub, a twisted Edwards curve
// defined over the BLS12-381 scalar field with cofactor 8. Jubjub arithmetic
// itself is explicitly out of scope for this module (it is consumed through
// an external collaborator, the same way the upstream Rust crate consumes the
// `jubjub` crate). This package concentrates that boundary in one file: it
// implements the same prime-order-group-of-cofactor-8 contract on top of
// filippo.io/edwards25519, a production Curve25519 group implementation.
// Swapping in a real Jubjub backend later means rewriting this file only —
// nothing in package frost or the root redjubjub package touches curve
// internals directly.
package group

import (
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

// Cofactor is the cofactor of the backing curve's full group order. Both
// Jubjub and edwards25519 have cofactor 8, so verification/decoding
// invariants expressed in terms of the cofactor carry over unchanged.
const Cofactor = 8

// ScalarSize and PointSize are the canonical encoding lengths, matching
// spec.md §3's 32-byte scalar and point encodings.
const (
	ScalarSize = 32
	PointSize  = 32
)

// Scalar is an element of the group's prime-order scalar field.
type Scalar struct {
	s *edwards25519.Scalar
}

// NewScalar returns the zero scalar.
func NewScalar() *Scalar {
	return &Scalar{s: edwards25519.NewScalar()}
}

// RandomScalar samples a uniformly random scalar using wide reduction, per
// spec.md §3's "obtainable from uniform 64-byte strings via wide reduction".
func RandomScalar(rand64 [64]byte) *Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(rand64[:])
	if err != nil {
		// SetUniformBytes only fails on wrong input length; rand64 is fixed-size.
		panic(fmt.Sprintf("group: wide reduction failed: %v", err))
	}
	return &Scalar{s: s}
}

// ScalarFromWideBytes reduces an arbitrary 64-byte string into a scalar. This
// is the backing primitive for HStar.Finalize.
func ScalarFromWideBytes(b []byte) (*Scalar, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("group: wide reduction input must be 64 bytes, got %d", len(b))
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(b)
	if err != nil {
		return nil, fmt.Errorf("group: wide reduction: %w", err)
	}
	return &Scalar{s: s}, nil
}

// ScalarFromCanonicalBytes decodes a 32-byte canonical little-endian scalar
// encoding, rejecting any non-canonical representation.
func ScalarFromCanonicalBytes(b []byte) (*Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("group: scalar encoding must be %d bytes, got %d", ScalarSize, len(b))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("group: non-canonical scalar encoding: %w", err)
	}
	return &Scalar{s: s}, nil
}

// ScalarFromUint64 encodes a small non-negative integer (a FROST participant
// index, for instance) as a scalar.
func ScalarFromUint64(v uint64) *Scalar {
	var wide [64]byte
	for i := 0; i < 8; i++ {
		wide[i] = byte(v >> (8 * i))
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(fmt.Sprintf("group: uint64 scalar encoding failed: %v", err))
	}
	return &Scalar{s: s}
}

// Bytes returns the canonical 32-byte little-endian encoding.
func (s *Scalar) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], s.s.Bytes())
	return out
}

// Add returns s + t.
func (s *Scalar) Add(t *Scalar) *Scalar {
	return &Scalar{s: edwards25519.NewScalar().Add(s.s, t.s)}
}

// Subtract returns s - t.
func (s *Scalar) Subtract(t *Scalar) *Scalar {
	return &Scalar{s: edwards25519.NewScalar().Subtract(s.s, t.s)}
}

// Multiply returns s * t.
func (s *Scalar) Multiply(t *Scalar) *Scalar {
	return &Scalar{s: edwards25519.NewScalar().Multiply(s.s, t.s)}
}

// MultiplyAdd returns s*x + y.
func (s *Scalar) MultiplyAdd(x, y *Scalar) *Scalar {
	return &Scalar{s: edwards25519.NewScalar().MultiplyAdd(s.s, x.s, y.s)}
}

// Negate returns -s.
func (s *Scalar) Negate() *Scalar {
	return &Scalar{s: edwards25519.NewScalar().Negate(s.s)}
}

// Invert returns s^-1. s must be non-zero.
func (s *Scalar) Invert() *Scalar {
	return &Scalar{s: edwards25519.NewScalar().Invert(s.s)}
}

// Equal reports whether s == t.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equal(t.s) == 1
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.Equal(NewScalar())
}

// Zeroize overwrites the scalar's internal state. Callers holding a secret
// scalar (a signing key, a FROST nonce or share) should call this once the
// value is no longer needed; Go has no destructors, so this must be explicit.
func (s *Scalar) Zeroize() {
	s.s.Set(edwards25519.NewScalar())
}

// Point is an element of the group.
type Point struct {
	p *edwards25519.Point
}

// Identity returns the group identity element.
func Identity() *Point {
	return &Point{p: edwards25519.NewIdentityPoint()}
}

// Generator returns the fixed generator of the prime-order subgroup used as
// the default basepoint. SpendAuth and Binding each use their own basepoint
// (see params.go in the parent package), derived by HashToBasepoint from a
// label; neither is derived from this generator.
func Generator() *Point {
	return &Point{p: edwards25519.NewGeneratorPoint()}
}

// PointFromCanonicalBytes decodes a 32-byte canonical affine point encoding.
// It does not reject small-order points; callers that need the
// "verification key must not be small order" invariant from spec.md §3 must
// call IsSmallOrder on the result.
func PointFromCanonicalBytes(b []byte) (*Point, error) {
	if len(b) != PointSize {
		return nil, fmt.Errorf("group: point encoding must be %d bytes, got %d", PointSize, len(b))
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("group: invalid point encoding: %w", err)
	}
	return &Point{p: p}, nil
}

// Bytes returns the canonical 32-byte affine encoding.
func (p *Point) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], p.p.Bytes())
	return out
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	return &Point{p: edwards25519.NewIdentityPoint().Add(p.p, q.p)}
}

// Subtract returns p - q.
func (p *Point) Subtract(q *Point) *Point {
	return &Point{p: edwards25519.NewIdentityPoint().Subtract(p.p, q.p)}
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	return &Point{p: edwards25519.NewIdentityPoint().Negate(p.p)}
}

// ScalarMult returns s*p.
func (p *Point) ScalarMult(s *Scalar) *Point {
	return &Point{p: edwards25519.NewIdentityPoint().ScalarMult(s.s, p.p)}
}

// ScalarBaseMult returns s*Generator().
func ScalarBaseMult(s *Scalar) *Point {
	return &Point{p: edwards25519.NewIdentityPoint().ScalarBaseMult(s.s)}
}

// Equal reports whether p == q.
func (p *Point) Equal(q *Point) bool {
	return p.p.Equal(q.p) == 1
}

// IsIdentity reports whether p is the group identity.
func (p *Point) IsIdentity() bool {
	return p.Equal(Identity())
}

// IsSmallOrder reports whether Cofactor*p is the identity, i.e. whether p is
// of small order. Verification keys decoded from untrusted bytes must be
// rejected when this returns true (spec.md §3, §4.C).
func (p *Point) IsSmallOrder() bool {
	eight := ScalarFromUint64(Cofactor)
	return p.ScalarMult(eight).IsIdentity()
}

// MultiScalarMult computes sum(scalars[i] * points[i]) using the backing
// library's variable-time multiscalar multiplication. This realizes spec.md
// §4.E's requirement for an MSM algorithm competitive with Pippenger /
// Straus-with-NAF: filippo.io/edwards25519's VarTimeMultiScalarMult scans
// width-5 NAF digits of all scalars at once against per-point tables of odd
// multiples, so this package does not re-derive NAF tables by hand. Variable-time is
// appropriate here: every caller of MultiScalarMult in this module (the
// batch verifier) only ever combines public values.
func MultiScalarMult(scalars []*Scalar, points []*Point) *Point {
	ss := make([]*edwards25519.Scalar, len(scalars))
	pp := make([]*edwards25519.Point, len(points))
	for i, s := range scalars {
		ss[i] = s.s
	}
	for i, p := range points {
		pp[i] = p.p
	}
	return &Point{p: edwards25519.NewIdentityPoint().VarTimeMultiScalarMult(ss, pp)}
}

// HashToBasepoint derives a "nothing up my sleeve" generator of the
// prime-order subgroup from a domain separation label, by hashing with
// SHA-512 (truncated to 32 bytes) until a canonical point encoding is found,
// then clearing the cofactor by scalar multiplication by Cofactor. This
// stands in for the protocol-fixed SpendAuth/Binding basepoint bytes that a
// concrete Jubjub backend would hardcode (spec.md §4.B); see params.go.
func HashToBasepoint(label []byte) *Point {
	counter := byte(0)
	for {
		h := sha512.Sum512(append(append([]byte{}, label...), counter))
		candidate, err := edwards25519.NewIdentityPoint().SetBytes(h[:32])
		if err == nil {
			p := &Point{p: candidate}
			base := p.ScalarMult(ScalarFromUint64(Cofactor))
			if !base.IsIdentity() {
				return base
			}
		}
		counter++
	}
}
