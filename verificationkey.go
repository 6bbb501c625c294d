package redjubjub

import (
	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

// VerificationKey is a RedDSA/RedJubjub public key: a point together with its
// canonical encoding, cached so repeated Bytes() calls don't re-encode
// (spec.md §3: "bytes must decode to a non-small-order point").
type VerificationKey[T SigType] struct {
	point *group.Point
	bytes [32]byte
}

func newVerificationKeyFromPoint[T SigType](p *group.Point) *VerificationKey[T] {
	return &VerificationKey[T]{point: p, bytes: p.Bytes()}
}

// VerificationKeyFromBytes decodes a canonical 32-byte point encoding,
// rejecting small-order points (spec.md §3, §4.C).
func VerificationKeyFromBytes[T SigType](b []byte) (*VerificationKey[T], error) {
	p, err := group.PointFromCanonicalBytes(b)
	if err != nil {
		return nil, rjerr.Wrap(rjerr.MalformedVerificationKey, err)
	}
	if p.IsSmallOrder() {
		return nil, rjerr.New(rjerr.MalformedVerificationKey)
	}
	var vk VerificationKey[T]
	vk.point = p
	copy(vk.bytes[:], b)
	return &vk, nil
}

// Bytes returns the canonical 32-byte affine point encoding.
func (vk *VerificationKey[T]) Bytes() [32]byte {
	return vk.bytes
}

// Randomize returns vk' = vk + r·P_T, where P_T is T's basepoint (P_SpendAuth
// for SpendAuth keys), the public counterpart of SigningKey.Randomize
// (spec.md §4.C, testable property 3).
func (vk *VerificationKey[T]) Randomize(r *group.Scalar) *VerificationKey[T] {
	params := sigTypeParams[T]()
	randomized := vk.point.Add(params.basepoint.ScalarMult(r))
	return newVerificationKeyFromPoint[T](randomized)
}

// Equal reports whether vk and other encode the same point.
func (vk *VerificationKey[T]) Equal(other *VerificationKey[T]) bool {
	return vk.point.Equal(other.point)
}
