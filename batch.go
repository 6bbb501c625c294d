package redjubjub

import (
	"crypto/rand"
	"io"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

// batchItem is one queued (vk, sig, challenge) tuple, tagged by which
// basepoint it verifies against so SpendAuth and Binding items can share one
// batch (spec.md §4.E, §9's re-architecture note on combined batching).
type batchItem struct {
	spendAuth bool // true: SpendAuth basepoint; false: Binding basepoint.
	vkBytes   [32]byte
	rBytes    [32]byte
	sBytes    [32]byte
	challenge *group.Scalar
}

// Verifier accumulates signature items for combined verification via a
// single multi-scalar multiplication (spec.md §4.E). It is not safe for
// concurrent use by multiple goroutines without external synchronization,
// matching spec.md §5's "single logical call" framing.
type Verifier struct {
	items []batchItem
}

// NewVerifier returns an empty batch.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// QueueSpendAuth appends a SpendAuth item. The message need not outlive this
// call; only the bytes needed for the final check are retained.
func (v *Verifier) QueueSpendAuth(vk *VerificationKey[SpendAuth], message []byte, sig *Signature[SpendAuth]) {
	v.queue(true, vk.Bytes(), sig.rBytes, sig.sBytes, message)
}

// QueueBinding appends a Binding item.
func (v *Verifier) QueueBinding(vk *VerificationKey[Binding], message []byte, sig *Signature[Binding]) {
	v.queue(false, vk.Bytes(), sig.rBytes, sig.sBytes, message)
}

func (v *Verifier) queue(spendAuth bool, vkBytes, rBytes, sBytes [32]byte, message []byte) {
	challenge := hStar(rBytes[:], vkBytes[:], message)
	v.items = append(v.items, batchItem{
		spendAuth: spendAuth,
		vkBytes:   vkBytes,
		rBytes:    rBytes,
		sBytes:    sBytes,
		challenge: challenge,
	})
}

// Verify consumes the batch and returns nil iff every queued item is valid,
// by collapsing all verification equations into one multi-scalar
// multiplication with independent random 128-bit weights (spec.md §4.E).
// This is variable-time and must only ever be called over public inputs —
// every value a batch item carries (vk, sig) is public by construction.
//
// Challenges were already computed at queue time from the message each item
// was queued with (spec.md §4.E's "items may be constructed eagerly so the
// message need not outlive the batch"), so Verify itself needs no messages.
func (v *Verifier) Verify(rng io.Reader) error {
	return v.verifyItems(rng)
}

func (v *Verifier) verifyItems(rng io.Reader) error {
	n := len(v.items)
	if n == 0 {
		return nil
	}

	spendAuthCoeff := group.NewScalar()
	bindingCoeff := group.NewScalar()

	scalars := make([]*group.Scalar, 0, 2+2*n)
	points := make([]*group.Point, 0, 2+2*n)

	vkCoeffs := make([]*group.Scalar, n)
	rCoeffs := make([]*group.Scalar, n)
	vkPoints := make([]*group.Point, n)
	rPoints := make([]*group.Point, n)

	for i, item := range v.items {
		R, err := group.PointFromCanonicalBytes(item.rBytes[:])
		if err != nil {
			return rjerr.New(rjerr.InvalidSignature)
		}
		s, err := group.ScalarFromCanonicalBytes(item.sBytes[:])
		if err != nil {
			return rjerr.New(rjerr.InvalidSignature)
		}
		vkPoint, err := group.PointFromCanonicalBytes(item.vkBytes[:])
		if err != nil {
			return rjerr.New(rjerr.InvalidSignature)
		}

		c := item.challenge
		z := randomScalar128(rng)

		zs := z.Multiply(s)
		if item.spendAuth {
			spendAuthCoeff = spendAuthCoeff.Subtract(zs)
		} else {
			bindingCoeff = bindingCoeff.Subtract(zs)
		}

		vkCoeffs[i] = z.Multiply(c)
		rCoeffs[i] = z
		vkPoints[i] = vkPoint
		rPoints[i] = R
	}

	scalars = append(scalars, spendAuthCoeff, bindingCoeff)
	points = append(points, spendAuthParams.basepoint, bindingParams.basepoint)
	scalars = append(scalars, vkCoeffs...)
	points = append(points, vkPoints...)
	scalars = append(scalars, rCoeffs...)
	points = append(points, rPoints...)

	check := group.MultiScalarMult(scalars, points)
	if !check.IsSmallOrder() {
		return rjerr.New(rjerr.InvalidSignature)
	}
	return nil
}

// VerifyRand is a convenience wrapper over crypto/rand.Reader.
func (v *Verifier) VerifyRand() error {
	return v.Verify(rand.Reader)
}

// randomScalar128 samples a 128-bit random weight placed in the low half of a
// scalar, per spec.md §4.E ("two u64 of entropy placed in the low half of a
// 4-u64 scalar").
func randomScalar128(rng io.Reader) *group.Scalar {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:16]); err != nil {
		panic(err)
	}
	return group.RandomScalar(wide)
}
