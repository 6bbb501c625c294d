// Package frost implements the cryptographic core and session-typed state
// machine of FROST (Flexible Round-Optimized Schnorr Threshold signatures)
// over the group backing the redjubjub package, per spec.md §4.F-G.
//
// This follows the same strategy-pattern shape the upstream secp256k1/BIP-340
// implementation in this repository used — a curve-agnostic protocol layer
// over a small set of group primitives — generalized to operate over
// group.Scalar/group.Point instead of big.Int-based secp256k1 points, so the
// same protocol logic signs RedDSA keys directly.
package frost

import (
	"github.com/orchard-labs/redjubjub/group"
)

// MinSigners mirrors spec.md §6's MIN_SIGNERS / MIN_THRESHOLD. DealerKeygen
// does not enforce it: any threshold from 1 up to the number of shares is
// accepted.
const MinSigners = 2

// MaxSigners is the largest number of signers the wire layer's ParticipantId
// encoding can address (spec.md §6's MAX_SIGNERS).
const MaxSigners = 254

// Config describes a FROST deployment: n total shares, a signing threshold
// t, and (for a given holder) its own share identifier (spec.md §3).
type Config struct {
	NumShares uint64
	Threshold uint64
	ShareID   uint64
}

// Share is one dealer-issued VSS share (spec.md §3, §4.F). Commitment is the
// same ordered sequence of t SpendAuth-basepoint points for every recipient;
// Value differs per recipient.
type Share struct {
	ReceiverIndex uint64
	Value         *group.Scalar
	Commitment    []*group.Point
}

// Zeroize overwrites the share's secret value. The commitment is public and
// is left untouched.
func (s *Share) Zeroize() {
	s.Value.Zeroize()
}

// GroupPublicKey is the SpendAuth verification key corresponding to a
// dealer's constant polynomial term a_0 (spec.md §3).
type GroupPublicKey struct {
	Point *group.Point
}

// Bytes returns the canonical 32-byte encoding.
func (g *GroupPublicKey) Bytes() [32]byte {
	return g.Point.Bytes()
}

// Nonces is a signer's single-use pair of hiding/binding nonce scalars
// (spec.md §3's SigningNonces). Zero it once Round2 has consumed it.
type Nonces struct {
	Hiding  *group.Scalar
	Binding *group.Scalar
}

// Zeroize overwrites both nonce scalars.
func (n *Nonces) Zeroize() {
	n.Hiding.Zeroize()
	n.Binding.Zeroize()
}

// Commitments is the public counterpart of Nonces, published in round one
// (spec.md §3's SigningCommitments).
type Commitments struct {
	Index   uint64
	Hiding  *group.Point
	Binding *group.Point
}

// SigningPackage bundles the message to be signed with every participating
// signer's round-one commitments, canonically sorted by Index (spec.md §3,
// §5's ordering requirement).
type SigningPackage struct {
	Message     []byte
	Commitments []*Commitments
}

// SignatureShare is one signer's round-two contribution (spec.md §3).
type SignatureShare struct {
	Index uint64
	Z     *group.Scalar
}

// Zeroize overwrites the share scalar.
func (s *SignatureShare) Zeroize() {
	s.Z.Zeroize()
}

// bindingFactors maps a participant index to its ρ_i binding factor,
// produced by computeBindingFactors and consumed by computeGroupCommitment
// (spec.md §4.G).
type bindingFactors map[uint64]*group.Scalar

// concat returns a of a followed by each of bs without mutating a.
func concat(a []byte, bs ...[]byte) []byte {
	c := make([]byte, len(a))
	copy(c, a)
	for _, b := range bs {
		c = append(c, b...)
	}
	return c
}
