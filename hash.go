package redjubjub

import (
	"hash"

	"golang.org/x/crypto/blake2b"

	"github.com/orchard-labs/redjubjub/group"
)

// hStarPersonalization is the personalization string required by spec.md
// §4.A and §6, matching the Zcash protocol specification byte-for-byte.
// Both SigType families share it (spec.md §9's second open question is
// resolved this way; see SPEC_FULL.md §3).
//
// golang.org/x/crypto/blake2b does not expose blake2b_simd's dedicated
// "personal" IV parameter, so personalization is folded into the digest the
// same way a BIP-340 tagged hash domain-separates: the personalization bytes
// are written into the digest before any caller data, making them a fixed,
// unambiguous prefix of every H* computation.
var hStarPersonalization = []byte("Zcash_RedJubjubH")

// HStar is the streaming hash-to-scalar builder from spec.md §4.A:
//
//	H*(X) := reduce_wide(BLAKE2b-512(personal="Zcash_RedJubjubH", X)) mod Fr
//
// It carries no state beyond the underlying digest and is safe to build
// incrementally via chained Update calls before a single Finalize.
type HStar struct {
	state hash.Hash
}

// NewHStar starts a new H* computation, already seeded with the
// Zcash_RedJubjubH personalization.
func NewHStar() *HStar {
	state, err := blake2b.New(64, nil)
	if err != nil {
		// Only fails for a key longer than 64 bytes; we never pass one.
		panic(err)
	}
	state.Write(hStarPersonalization)
	return &HStar{state: state}
}

// Update folds data into the hash and returns the receiver for chaining.
func (h *HStar) Update(data []byte) *HStar {
	h.state.Write(data)
	return h
}

// Finalize consumes the builder and reduces the 64-byte digest into a
// Scalar via wide reduction.
func (h *HStar) Finalize() *group.Scalar {
	digest := h.state.Sum(nil)
	s, err := group.ScalarFromWideBytes(digest)
	if err != nil {
		// A 64-byte BLAKE2b digest always produces exactly 64 bytes.
		panic(err)
	}
	return s
}

// hStar is a convenience one-shot form of HStar for a fixed set of inputs,
// used throughout signing, verification, and batch item construction.
func hStar(parts ...[]byte) *group.Scalar {
	h := NewHStar()
	for _, p := range parts {
		h.Update(p)
	}
	return h.Finalize()
}

// concat returns a fresh slice containing a followed by each of bs, without
// mutating a even if it has spare capacity (append(a, b...) can do that).
func concat(a []byte, bs ...[]byte) []byte {
	c := make([]byte, len(a))
	copy(c, a)
	for _, b := range bs {
		c = append(c, b...)
	}
	return c
}
