package frost

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

var spendAuthBasepoint = group.HashToBasepoint([]byte("Zcash_RedJubjubSpendAuth"))

// computeBindingFactors implements def compute_binding_factors(group_public_key,
// commitment_list, msg) from the FROST draft, section 4.4. Binding Factors
// Computation.
//
// Participant indices are encoded 8-byte big-endian in the ρ preimage
// (resolving spec.md §9's corresponding open question; see SPEC_FULL.md §3).
func computeBindingFactors(
	groupPublicKey *group.Point,
	message []byte,
	commitments []*Commitments,
) bindingFactors {
	groupPublicKeyEncoded := pointBytes(groupPublicKey)
	msgHash := h4(message)
	encodedCommitHash := h5(encodeGroupCommitment(commitments))

	rhoInputPrefix := concat(groupPublicKeyEncoded, msgHash, encodedCommitHash)

	factors := make(bindingFactors, len(commitments))
	for _, c := range commitments {
		var idx [8]byte
		binary.BigEndian.PutUint64(idx[:], c.Index)
		rhoInput := concat(rhoInputPrefix, idx[:])
		factors[c.Index] = h1(rhoInput)
	}
	return factors
}

// computeGroupCommitment implements def compute_group_commitment from the
// FROST draft, section 4.5. Group Commitment Computation.
func computeGroupCommitment(commitments []*Commitments, factors bindingFactors) *group.Point {
	groupCommitment := group.Identity()
	for _, c := range commitments {
		bindingFactor := factors[c.Index]
		bindingNonce := c.Binding.ScalarMult(bindingFactor)
		groupCommitment = groupCommitment.Add(c.Hiding.Add(bindingNonce))
	}
	return groupCommitment
}

// encodeGroupCommitment implements def encode_group_commitment_list from the
// FROST draft, section 4.3. List Operations. Commitments must already be
// sorted ascending by Index; see sortedCommitments.
func encodeGroupCommitment(commitments []*Commitments) []byte {
	b := make([]byte, 0, (8+2*group.PointSize)*len(commitments))
	for _, c := range commitments {
		var idx [8]byte
		binary.BigEndian.PutUint64(idx[:], c.Index)
		b = append(b, idx[:]...)
		hb := c.Hiding.Bytes()
		bb := c.Binding.Bytes()
		b = append(b, hb[:]...)
		b = append(b, bb[:]...)
	}
	return b
}

// computeChallenge implements the signature challenge computation from the
// FROST draft, section 4.6.
func computeChallenge(message []byte, groupCommitment, groupPublicKey *group.Point) *group.Scalar {
	return h2(pointBytes(groupCommitment), pointBytes(groupPublicKey), message)
}

// deriveInterpolatingValue implements def derive_interpolating_value(L, x_i)
// from the FROST draft, section 4.2. Polynomials — the Lagrange coefficient
// λ_i for participant x_i over the participant set L.
func deriveInterpolatingValue(xi uint64, participants []uint64) (*group.Scalar, error) {
	num := group.ScalarFromUint64(1)
	den := group.ScalarFromUint64(1)
	for _, xj := range participants {
		if xj == xi {
			continue
		}
		num = num.Multiply(group.ScalarFromUint64(xj))
		diff := scalarFromSignedDiff(xj, xi)
		den = den.Multiply(diff)
	}
	if den.IsZero() {
		return nil, rjerr.New(rjerr.DuplicateShares)
	}
	return num.Multiply(den.Invert()), nil
}

// scalarFromSignedDiff computes (xj - xi) as a scalar, correctly reducing a
// possibly-negative difference of two small participant indices.
func scalarFromSignedDiff(xj, xi uint64) *group.Scalar {
	if xj >= xi {
		return group.ScalarFromUint64(xj - xi)
	}
	return group.ScalarFromUint64(xi - xj).Negate()
}

// sortedCommitments returns commitments sorted ascending by Index,
// validating the invariants spec.md §5 requires of any counterparty-supplied
// commitment list: no duplicates, no nils, and (if selfIndex is non-zero)
// that the caller's own commitment is present.
func sortedCommitments(commitments []*Commitments, selfIndex uint64) ([]*Commitments, []uint64, error) {
	for i, c := range commitments {
		if c == nil {
			return nil, nil, fmt.Errorf("commitment at position %d is nil", i)
		}
	}

	sorted := make([]*Commitments, len(commitments))
	copy(sorted, commitments)
	slices.SortFunc(sorted, func(a, b *Commitments) int {
		switch {
		case a.Index < b.Index:
			return -1
		case a.Index > b.Index:
			return 1
		default:
			return 0
		}
	})

	participants := make([]uint64, len(sorted))
	seen := make(map[uint64]bool, len(sorted))
	found := selfIndex == 0
	for i, c := range sorted {
		if seen[c.Index] {
			return nil, nil, rjerr.New(rjerr.DuplicateShares)
		}
		seen[c.Index] = true
		participants[i] = c.Index
		if c.Index == selfIndex {
			found = true
		}
		if c.Hiding.IsIdentity() || c.Binding.IsIdentity() {
			return nil, nil, rjerr.New(rjerr.IdentityCommitment)
		}
	}
	if !found {
		return nil, nil, rjerr.New(rjerr.NoMatchingCommitment)
	}
	return sorted, participants, nil
}

func pointBytes(p *group.Point) []byte {
	b := p.Bytes()
	return b[:]
}
