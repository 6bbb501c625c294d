package frost

import (
	"fmt"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

// aggregatorState enumerates the Aggregator's session-typed progression
// (spec.md §4.G): Idle → AwaitingCommitmentShares → AwaitingResponseShares →
// terminal.
type aggregatorState int

const (
	aggregatorIdle aggregatorState = iota
	aggregatorAwaitingCommitments
	aggregatorAwaitingResponses
	aggregatorDone
)

// Aggregator is the untrusted coordinator role of a FROST signing session:
// it collects round-one commitments, hands back a SigningPackage, collects
// round-two signature shares, verifies each, and combines them into a final
// signature. It does not hold a secret share of its own.
type Aggregator struct {
	state aggregatorState

	groupPublicKey *group.Point
	participants   []uint64
	message        []byte

	commitments map[uint64]*Commitments
	shares      map[uint64]*SignatureShare

	pkg *SigningPackage
}

// NewAggregator constructs an Aggregator for one signing attempt over the
// given group public key.
func NewAggregator(groupPublicKey *GroupPublicKey) *Aggregator {
	return &Aggregator{
		state:          aggregatorIdle,
		groupPublicKey: groupPublicKey.Point,
	}
}

// BeginSign transitions Idle → AwaitingCommitmentShares. participants must be
// exactly threshold indices, each unique (spec.md §4.G). It fails with
// InvalidSigners otherwise.
func (a *Aggregator) BeginSign(message []byte, participants []uint64, threshold uint64) error {
	if a.state != aggregatorIdle {
		return fmt.Errorf("frost: aggregator not idle")
	}
	if uint64(len(participants)) != threshold {
		return rjerr.New(rjerr.InvalidSigners)
	}
	seen := make(map[uint64]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return rjerr.New(rjerr.InvalidSigners)
		}
		seen[p] = true
	}

	a.message = message
	a.participants = append([]uint64(nil), participants...)
	a.commitments = make(map[uint64]*Commitments, len(participants))
	a.shares = make(map[uint64]*SignatureShare, len(participants))
	a.state = aggregatorAwaitingCommitments
	return nil
}

// ReceiveCommitment records one signer's round-one commitment. Once every
// listed participant has reported, it returns the SigningPackage to
// broadcast and transitions to AwaitingResponseShares; otherwise it returns
// (nil, nil) to indicate more are still expected.
func (a *Aggregator) ReceiveCommitment(c *Commitments) (*SigningPackage, error) {
	if a.state != aggregatorAwaitingCommitments {
		return nil, fmt.Errorf("frost: aggregator not awaiting commitments")
	}
	if !a.isParticipant(c.Index) {
		return nil, rjerr.New(rjerr.InvalidSigners)
	}
	a.commitments[c.Index] = c

	if len(a.commitments) < len(a.participants) {
		return nil, nil
	}

	ordered := make([]*Commitments, 0, len(a.participants))
	for _, p := range a.participants {
		ordered = append(ordered, a.commitments[p])
	}
	sorted, _, err := sortedCommitments(ordered, 0)
	if err != nil {
		return nil, err
	}

	a.pkg = &SigningPackage{Message: a.message, Commitments: sorted}
	a.state = aggregatorAwaitingResponses
	return a.pkg, nil
}

// ReceiveSignatureShare records and verifies one signer's round-two share
// (spec.md §4.G: z_i·P ?= (D_i + ρ_i·E_i) + vk_i·c·λ_i). Once every listed
// participant has reported a valid share, it returns the group commitment R
// and the combined response z (see EncodeSignature) and transitions to the
// terminal state; until then it returns (nil, nil, nil). InvalidSignatureShare identifies the
// offending participant and aborts nothing else already recorded.
func (a *Aggregator) ReceiveSignatureShare(shareholderVK *group.Point, share *SignatureShare) (*group.Point, *group.Scalar, error) {
	if a.state != aggregatorAwaitingResponses {
		return nil, nil, fmt.Errorf("frost: aggregator not awaiting responses")
	}
	if !a.isParticipant(share.Index) {
		return nil, nil, rjerr.New(rjerr.InvalidSigners)
	}

	if err := a.verifyShare(shareholderVK, share); err != nil {
		return nil, nil, err
	}
	a.shares[share.Index] = share

	if len(a.shares) < len(a.participants) {
		return nil, nil, nil
	}

	groupCommitment := computeGroupCommitment(
		a.pkg.Commitments,
		computeBindingFactors(a.groupPublicKey, a.pkg.Message, a.pkg.Commitments),
	)

	z := group.NewScalar()
	for _, p := range a.participants {
		z = z.Add(a.shares[p].Z)
	}

	a.state = aggregatorDone
	return groupCommitment, z, nil
}

// verifyShare checks one signer's share against its verification key,
// binding factor, and Lagrange coefficient, per spec.md §4.G.
func (a *Aggregator) verifyShare(shareholderVK *group.Point, share *SignatureShare) error {
	factors := computeBindingFactors(a.groupPublicKey, a.pkg.Message, a.pkg.Commitments)
	bindingFactor, ok := factors[share.Index]
	if !ok {
		return rjerr.WithParticipant(rjerr.NoMatchingBinding, share.Index, nil)
	}

	var commitment *Commitments
	for _, c := range a.pkg.Commitments {
		if c.Index == share.Index {
			commitment = c
			break
		}
	}
	if commitment == nil {
		return rjerr.WithParticipant(rjerr.NoMatchingCommitment, share.Index, nil)
	}

	lambda, err := participantLambda(share.Index, a.pkg.Commitments)
	if err != nil {
		return err
	}

	groupCommitment := computeGroupCommitment(a.pkg.Commitments, factors)
	challenge := computeChallenge(a.pkg.Message, groupCommitment, a.groupPublicKey)

	lhs := spendAuthBasepoint.ScalarMult(share.Z)
	rhs := commitment.Hiding.Add(commitment.Binding.ScalarMult(bindingFactor)).
		Add(shareholderVK.ScalarMult(lambda.Multiply(challenge)))

	if !lhs.Equal(rhs) {
		return rjerr.WithParticipant(rjerr.InvalidSignatureShare, share.Index, nil)
	}
	return nil
}

func participantLambda(index uint64, commitments []*Commitments) (*group.Scalar, error) {
	indices := make([]uint64, len(commitments))
	for i, c := range commitments {
		indices[i] = c.Index
	}
	return deriveInterpolatingValue(index, indices)
}

func (a *Aggregator) isParticipant(index uint64) bool {
	for _, p := range a.participants {
		if p == index {
			return true
		}
	}
	return false
}
