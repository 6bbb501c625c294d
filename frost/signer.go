package frost

import (
	"crypto/rand"
	"io"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

// Signer holds one participant's FROST secret share across a signing
// session. Unlike the previous secp256k1 incarnation of this package, a
// Signer's exclusive-use guarantee across concurrent sessions is enforced one
// layer up, by SecretShareHandle (session.go) — Signer itself is a plain
// value so tests can drive Round1/Round2 directly without going through the
// session machinery.
type Signer struct {
	index          uint64
	secretKeyShare *group.Scalar
	groupPublicKey *group.Point
}

// NewSigner constructs a Signer from a verified Share (see VerifyShare) and
// the group's public key.
func NewSigner(share *Share, groupPublicKey *GroupPublicKey) *Signer {
	return &Signer{
		index:          share.ReceiverIndex,
		secretKeyShare: share.Value,
		groupPublicKey: groupPublicKey.Point,
	}
}

// Round1 implements the FROST draft's Round One — Commitment: generate a
// fresh hiding/binding nonce pair and the corresponding public commitments
// (spec.md §3 SigningNonces/SigningCommitments, §4.G).
func (s *Signer) Round1(rng io.Reader) (*Nonces, *Commitments, error) {
	hiding, err := generateNonce(s.secretKeyShare, rng)
	if err != nil {
		return nil, nil, err
	}
	binding, err := generateNonce(s.secretKeyShare, rng)
	if err != nil {
		return nil, nil, err
	}

	nonces := &Nonces{Hiding: hiding, Binding: binding}
	commitments := &Commitments{
		Index:   s.index,
		Hiding:  spendAuthBasepoint.ScalarMult(hiding),
		Binding: spendAuthBasepoint.ScalarMult(binding),
	}
	return nonces, commitments, nil
}

// Round1Rand is a convenience wrapper over crypto/rand.Reader.
func (s *Signer) Round1Rand() (*Nonces, *Commitments, error) {
	return s.Round1(rand.Reader)
}

func generateNonce(secret *group.Scalar, rng io.Reader) (*group.Scalar, error) {
	random := make([]byte, 32)
	if _, err := io.ReadFull(rng, random); err != nil {
		return nil, err
	}
	secretBytes := secret.Bytes()
	return h3(random, secretBytes[:]), nil
}

// Round2 implements the FROST draft's Round Two — Signature Share
// Generation: validate the commitment list, derive binding factors, the
// group commitment, this signer's Lagrange coefficient, and the Fiat-Shamir
// challenge, then compute
//
//	z_i = d_i + ρ_i·e_i + λ_i·sk_i·c
//
// (spec.md §4.G). nonces is consumed; callers must not reuse it.
func (s *Signer) Round2(pkg *SigningPackage, nonces *Nonces) (*SignatureShare, error) {
	sorted, participants, err := sortedCommitments(pkg.Commitments, s.index)
	if err != nil {
		return nil, err
	}

	factors := computeBindingFactors(s.groupPublicKey, pkg.Message, sorted)
	bindingFactor, ok := factors[s.index]
	if !ok {
		return nil, rjerr.WithParticipant(rjerr.NoMatchingBinding, s.index, nil)
	}

	groupCommitment := computeGroupCommitment(sorted, factors)

	lambda, err := deriveInterpolatingValue(s.index, participants)
	if err != nil {
		return nil, err
	}

	challenge := computeChallenge(pkg.Message, groupCommitment, s.groupPublicKey)

	bindingTerm := nonces.Binding.Multiply(bindingFactor)
	lambdaSk := lambda.Multiply(s.secretKeyShare)
	z := nonces.Hiding.Add(bindingTerm).Add(lambdaSk.Multiply(challenge))

	return &SignatureShare{Index: s.index, Z: z}, nil
}
