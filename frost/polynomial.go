package frost

import (
	"crypto/rand"
	"io"

	"github.com/orchard-labs/redjubjub/group"
	"github.com/orchard-labs/redjubjub/rjerr"
)

// polynomial holds a Shamir polynomial's coefficients, constant term first
// (spec.md §4.F: "f(x) = a_0 + a_1 x + ... + a_{t-1} x^{t-1}").
type polynomial struct {
	coefficients []*group.Scalar
}

func generatePolynomial(threshold uint64, rng io.Reader) (*polynomial, error) {
	coeffs := make([]*group.Scalar, threshold)
	for i := range coeffs {
		var wide [64]byte
		if _, err := io.ReadFull(rng, wide[:]); err != nil {
			return nil, err
		}
		coeffs[i] = group.RandomScalar(wide)
	}
	return &polynomial{coefficients: coeffs}, nil
}

// evaluate computes f(x) via Horner's method.
func (p *polynomial) evaluate(x uint64) *group.Scalar {
	xs := group.ScalarFromUint64(x)
	result := group.NewScalar()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Multiply(xs).Add(p.coefficients[i])
	}
	return result
}

// commitment returns [a_0·P, a_1·P, ..., a_{t-1}·P] over the SpendAuth
// basepoint, shared verbatim by every share the dealer issues (spec.md
// §4.F's VSS commitment).
func (p *polynomial) commitment() []*group.Point {
	points := make([]*group.Point, len(p.coefficients))
	for i, c := range p.coefficients {
		points[i] = spendAuthBasepoint.ScalarMult(c)
	}
	return points
}

// DealerKeygenResult is the output of a dealer-based FROST key generation
// (spec.md §4.F): one Share per participant 1..=n, plus the group's public
// key.
type DealerKeygenResult struct {
	GroupPublicKey *GroupPublicKey
	Shares         []*Share
}

// DealerKeygen implements spec.md §4.F's dealer keygen algorithm: sample a
// degree-(t-1) polynomial, evaluate it at 1..=n, and package each evaluation
// with the shared VSS commitment.
func DealerKeygen(numShares, threshold uint64, rng io.Reader) (*DealerKeygenResult, error) {
	if threshold == 0 {
		return nil, rjerr.New(rjerr.ZeroThreshold)
	}
	if numShares == 0 {
		return nil, rjerr.New(rjerr.ZeroShares)
	}
	if threshold > numShares {
		return nil, rjerr.New(rjerr.ThresholdExceedShares)
	}

	poly, err := generatePolynomial(threshold, rng)
	if err != nil {
		return nil, err
	}
	commitment := poly.commitment()

	shares := make([]*Share, numShares)
	for j := uint64(1); j <= numShares; j++ {
		shares[j-1] = &Share{
			ReceiverIndex: j,
			Value:         poly.evaluate(j),
			Commitment:    commitment,
		}
	}

	return &DealerKeygenResult{
		GroupPublicKey: &GroupPublicKey{Point: commitment[0]},
		Shares:         shares,
	}, nil
}

// DealerKeygenRand is a convenience wrapper over crypto/rand.Reader.
func DealerKeygenRand(numShares, threshold uint64) (*DealerKeygenResult, error) {
	return DealerKeygen(numShares, threshold, rand.Reader)
}

// VerifyShare implements spec.md §4.F's share verification: each holder
// checks v·P == Σ_{k=0..t-1} (i^k)·C_k against the dealer's published
// commitment, failing InvalidShare on mismatch.
func VerifyShare(share *Share) error {
	expected := group.Identity()
	power := group.ScalarFromUint64(1)
	index := group.ScalarFromUint64(share.ReceiverIndex)
	for _, c := range share.Commitment {
		expected = expected.Add(c.ScalarMult(power))
		power = power.Multiply(index)
	}
	actual := spendAuthBasepoint.ScalarMult(share.Value)
	if !actual.Equal(expected) {
		return rjerr.WithParticipant(rjerr.InvalidShare, share.ReceiverIndex, nil)
	}
	return nil
}
