package messages

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orchard-labs/redjubjub"
	"github.com/orchard-labs/redjubjub/frost"
	"github.com/orchard-labs/redjubjub/group"
)

// TestAggregateSignaturePayloadRoundTrip drives a full FROST signing session,
// wraps the result in an AggregateSignature wire payload, encodes and decodes
// the whole envelope, then verifies the recovered signature bytes against the
// group public key as an ordinary RedDSA signature.
func TestAggregateSignaturePayloadRoundTrip(t *testing.T) {
	result, err := frost.DealerKeygenRand(3, 2)
	require.NoError(t, err)

	byIndex := make(map[uint64]*frost.Share, len(result.Shares))
	for _, s := range result.Shares {
		byIndex[s.ReceiverIndex] = s
	}
	participants := []uint64{1, 2}
	message := []byte("bridge round trip")

	agg := frost.NewAggregator(result.GroupPublicKey)
	require.NoError(t, agg.BeginSign(message, participants, 2))

	sessions := make(map[uint64]*frost.Session, len(participants))
	var pkg *frost.SigningPackage
	for _, idx := range participants {
		handle := frost.NewSecretShareHandle(byIndex[idx], result.GroupPublicKey)
		session, commitments, err := frost.BeginSign(handle, rand.Reader)
		require.NoError(t, err)
		sessions[idx] = session

		p, err := agg.ReceiveCommitment(commitments)
		require.NoError(t, err)
		if p != nil {
			pkg = p
		}
	}
	require.NotNil(t, pkg)

	var R *group.Point
	var z *group.Scalar
	for _, idx := range participants {
		sigShare, err := sessions[idx].Respond(pkg)
		require.NoError(t, err)

		signerVK := frostSpendAuthPoint(byIndex[idx])
		gotR, gotZ, err := agg.ReceiveSignatureShare(signerVK, sigShare)
		require.NoError(t, err)
		if gotR != nil {
			R, z = gotR, gotZ
		}
	}
	require.NotNil(t, R)

	sigBytes := frost.EncodeSignature(R, z)
	wirePayload := AggregateSignatureFromBytes(sigBytes)

	msg := &Message{
		Header:  Header{Version: BasicFrostSerialization, Sender: Aggregator(), Receiver: Signer(0)},
		Payload: wirePayload,
	}
	wire, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(wire)
	require.NoError(t, err)
	got, ok := decoded.Payload.(*AggregateSignature)
	require.True(t, ok)

	sig, err := redjubjub.SignatureFromBytes[redjubjub.SpendAuth](func() []byte {
		b := got.SignatureBytes()
		return b[:]
	}())
	require.NoError(t, err)

	vkBytes := result.GroupPublicKey.Bytes()
	vk, err := redjubjub.VerificationKeyFromBytes[redjubjub.SpendAuth](vkBytes[:])
	require.NoError(t, err)

	require.NoError(t, redjubjub.Verify(vk, message, sig))
}

// frostSpendAuthPoint reconstructs a signer's verification key the same way
// an aggregator would learn it out of band (frost's own SpendAuth basepoint
// is unexported, so the caller recomputes it once via the same fixed label).
func frostSpendAuthPoint(share *frost.Share) *group.Point {
	return group.HashToBasepoint([]byte("Zcash_RedJubjubSpendAuth")).ScalarMult(share.Value)
}
