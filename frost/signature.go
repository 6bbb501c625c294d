package frost

import "github.com/orchard-labs/redjubjub/group"

// EncodeSignature packages a FROST aggregate's group commitment and combined
// response scalar into the standard 64-byte RedDSA wire format (R ‖ s), so
// the result of Aggregator.ReceiveSignatureShare or RoastCoordinator's final
// round verifies against the group public key with an ordinary
// redjubjub.Verify call (spec.md §4.G: "a valid FROST aggregate passes
// single-signature verification").
func EncodeSignature(groupCommitment *group.Point, z *group.Scalar) [64]byte {
	var out [64]byte
	r := groupCommitment.Bytes()
	s := z.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}
