package messages

// SignatureBytes reassembles the standard 64-byte RedDSA wire format
// (R ‖ s, see frost.EncodeSignature) from an AggregateSignature payload, so a
// received AggregateSignature message can be handed straight to
// redjubjub.SignatureFromBytes for verification.
func (a *AggregateSignature) SignatureBytes() [64]byte {
	var out [64]byte
	copy(out[:32], a.GroupCommitment[:])
	copy(out[32:], a.SchnorrSignature[:])
	return out
}

// AggregateSignatureFromBytes splits a 64-byte RedDSA signature (as produced
// by frost.EncodeSignature) into the wire AggregateSignature payload.
func AggregateSignatureFromBytes(sig [64]byte) *AggregateSignature {
	a := &AggregateSignature{}
	copy(a.GroupCommitment[:], sig[:32])
	copy(a.SchnorrSignature[:], sig[32:])
	return a
}
