// Package messages implements the fixed, versioned wire format that carries
// FROST protocol messages between dealer, signers, and aggregator (spec.md
// §6, grounded on original_source/src/messages.rs, messages/constants.rs,
// and messages/validate.rs).
package messages

// BasicFrostSerialization is the only wire format version this package
// understands (spec.md §6's "version == basic_frost_serialization (currently
// 0)").
const BasicFrostSerialization uint8 = 0

// Participant ID byte-range constants (spec.md §6, §4.H).
const (
	MaxSignerParticipantID  = 253
	DealerParticipantID     = 254
	AggregatorParticipantID = 255

	MaxSigners   = 254
	MinSigners   = 2
	MinThreshold = 2

	MaxProtocolMessageLen = 2 * 1024 * 1024
)

// payloadType is the leading discriminant byte of an encoded Payload
// (spec.md §6).
type payloadType uint8

const (
	payloadSharePackage       payloadType = 0
	payloadSigningCommitments payloadType = 1
	payloadSigningPackage     payloadType = 2
	payloadSignatureShare     payloadType = 3
	payloadAggregateSignature payloadType = 4
)
