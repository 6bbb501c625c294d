// Package rjerr defines the shared error taxonomy for RedJubjub and FROST.
//
// The upstream Rust crate splits errors across two thiserror enums,
// SignatureError and FrostError (original_source/src/error.rs). Go has no
// enum-with-payload sugar, so both are unified into one Kind plus a single
// Error type that carries optional context — a wrapped cause, or the index
// of a misbehaving FROST participant — while still supporting errors.Is
// against a Kind and errors.As against *Error.
package rjerr

import "fmt"

// Kind identifies the category of a RedJubjub/FROST error.
type Kind int

const (
	_ Kind = iota
	// MalformedSigningKey: a signing key's 32-byte encoding is not a
	// canonical scalar.
	MalformedSigningKey
	// MalformedVerificationKey: a verification key's 32-byte encoding is not
	// a canonical point, or the decoded point is of small order.
	MalformedVerificationKey
	// InvalidSignature: signature verification (single or batch) failed.
	InvalidSignature
	// InvalidShare: a FROST VSS share failed verification against its
	// polynomial commitment.
	InvalidShare
	// InvalidSignatureShare: a FROST signer's signature share failed the
	// aggregator's per-share verification equation.
	InvalidSignatureShare
	// InvalidSigners: the set of signing participants presented to the
	// aggregator is the wrong size, contains duplicates, or names an
	// unknown participant.
	InvalidSigners
	// ZeroThreshold: a FROST config's threshold is 0.
	ZeroThreshold
	// ZeroShares: a FROST config's number of shares is 0.
	ZeroShares
	// ThresholdExceedShares: threshold > num_shares.
	ThresholdExceedShares
	// DuplicateShares: Lagrange interpolation was given a participant list
	// with a repeated index, or a zero denominator resulted from it.
	DuplicateShares
	// IdentityCommitment: a nonce or VSS commitment point is the group
	// identity.
	IdentityCommitment
	// NoMatchingCommitment: a signer's own commitment was not found in the
	// list of commitments it was asked to process.
	NoMatchingCommitment
	// NoMatchingBinding: a binding factor lookup failed for a participant
	// index.
	NoMatchingBinding
	// WrongVersion: a wire envelope's version byte does not match the
	// format this module implements.
	WrongVersion
	// SameSenderAndReceiver: a wire envelope's header names the same
	// participant as both sender and receiver.
	SameSenderAndReceiver
	// RoleMismatch: a wire envelope's sender/receiver role does not match
	// what its payload type requires.
	RoleMismatch
	// CommitmentCountOutOfRange: a SigningPackage or SharePackage carries a
	// commitment/share sequence outside [MIN_SIGNERS, MAX_SIGNERS].
	CommitmentCountOutOfRange
	// MessageTooLarge: a SigningPackage's message exceeds
	// MAX_PROTOCOL_MESSAGE_LEN.
	MessageTooLarge
	// ShareInUse: a second FROST signing session was attempted on a secret
	// share that already has a session in flight (the Drijvers-attack
	// misuse-resistance guard).
	ShareInUse
)

func (k Kind) String() string {
	switch k {
	case MalformedSigningKey:
		return "malformed signing key"
	case MalformedVerificationKey:
		return "malformed verification key"
	case InvalidSignature:
		return "invalid signature"
	case InvalidShare:
		return "invalid share"
	case InvalidSignatureShare:
		return "invalid signature share"
	case InvalidSigners:
		return "invalid signers"
	case ZeroThreshold:
		return "threshold cannot be zero"
	case ZeroShares:
		return "number of shares cannot be zero"
	case ThresholdExceedShares:
		return "threshold cannot exceed number of shares"
	case DuplicateShares:
		return "duplicate shares"
	case IdentityCommitment:
		return "commitment is the identity"
	case NoMatchingCommitment:
		return "no matching commitment"
	case NoMatchingBinding:
		return "no matching binding factor"
	case WrongVersion:
		return "wrong protocol version"
	case SameSenderAndReceiver:
		return "sender and receiver are the same"
	case RoleMismatch:
		return "sender or receiver role mismatch"
	case CommitmentCountOutOfRange:
		return "commitment count out of range"
	case MessageTooLarge:
		return "message too large"
	case ShareInUse:
		return "secret share already has a signing session in flight"
	default:
		return "unknown redjubjub error"
	}
}

// Error is the concrete error type returned by this module's fallible
// operations.
type Error struct {
	Kind Kind

	// ParticipantIndex identifies the offending FROST participant, when
	// applicable (InvalidShare, InvalidSignatureShare). Zero means "not
	// applicable".
	ParticipantIndex uint64

	cause error
}

// New creates an Error of the given Kind with no further context.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap creates an Error of the given Kind wrapping cause.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// WithParticipant creates an InvalidShare/InvalidSignatureShare-style Error
// identifying the offending participant index.
func WithParticipant(kind Kind, index uint64, cause error) *Error {
	return &Error{Kind: kind, ParticipantIndex: index, cause: cause}
}

func (e *Error) Error() string {
	if e.ParticipantIndex != 0 {
		if e.cause != nil {
			return fmt.Sprintf("%s (participant %d): %v", e.Kind, e.ParticipantIndex, e.cause)
		}
		return fmt.Sprintf("%s (participant %d)", e.Kind, e.ParticipantIndex)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is supports errors.Is(err, rjerr.New(SomeKind)) by comparing Kind only.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
