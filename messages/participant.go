package messages

// ParticipantRole distinguishes the three roles a ParticipantId can name on
// the wire (original_source/src/messages.rs's ParticipantId enum).
type ParticipantRole uint8

const (
	RoleSigner ParticipantRole = iota
	RoleDealer
	RoleAggregator
)

// ParticipantId is the single wire byte identifying a message's sender or
// receiver. Signers occupy 0..=MaxSignerParticipantID; the dealer and
// aggregator each get one fixed, reserved byte above that range.
//
// This is deliberately distinct from the frost package's 1..=n signer
// indexing (SPEC_FULL.md §3). This package has no conversion function
// between the two numberings; callers map frost index i to Signer(i-1).
type ParticipantId struct {
	Role  ParticipantRole
	Index uint8 // only meaningful when Role == RoleSigner
}

// Signer builds the wire ParticipantId for signer index i (0-based, per the
// wire format — callers bridging to frost's 1-based indices subtract 1).
func Signer(i uint8) ParticipantId { return ParticipantId{Role: RoleSigner, Index: i} }

// Dealer is the fixed wire ParticipantId for the dealer.
func Dealer() ParticipantId { return ParticipantId{Role: RoleDealer} }

// Aggregator is the fixed wire ParticipantId for the aggregator.
func Aggregator() ParticipantId { return ParticipantId{Role: RoleAggregator} }

// IsSigner reports whether id names a signer (as opposed to dealer/aggregator).
func (id ParticipantId) IsSigner() bool { return id.Role == RoleSigner }

func (id ParticipantId) encode() byte {
	switch id.Role {
	case RoleDealer:
		return DealerParticipantID
	case RoleAggregator:
		return AggregatorParticipantID
	default:
		return id.Index
	}
}

func decodeParticipantID(b byte) ParticipantId {
	switch b {
	case DealerParticipantID:
		return Dealer()
	case AggregatorParticipantID:
		return Aggregator()
	default:
		return Signer(b)
	}
}

// equal compares two wire participant IDs for identity (used by Header
// validation's sender != receiver check).
func (id ParticipantId) equal(other ParticipantId) bool {
	return id.Role == other.Role && (id.Role != RoleSigner || id.Index == other.Index)
}
