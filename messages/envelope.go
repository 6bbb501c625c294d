package messages

import "github.com/orchard-labs/redjubjub/rjerr"

// Message is the full wire envelope: a Header plus a tagged Payload
// (original_source/src/messages.rs's Message struct).
type Message struct {
	Header  Header
	Payload Payload
}

// Encode produces the fixed binary layout: 3-byte header, 1-byte payload
// discriminant, then the payload's own encoding.
func (m *Message) Encode() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b := m.Header.encode()
	b = append(b, byte(m.Payload.payloadType()))
	b = append(b, m.Payload.encode()...)
	return b, nil
}

// Decode parses a Message from its wire encoding and validates it (header
// rules, payload rules, and the sender/receiver role-matching rules from
// messages/validate.rs) before returning it.
func Decode(b []byte) (*Message, error) {
	if uint64(len(b)) > MaxProtocolMessageLen {
		return nil, rjerr.New(rjerr.MessageTooLarge)
	}
	header, rest, err := decodeHeader(b)
	if err != nil {
		return nil, err
	}
	if len(rest) < 1 {
		return nil, rjerr.New(rjerr.RoleMismatch)
	}
	tag := payloadType(rest[0])
	rest = rest[1:]

	var payload Payload
	switch tag {
	case payloadSharePackage:
		payload, _, err = decodeSharePackage(rest)
	case payloadSigningCommitments:
		payload, _, err = decodeSigningCommitments(rest)
	case payloadSigningPackage:
		payload, _, err = decodeSigningPackage(rest)
	case payloadSignatureShare:
		payload, _, err = decodeSignatureShare(rest)
	case payloadAggregateSignature:
		payload, _, err = decodeAggregateSignature(rest)
	default:
		return nil, rjerr.New(rjerr.RoleMismatch)
	}
	if err != nil {
		return nil, err
	}

	m := &Message{Header: header, Payload: payload}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
