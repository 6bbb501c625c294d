package messages

import "github.com/orchard-labs/redjubjub/rjerr"

// Header is the three-byte common prefix of every wire message
// (original_source/src/messages.rs's Header struct): version, sender,
// receiver, each encoded as a single byte.
type Header struct {
	Version  uint8
	Sender   ParticipantId
	Receiver ParticipantId
}

func (h Header) encode() []byte {
	return []byte{h.Version, h.Sender.encode(), h.Receiver.encode()}
}

func decodeHeader(b []byte) (Header, []byte, error) {
	if len(b) < 3 {
		return Header{}, nil, rjerr.New(rjerr.WrongVersion)
	}
	h := Header{
		Version:  b[0],
		Sender:   decodeParticipantID(b[1]),
		Receiver: decodeParticipantID(b[2]),
	}
	return h, b[3:], nil
}

// validate checks the header-level rules from messages/validate.rs: the
// version must match the one format this package implements, and sender
// must differ from receiver.
func (h Header) validate() error {
	if h.Version != BasicFrostSerialization {
		return rjerr.New(rjerr.WrongVersion)
	}
	if h.Sender.equal(h.Receiver) {
		return rjerr.New(rjerr.SameSenderAndReceiver)
	}
	return nil
}
