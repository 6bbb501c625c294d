package messages

import (
	"encoding/binary"

	"github.com/orchard-labs/redjubjub/rjerr"
)

// Payload is implemented by the five message bodies defined in
// original_source/src/messages.rs's Payload enum. Each payload knows its own
// discriminant and fixed binary layout.
type Payload interface {
	payloadType() payloadType
	encode() []byte
	// validate runs the payload-only rules from messages/validate.rs:
	// SharePackage checks its commitment count; SigningPackage checks its
	// message size, commitment count, signer roles, and duplicate signers.
	// The other payloads have none.
	validate() error
}

// SharePackage is what the dealer sends each signer after DealerKeygen: the
// group's public key, this signer's secret share, and the polynomial's
// commitment so the signer can verify its own share.
type SharePackage struct {
	GroupPublic     [32]byte
	SecretShare     [32]byte
	ShareCommitment [][32]byte
}

func (p *SharePackage) payloadType() payloadType { return payloadSharePackage }
func (p *SharePackage) validate() error {
	if len(p.ShareCommitment) < MinSigners || len(p.ShareCommitment) > MaxSigners {
		return rjerr.New(rjerr.CommitmentCountOutOfRange)
	}
	return nil
}

func (p *SharePackage) encode() []byte {
	b := make([]byte, 0, 64+2+32*len(p.ShareCommitment))
	b = append(b, p.GroupPublic[:]...)
	b = append(b, p.SecretShare[:]...)
	b = binary.BigEndian.AppendUint16(b, uint16(len(p.ShareCommitment)))
	for _, c := range p.ShareCommitment {
		b = append(b, c[:]...)
	}
	return b
}

func decodeSharePackage(b []byte) (*SharePackage, []byte, error) {
	if len(b) < 66 {
		return nil, nil, rjerr.New(rjerr.CommitmentCountOutOfRange)
	}
	p := &SharePackage{}
	copy(p.GroupPublic[:], b[:32])
	copy(p.SecretShare[:], b[32:64])
	count := binary.BigEndian.Uint16(b[64:66])
	rest := b[66:]
	if uint64(count) < MinThreshold {
		return nil, nil, rjerr.New(rjerr.CommitmentCountOutOfRange)
	}
	if len(rest) < int(count)*32 {
		return nil, nil, rjerr.New(rjerr.CommitmentCountOutOfRange)
	}
	p.ShareCommitment = make([][32]byte, count)
	for i := range p.ShareCommitment {
		copy(p.ShareCommitment[i][:], rest[i*32:(i+1)*32])
	}
	return p, rest[int(count)*32:], nil
}

// SigningCommitments is a signer's round-1 output sent to the aggregator.
type SigningCommitments struct {
	Hiding  [32]byte
	Binding [32]byte
}

func (c *SigningCommitments) payloadType() payloadType { return payloadSigningCommitments }
func (c *SigningCommitments) validate() error          { return nil }

func (c *SigningCommitments) encode() []byte {
	b := make([]byte, 0, 64)
	b = append(b, c.Hiding[:]...)
	b = append(b, c.Binding[:]...)
	return b
}

func decodeSigningCommitments(b []byte) (*SigningCommitments, []byte, error) {
	if len(b) < 64 {
		return nil, nil, rjerr.New(rjerr.CommitmentCountOutOfRange)
	}
	c := &SigningCommitments{}
	copy(c.Hiding[:], b[:32])
	copy(c.Binding[:], b[32:64])
	return c, b[64:], nil
}

// IndexedCommitments pairs one participant's SigningCommitments with the
// wire ParticipantId of the signer that sent it, standing in for the Rust
// crate's HashMap<ParticipantId, SigningCommitments> (spec.md §6's
// "signing packages that contain duplicate or missing ParticipantIds are
// invalid" rule is enforced by validate.go, not by the map type itself).
type IndexedCommitments struct {
	Signer      ParticipantId
	Commitments SigningCommitments
}

// SigningPackage is what the aggregator broadcasts to every selected signer
// in round 2: the message to be signed and every participant's round-1
// commitments.
type SigningPackage struct {
	SigningCommitments []IndexedCommitments
	Message            []byte
}

func (p *SigningPackage) payloadType() payloadType { return payloadSigningPackage }

func (p *SigningPackage) validate() error {
	if len(p.Message) > MaxProtocolMessageLen {
		return rjerr.New(rjerr.MessageTooLarge)
	}
	if uint64(len(p.SigningCommitments)) < MinSigners || len(p.SigningCommitments) > MaxSigners {
		return rjerr.New(rjerr.CommitmentCountOutOfRange)
	}
	seen := make(map[ParticipantId]bool, len(p.SigningCommitments))
	for _, ic := range p.SigningCommitments {
		if !ic.Signer.IsSigner() {
			return rjerr.New(rjerr.RoleMismatch)
		}
		if seen[ic.Signer] {
			return rjerr.New(rjerr.CommitmentCountOutOfRange)
		}
		seen[ic.Signer] = true
	}
	return nil
}

func (p *SigningPackage) encode() []byte {
	b := binary.BigEndian.AppendUint16(nil, uint16(len(p.SigningCommitments)))
	for _, ic := range p.SigningCommitments {
		b = append(b, ic.Signer.encode())
		b = append(b, ic.Commitments.encode()...)
	}
	b = binary.BigEndian.AppendUint32(b, uint32(len(p.Message)))
	b = append(b, p.Message...)
	return b
}

func decodeSigningPackage(b []byte) (*SigningPackage, []byte, error) {
	if len(b) < 2 {
		return nil, nil, rjerr.New(rjerr.CommitmentCountOutOfRange)
	}
	count := binary.BigEndian.Uint16(b[:2])
	rest := b[2:]
	p := &SigningPackage{SigningCommitments: make([]IndexedCommitments, count)}
	for i := range p.SigningCommitments {
		if len(rest) < 1 {
			return nil, nil, rjerr.New(rjerr.CommitmentCountOutOfRange)
		}
		signer := decodeParticipantID(rest[0])
		rest = rest[1:]
		c, next, err := decodeSigningCommitments(rest)
		if err != nil {
			return nil, nil, err
		}
		rest = next
		p.SigningCommitments[i] = IndexedCommitments{Signer: signer, Commitments: *c}
	}
	if len(rest) < 4 {
		return nil, nil, rjerr.New(rjerr.MessageTooLarge)
	}
	msgLen := binary.BigEndian.Uint32(rest[:4])
	rest = rest[4:]
	if uint64(msgLen) > MaxProtocolMessageLen || uint64(len(rest)) < uint64(msgLen) {
		return nil, nil, rjerr.New(rjerr.MessageTooLarge)
	}
	p.Message = append([]byte(nil), rest[:msgLen]...)
	return p, rest[msgLen:], nil
}

// SignatureShare carries one signer's round-2 response back to the
// aggregator.
type SignatureShare struct {
	Signature [32]byte
}

func (s *SignatureShare) payloadType() payloadType { return payloadSignatureShare }
func (s *SignatureShare) validate() error          { return nil }

func (s *SignatureShare) encode() []byte {
	return append([]byte(nil), s.Signature[:]...)
}

func decodeSignatureShare(b []byte) (*SignatureShare, []byte, error) {
	if len(b) < 32 {
		return nil, nil, rjerr.New(rjerr.InvalidSignatureShare)
	}
	s := &SignatureShare{}
	copy(s.Signature[:], b[:32])
	return s, b[32:], nil
}

// AggregateSignature is the aggregator's final broadcast of the combined
// signature.
type AggregateSignature struct {
	GroupCommitment  [32]byte
	SchnorrSignature [32]byte
}

func (a *AggregateSignature) payloadType() payloadType { return payloadAggregateSignature }
func (a *AggregateSignature) validate() error          { return nil }

func (a *AggregateSignature) encode() []byte {
	b := make([]byte, 0, 64)
	b = append(b, a.GroupCommitment[:]...)
	b = append(b, a.SchnorrSignature[:]...)
	return b
}

func decodeAggregateSignature(b []byte) (*AggregateSignature, []byte, error) {
	if len(b) < 64 {
		return nil, nil, rjerr.New(rjerr.InvalidSignature)
	}
	a := &AggregateSignature{}
	copy(a.GroupCommitment[:], b[:32])
	copy(a.SchnorrSignature[:], b[32:64])
	return a, b[64:], nil
}
