package messages

import "github.com/orchard-labs/redjubjub/rjerr"

// Validate runs every rule from messages/validate.rs in the order that file
// implies: header rules, then per-payload-type role matching, then the
// payload's own content rules (e.g. SigningPackage's message-size bound).
// Cheap structural checks run before any of this package's callers would
// attempt scalar/point decoding, matching spec.md §7's DoS guidance.
func (m *Message) Validate() error {
	if err := m.Header.validate(); err != nil {
		return err
	}
	if err := m.validateRoles(); err != nil {
		return err
	}
	return m.Payload.validate()
}

func (m *Message) validateRoles() error {
	sender, receiver := m.Header.Sender, m.Header.Receiver
	switch m.Payload.payloadType() {
	case payloadSharePackage:
		if sender.Role != RoleDealer {
			return rjerr.New(rjerr.RoleMismatch)
		}
		if !receiver.IsSigner() {
			return rjerr.New(rjerr.RoleMismatch)
		}
	case payloadSigningCommitments:
		if !sender.IsSigner() {
			return rjerr.New(rjerr.RoleMismatch)
		}
		if receiver.Role != RoleAggregator {
			return rjerr.New(rjerr.RoleMismatch)
		}
	case payloadSigningPackage:
		if sender.Role != RoleAggregator {
			return rjerr.New(rjerr.RoleMismatch)
		}
		if !receiver.IsSigner() {
			return rjerr.New(rjerr.RoleMismatch)
		}
	case payloadSignatureShare:
		if !sender.IsSigner() {
			return rjerr.New(rjerr.RoleMismatch)
		}
		if receiver.Role != RoleAggregator {
			return rjerr.New(rjerr.RoleMismatch)
		}
	case payloadAggregateSignature:
		if sender.Role != RoleAggregator {
			return rjerr.New(rjerr.RoleMismatch)
		}
		if !receiver.IsSigner() {
			return rjerr.New(rjerr.RoleMismatch)
		}
	}
	return nil
}
