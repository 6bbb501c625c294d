package frost

import (
	"io"
	"sync/atomic"

	"github.com/orchard-labs/redjubjub/rjerr"
)

// SecretShareHandle owns one FROST Share and enforces the exclusive-use
// invariant spec.md §5 requires: starting a signing session must take
// exclusive access to the share, and a second concurrent session on the same
// share must fail deterministically rather than silently interleaving — the
// defense against the Drijvers attack.
//
// The original Rust crate encodes this with an exclusive &mut borrow on
// SecretShare, checked by the compiler. Go has no borrow checker, so the
// same guarantee is realized at runtime with an atomic flag: BeginSign sets
// it, and the session's terminal transition (or Abort) clears it. A second
// BeginSign call observes the flag already set and returns
// rjerr.ShareInUse immediately; it never blocks.
type SecretShareHandle struct {
	share          *Share
	groupPublicKey *GroupPublicKey

	inUse atomic.Bool
}

// NewSecretShareHandle wraps a verified Share for exclusive-use signing.
// Callers should call VerifyShare on share before constructing a handle.
func NewSecretShareHandle(share *Share, groupPublicKey *GroupPublicKey) *SecretShareHandle {
	return &SecretShareHandle{share: share, groupPublicKey: groupPublicKey}
}

// Session is a signing attempt holding exclusive access to a
// SecretShareHandle, progressing Idle → AwaitingCommitment → terminal
// (spec.md §4.G's Signer state machine).
type Session struct {
	handle *SecretShareHandle
	signer *Signer
	nonces *Nonces
	done   bool
}

// BeginSign takes exclusive access to h and starts a new Session,
// generating this signer's round-one nonces and commitments. It returns
// rjerr.ShareInUse if a prior session on the same handle has not yet
// terminated.
func BeginSign(h *SecretShareHandle, rng io.Reader) (*Session, *Commitments, error) {
	if !h.inUse.CompareAndSwap(false, true) {
		return nil, nil, rjerr.New(rjerr.ShareInUse)
	}

	signer := NewSigner(h.share, h.groupPublicKey)
	nonces, commitments, err := signer.Round1(rng)
	if err != nil {
		h.inUse.Store(false)
		return nil, nil, err
	}

	return &Session{handle: h, signer: signer, nonces: nonces}, commitments, nil
}

// Respond consumes the session's round-one nonces to produce a signature
// share, releasing the handle's exclusivity whether it succeeds or fails —
// matching spec.md §5's "dropping any in-progress FROST state handle aborts
// the session and releases its borrow".
func (s *Session) Respond(pkg *SigningPackage) (*SignatureShare, error) {
	if s.done {
		return nil, rjerr.New(rjerr.ShareInUse)
	}
	defer s.release()

	share, err := s.signer.Round2(pkg, s.nonces)
	s.nonces.Zeroize()
	return share, err
}

// Abort releases the handle's exclusivity without producing a response,
// matching spec.md §5's cancellation semantics.
func (s *Session) Abort() {
	if s.done {
		return
	}
	s.nonces.Zeroize()
	s.release()
}

func (s *Session) release() {
	s.done = true
	s.handle.inUse.Store(false)
}
