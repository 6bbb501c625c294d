package frost

import (
	"golang.org/x/crypto/blake2b"

	"github.com/orchard-labs/redjubjub"
	"github.com/orchard-labs/redjubjub/group"
)

// This package keeps its own hash-to-scalar helper for the FROST-only hash
// points: binding factors, nonce seeds, and the message/commitment-list
// digests are domain-separated from RedDSA's own H* by distinct labels. The
// Schnorr challenge (h2) is the exception: it is the root package's H*, so
// that an aggregate signature verifies with an ordinary redjubjub.Verify.
var (
	labelRho     = []byte("FROST_rho")
	labelNonce   = []byte("FROST_nonce")
	labelMsg     = []byte("FROST_msg")
	labelCommits = []byte("FROST_commits")
)

func hashToScalar(label []byte, parts ...[]byte) *group.Scalar {
	h, err := blake2b.New(64, nil)
	if err != nil {
		panic(err)
	}
	h.Write(label)
	for _, p := range parts {
		h.Write(p)
	}
	digest := h.Sum(nil)
	s, err := group.ScalarFromWideBytes(digest)
	if err != nil {
		panic(err)
	}
	return s
}

// hashDigest produces a 64-byte domain-separated digest for inputs that feed
// further hashing rather than being used directly as a scalar (H4, H5 in the
// FROST draft's terms).
func hashDigest(label []byte, parts ...[]byte) []byte {
	h, err := blake2b.New(64, nil)
	if err != nil {
		panic(err)
	}
	h.Write(label)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// h1 computes a binding factor ρ_i (FROST draft §4.4, "H1").
func h1(rhoInput []byte) *group.Scalar {
	return hashToScalar(labelRho, rhoInput)
}

// h2 computes the Schnorr challenge c (FROST draft §4.6, "H2") as RedDSA's
// H*(R ‖ vk ‖ msg), the same challenge redjubjub.Verify recomputes.
func h2(groupCommitmentEnc, groupPublicKeyEnc, message []byte) *group.Scalar {
	return redjubjub.NewHStar().
		Update(groupCommitmentEnc).
		Update(groupPublicKeyEnc).
		Update(message).
		Finalize()
}

// h3 derives a single-use nonce scalar from fresh randomness and the signer's
// secret share (FROST draft §5.1, "H3").
func h3(randomBytes, secretBytes []byte) *group.Scalar {
	return hashToScalar(labelNonce, randomBytes, secretBytes)
}

// h4 hashes the message (FROST draft §4.4, "H4").
func h4(message []byte) []byte {
	return hashDigest(labelMsg, message)
}

// h5 hashes the encoded commitment list (FROST draft §4.4, "H5").
func h5(encodedCommitments []byte) []byte {
	return hashDigest(labelCommits, encodedCommitments)
}
