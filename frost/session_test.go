package frost

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/orchard-labs/redjubjub/rjerr"
)

func TestSecretShareHandleRejectsConcurrentSession(t *testing.T) {
	result, err := DealerKeygenRand(5, 3)
	if err != nil {
		t.Fatalf("DealerKeygenRand: %v", err)
	}
	handle := NewSecretShareHandle(result.Shares[0], result.GroupPublicKey)

	session, _, err := BeginSign(handle, rand.Reader)
	if err != nil {
		t.Fatalf("first BeginSign: %v", err)
	}

	_, _, err = BeginSign(handle, rand.Reader)
	if !errors.Is(err, rjerr.New(rjerr.ShareInUse)) {
		t.Fatalf("expected ShareInUse for concurrent session, got %v", err)
	}

	session.Abort()

	if _, _, err := BeginSign(handle, rand.Reader); err != nil {
		t.Fatalf("expected BeginSign to succeed after Abort, got %v", err)
	}
}

func TestSecretShareHandleReleasesAfterRespond(t *testing.T) {
	result, err := DealerKeygenRand(5, 3)
	if err != nil {
		t.Fatalf("DealerKeygenRand: %v", err)
	}
	byIndex := make(map[uint64]*Share, len(result.Shares))
	for _, s := range result.Shares {
		byIndex[s.ReceiverIndex] = s
	}
	participants := []uint64{1, 2, 3}

	agg := NewAggregator(result.GroupPublicKey)
	if err := agg.BeginSign([]byte("msg"), participants, 3); err != nil {
		t.Fatalf("BeginSign: %v", err)
	}

	handle := NewSecretShareHandle(byIndex[1], result.GroupPublicKey)
	session, commitments, err := BeginSign(handle, rand.Reader)
	if err != nil {
		t.Fatalf("BeginSign: %v", err)
	}

	var pkg *SigningPackage
	for _, idx := range participants {
		var c *Commitments
		if idx == 1 {
			c = commitments
		} else {
			h := NewSecretShareHandle(byIndex[idx], result.GroupPublicKey)
			s, sc, err := BeginSign(h, rand.Reader)
			if err != nil {
				t.Fatalf("BeginSign(%d): %v", idx, err)
			}
			defer s.Abort()
			c = sc
		}
		p, err := agg.ReceiveCommitment(c)
		if err != nil {
			t.Fatalf("ReceiveCommitment(%d): %v", idx, err)
		}
		if p != nil {
			pkg = p
		}
	}
	if pkg == nil {
		t.Fatalf("expected a complete SigningPackage")
	}

	if _, _, err := BeginSign(handle, rand.Reader); err == nil {
		t.Fatalf("expected handle still in use before Respond")
	}

	if _, err := session.Respond(pkg); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	if _, _, err := BeginSign(handle, rand.Reader); err != nil {
		t.Fatalf("expected handle to be released after Respond, got %v", err)
	}
}
