package group

import (
	"crypto/rand"
	"testing"
)

func randomWide(t *testing.T) [64]byte {
	t.Helper()
	var b [64]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return b
}

func TestScalarEncodingRoundTrip(t *testing.T) {
	s := RandomScalar(randomWide(t))
	decoded, err := ScalarFromCanonicalBytes(func() []byte {
		b := s.Bytes()
		return b[:]
	}())
	if err != nil {
		t.Fatalf("ScalarFromCanonicalBytes: %v", err)
	}
	if !s.Equal(decoded) {
		t.Fatalf("round trip mismatch")
	}
}

func TestScalarAddSubtractInverse(t *testing.T) {
	a := RandomScalar(randomWide(t))
	b := RandomScalar(randomWide(t))

	sum := a.Add(b)
	back := sum.Subtract(b)
	if !back.Equal(a) {
		t.Fatalf("a + b - b != a")
	}
}

func TestScalarInvert(t *testing.T) {
	a := RandomScalar(randomWide(t))
	if a.IsZero() {
		t.Skip("unlucky zero scalar")
	}
	inv := a.Invert()
	one := a.Multiply(inv)
	expectedOne := ScalarFromUint64(1)
	if !one.Equal(expectedOne) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestPointEncodingRoundTrip(t *testing.T) {
	s := RandomScalar(randomWide(t))
	p := ScalarBaseMult(s)
	b := p.Bytes()
	decoded, err := PointFromCanonicalBytes(b[:])
	if err != nil {
		t.Fatalf("PointFromCanonicalBytes: %v", err)
	}
	if !p.Equal(decoded) {
		t.Fatalf("round trip mismatch")
	}
}

func TestIdentityIsSmallOrder(t *testing.T) {
	if !Identity().IsSmallOrder() {
		t.Fatalf("identity must be considered small order")
	}
}

func TestGeneratorIsNotSmallOrder(t *testing.T) {
	if Generator().IsSmallOrder() {
		t.Fatalf("subgroup generator must not be small order")
	}
}

func TestMultiScalarMultMatchesSequential(t *testing.T) {
	n := 5
	scalars := make([]*Scalar, n)
	points := make([]*Point, n)
	expected := Identity()
	for i := 0; i < n; i++ {
		scalars[i] = RandomScalar(randomWide(t))
		points[i] = ScalarBaseMult(RandomScalar(randomWide(t)))
		expected = expected.Add(points[i].ScalarMult(scalars[i]))
	}
	got := MultiScalarMult(scalars, points)
	if !got.Equal(expected) {
		t.Fatalf("multiscalar multiplication mismatch")
	}
}

func TestHashToBasepointDeterministic(t *testing.T) {
	a := HashToBasepoint([]byte("Zcash_RedJubjubSpendAuth"))
	b := HashToBasepoint([]byte("Zcash_RedJubjubSpendAuth"))
	if !a.Equal(b) {
		t.Fatalf("HashToBasepoint is not deterministic")
	}
	c := HashToBasepoint([]byte("Zcash_RedJubjubBinding"))
	if a.Equal(c) {
		t.Fatalf("distinct labels must not collide")
	}
	if a.IsSmallOrder() || c.IsSmallOrder() {
		t.Fatalf("derived basepoints must not be small order")
	}
}
