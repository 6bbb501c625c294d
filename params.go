package redjubjub

import "github.com/orchard-labs/redjubjub/group"

// SigType identifies one of the two signature parameter families. It mirrors
// original_source/src/lib.rs's sealed SigType trait: a small closed set of
// zero-size marker types rather than an open interface, so signing/
// verification keys and signatures are parameterized at compile time and a
// SpendAuth signature can never be mistaken for a Binding one.
type SigType interface {
	sigType() sigParams
}

// SpendAuth is the signature type used to authorize spending a note.
type SpendAuth struct{}

// Binding is the signature type used to bind together the value commitments
// of a Sapling transaction.
type Binding struct{}

func (SpendAuth) sigType() sigParams { return spendAuthParams }
func (Binding) sigType() sigParams   { return bindingParams }

// sigParams carries the one thing that differs between the two families: the
// basepoint of the prime-order subgroup signatures of that type are computed
// over. Everything else (HStar, encoding, the signing/verification equations)
// is shared.
type sigParams struct {
	basepoint *group.Point
	label     string
}

var (
	spendAuthParams = sigParams{
		basepoint: group.HashToBasepoint([]byte("Zcash_RedJubjubSpendAuth")),
		label:     "SpendAuth",
	}
	bindingParams = sigParams{
		basepoint: group.HashToBasepoint([]byte("Zcash_RedJubjubBinding")),
		label:     "Binding",
	}
)

func sigTypeParams[T SigType]() sigParams {
	var zero T
	return zero.sigType()
}
