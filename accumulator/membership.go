package accumulator

import (
	"github.com/chain-labs/expraccum/curve"
	"github.com/chain-labs/expraccum/setup"
)

// MembershipProof attests whether a particular element is a member of the
// set behind a Digest. IsMember false means the prover is claiming
// non-membership; this implementation does not produce a non-membership
// witness (see the design notes' open question on that), so a false proof
// carries no witness and VerifyMembership rejects it outright — a caller
// wanting a trustworthy non-membership result must re-derive it from a
// witness the prover is honest about providing.
type MembershipProof struct {
	IsMember bool

	// WitnessG2 is populated when the accumulator's digest is in G1.
	WitnessG2 curve.G2
	// WitnessG1 is populated when the accumulator's digest is in G2.
	WitnessG1 curve.G1
}

// VerifyMembership checks proof against digest for element x, using only
// ts's public power vectors — it never needs the trusted setup's secret
// scalar.
func VerifyMembership(digest Digest, x int32, proof MembershipProof, ts *setup.TrustedSetup) bool {
	if !proof.IsMember {
		return false
	}

	var xFr curve.Fr
	xFr.SetInt64(int64(x))

	switch digest.Group {
	case GroupG1:
		g1SMinusX := curve.AddG1(ts.G1Pow(1), curve.NegG1(curve.ScalarMulG1(ts.G1Generator(), xFr)))
		return curve.PairingCheck(
			[]curve.G1{digest.G1, curve.NegG1(g1SMinusX)},
			[]curve.G2{ts.G2Generator(), proof.WitnessG2},
		)
	case GroupG2:
		g2SMinusX := curve.AddG2(ts.G2Pow(1), curve.NegG2(curve.ScalarMulG2(ts.G2Generator(), xFr)))
		return curve.PairingCheck(
			[]curve.G1{ts.G1Generator(), curve.NegG1(proof.WitnessG1)},
			[]curve.G2{digest.G2, g2SMinusX},
		)
	default:
		return false
	}
}
