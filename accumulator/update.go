package accumulator

import (
	"github.com/chain-labs/expraccum/curve"
	"github.com/chain-labs/expraccum/setup"
)

// UpdateOp names the kind of transition an UpdateProof attests to.
type UpdateOp int

const (
	// OpAdd attests that NewDigest is OldDigest with Element inserted.
	OpAdd UpdateOp = iota
	// OpDelete attests that NewDigest is OldDigest with Element removed.
	OpDelete
)

func (op UpdateOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// UpdateProof attests to a single add or delete transition between two
// digests. For OpDelete, Membership additionally proves the element was a
// member of the pre-deletion set — the "right to delete" the scheme
// requires — since deleting a non-member and merely shrinking by the same
// quotient would otherwise be indistinguishable from a valid delete.
type UpdateProof struct {
	Op         UpdateOp
	OldDigest  Digest
	NewDigest  Digest
	Element    int32
	Membership *MembershipProof
}

// VerifyUpdate checks that proof correctly attests to its claimed
// transition, using only ts's public power vectors.
func VerifyUpdate(proof UpdateProof, ts *setup.TrustedSetup) bool {
	if proof.OldDigest.Group != proof.NewDigest.Group {
		return false
	}

	switch proof.Op {
	case OpAdd:
		if proof.OldDigest.Equal(proof.NewDigest) {
			// Re-adding an existing member is a no-op transition; the
			// digests being identical is itself the whole proof.
			return true
		}
		return verifyGrowth(proof.NewDigest, proof.OldDigest, proof.Element, ts)
	case OpDelete:
		if proof.Membership == nil || !proof.Membership.IsMember {
			return false
		}
		if !VerifyMembership(proof.OldDigest, proof.Element, *proof.Membership, ts) {
			return false
		}
		return verifyGrowth(proof.OldDigest, proof.NewDigest, proof.Element, ts)
	default:
		return false
	}
}

// verifyGrowth checks bigger == smaller grown by one element x, i.e. that
// bigger's characteristic polynomial is smaller's times (s-x). ADD calls
// this with (new, old); DELETE calls it with (old, new) since old is the
// larger set in that direction.
func verifyGrowth(bigger, smaller Digest, x int32, ts *setup.TrustedSetup) bool {
	if bigger.Group != smaller.Group {
		return false
	}

	var xFr curve.Fr
	xFr.SetInt64(int64(x))

	switch bigger.Group {
	case GroupG1:
		g2S := ts.G2Pow(1)
		xSmaller := curve.ScalarMulG1(smaller.G1, xFr)
		return curve.PairingCheck(
			[]curve.G1{bigger.G1, curve.NegG1(smaller.G1), xSmaller},
			[]curve.G2{ts.G2Generator(), g2S, ts.G2Generator()},
		)
	case GroupG2:
		g1S := ts.G1Pow(1)
		xGen := curve.ScalarMulG1(ts.G1Generator(), xFr)
		return curve.PairingCheck(
			[]curve.G1{ts.G1Generator(), curve.NegG1(g1S), xGen},
			[]curve.G2{bigger.G2, smaller.G2, smaller.G2},
		)
	default:
		return false
	}
}
