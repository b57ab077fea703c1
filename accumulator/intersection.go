package accumulator

import (
	"github.com/chain-labs/expraccum/charpoly"
	"github.com/chain-labs/expraccum/curve"
	"github.com/chain-labs/expraccum/poly"
	"github.com/chain-labs/expraccum/setup"
)

// IntersectionProof attests that IntersectionDigest commits to exactly
// A∩B for two accumulators A, B — not merely a subset of both, which is
// why it carries a disjointness witness as well as the two subset
// witnesses. Both source accumulators must use G1 digests: the
// disjointness pairing equation needs the Bézout coefficients and the
// difference-set witnesses on opposite sides of the pairing, and G1
// digests keep that consistent with the membership/update equations'
// convention of G1 digests, G2 witnesses.
type IntersectionProof struct {
	// IntersectionDigest commits to A∩B: g1^{P_{A∩B}(s)}.
	IntersectionDigest curve.G1

	// WitnessQA, WitnessQB commit to the difference sets A\(A∩B) and
	// B\(A∩B), proving IntersectionDigest is a genuine factor of both
	// DigestA and DigestB.
	WitnessQA curve.G2
	WitnessQB curve.G2

	// WitnessA, WitnessB are the normalized Bézout coefficients' commitments
	// proving the two difference sets share no root, i.e. A∩B omits
	// nothing that is actually common to both sets. They satisfy
	// a·P_DA + b·P_DB = 1 exactly — not merely some constant, which is
	// what makes the disjointness check below bind to the fixed generators
	// instead of a prover-suppliable value.
	WitnessA curve.G1
	WitnessB curve.G1
}

// GenerateIntersectionProof builds an IntersectionProof for accumulators a
// and b, which must share a trusted setup and both use G1 digests.
func GenerateIntersectionProof(a, b *Accumulator) (IntersectionProof, error) {
	if a.groupType != GroupG1 || b.groupType != GroupG1 {
		return IntersectionProof{}, ErrGroupMismatch
	}
	if a.ts != b.ts {
		return IntersectionProof{}, ErrSetupMismatch
	}

	intersection, onlyA, onlyB := charpoly.Partition(a.set, b.set)

	polyDA := poly.FromRoots(charpoly.ToFr(onlyA))
	polyDB := poly.FromRoots(charpoly.ToFr(onlyB))
	gcd, bezoutA, bezoutB := polyDA.XGCD(polyDB)
	if !gcd.IsConstant() {
		// The difference sets share a root — which can only happen if a
		// and b were not actually disjoint on that element, contradicting
		// Partition's own split. Surfaced rather than silently producing
		// an unverifiable proof.
		return IntersectionProof{}, ErrNotCoprime
	}

	// Normalize so a·P_DA + b·P_DB = 1 exactly, rather than carrying the
	// gcd's arbitrary constant as part of the proof: the verifier must
	// check against the fixed generators, not a value the prover supplies.
	var gcdInv curve.Fr
	gcdConst := gcd.Coeffs()[0]
	gcdInv.Inverse(&gcdConst)
	bezoutA = bezoutA.ScalarMul(gcdInv)
	bezoutB = bezoutB.ScalarMul(gcdInv)

	s := a.ts.SecretS()
	intersectionPoly := poly.FromRoots(charpoly.ToFr(intersection))

	proof := IntersectionProof{
		IntersectionDigest: curve.ScalarMulG1(a.ts.G1Generator(), intersectionPoly.Evaluate(s)),
		WitnessQA:          curve.ScalarMulG2(a.ts.G2Generator(), polyDA.Evaluate(s)),
		WitnessQB:          curve.ScalarMulG2(a.ts.G2Generator(), polyDB.Evaluate(s)),
		WitnessA:           curve.ScalarMulG1(a.ts.G1Generator(), bezoutA.Evaluate(s)),
		WitnessB:           curve.ScalarMulG1(a.ts.G1Generator(), bezoutB.Evaluate(s)),
	}
	return proof, nil
}

// VerifyIntersection checks proof against the public digests of the two
// source accumulators, using only ts's public power vectors.
func VerifyIntersection(digestA, digestB Digest, proof IntersectionProof, ts *setup.TrustedSetup) bool {
	if digestA.Group != GroupG1 || digestB.Group != GroupG1 {
		return false
	}

	subsetOK := curve.PairingCheck(
		[]curve.G1{digestA.G1, curve.NegG1(proof.IntersectionDigest)},
		[]curve.G2{ts.G2Generator(), proof.WitnessQA},
	)
	if !subsetOK {
		return false
	}

	subsetOK = curve.PairingCheck(
		[]curve.G1{digestB.G1, curve.NegG1(proof.IntersectionDigest)},
		[]curve.G2{ts.G2Generator(), proof.WitnessQB},
	)
	if !subsetOK {
		return false
	}

	// Disjointness: a·P_DA + b·P_DB must equal exactly 1, checked against
	// the fixed generators — not a prover-suppliable constant — so a
	// forged proof cannot trivially satisfy this by picking witnesses
	// whose implied "gcd" is 0.
	return curve.PairingCheck(
		[]curve.G1{proof.WitnessA, proof.WitnessB, curve.NegG1(ts.G1Generator())},
		[]curve.G2{proof.WitnessQA, proof.WitnessQB, ts.G2Generator()},
	)
}
