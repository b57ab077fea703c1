// Package accumulator implements the bilinear-pairing set accumulator
// (component C5 onward): a succinct digest of a set of integers that
// supports membership proofs, update proofs for add/delete, and
// intersection proofs between two accumulators — all verifiable without
// reconstructing the set, following the scheme in
// original_source/src/expressive_accumulator.cpp.
package accumulator

import (
	"github.com/chain-labs/expraccum/charpoly"
	"github.com/chain-labs/expraccum/curve"
	"github.com/chain-labs/expraccum/setup"
)

// Accumulator is the prover side of the scheme: it holds the set in the
// clear (as a characteristic polynomial) and the trusted setup's secret
// scalar, and can recompute its digest and produce proofs against it.
// Verifiers never construct one of these — they work only from a Digest
// and the setup's public power vectors.
type Accumulator struct {
	ts        *setup.TrustedSetup
	set       *charpoly.CharacteristicPolynomial
	groupType GroupType
	digest    Digest
}

// New returns an empty accumulator backed by ts, with digests in the
// requested group.
func New(ts *setup.TrustedSetup, groupType GroupType) *Accumulator {
	a := &Accumulator{
		ts:        ts,
		set:       charpoly.New(),
		groupType: groupType,
	}
	a.refreshDigest()
	return a
}

// Digest returns the accumulator's current public digest.
func (a *Accumulator) Digest() Digest {
	return a.digest
}

// Len returns the number of elements currently accumulated.
func (a *Accumulator) Len() int {
	return a.set.Len()
}

// Contains reports whether x is currently a member.
func (a *Accumulator) Contains(x int32) bool {
	return a.set.Contains(x)
}

func (a *Accumulator) refreshDigest() {
	s := a.ts.SecretS()
	exponent := a.set.Evaluate(s)
	a.digest = a.digestFromExponent(exponent)
}

func (a *Accumulator) digestFromExponent(exponent curve.Fr) Digest {
	d := Digest{Group: a.groupType}
	switch a.groupType {
	case GroupG1:
		d.G1 = curve.ScalarMulG1(a.ts.G1Generator(), exponent)
	case GroupG2:
		d.G2 = curve.ScalarMulG2(a.ts.G2Generator(), exponent)
	}
	return d
}

// Add inserts x into the accumulated set and returns an UpdateProof
// attesting to the transition. Adding an element already present is a
// no-op success, matching the scheme's idempotent-membership contract: no
// error, and the returned proof's OldDigest and NewDigest are equal.
func (a *Accumulator) Add(x int32) (UpdateProof, error) {
	if a.set.Contains(x) {
		d := a.digest
		return UpdateProof{Op: OpAdd, OldDigest: d, NewDigest: d, Element: x}, nil
	}
	if a.set.Len() >= a.ts.Q() {
		return UpdateProof{}, ErrCapacityExceeded
	}

	oldDigest := a.digest
	a.set.Add(x)
	a.refreshDigest()

	return UpdateProof{
		Op:        OpAdd,
		OldDigest: oldDigest,
		NewDigest: a.digest,
		Element:   x,
	}, nil
}

// Delete removes x from the accumulated set and returns an UpdateProof
// attesting to the transition, embedding a membership proof of x against
// the pre-deletion digest — the "right to delete" the scheme requires a
// deleter demonstrate. Deleting an absent element returns ErrNotMember.
func (a *Accumulator) Delete(x int32) (UpdateProof, error) {
	if !a.set.Contains(x) {
		return UpdateProof{}, ErrNotMember
	}

	oldDigest := a.digest
	membership := a.generateMembershipProofAgainst(a.set, x)

	a.set.Remove(x)
	a.refreshDigest()

	return UpdateProof{
		Op:         OpDelete,
		OldDigest:  oldDigest,
		NewDigest:  a.digest,
		Element:    x,
		Membership: &membership,
	}, nil
}

// GenerateMembershipProof produces a proof that x is (or is not) a member
// of the current set.
func (a *Accumulator) GenerateMembershipProof(x int32) MembershipProof {
	return a.generateMembershipProofAgainst(a.set, x)
}

func (a *Accumulator) generateMembershipProofAgainst(set *charpoly.CharacteristicPolynomial, x int32) MembershipProof {
	if !set.Contains(x) {
		return MembershipProof{IsMember: false}
	}

	witnessPoly := set.WithoutElement(x)
	exponent := witnessPoly.Evaluate(a.ts.SecretS())

	proof := MembershipProof{IsMember: true}
	switch a.groupType {
	case GroupG1:
		// Digest is in G1, so the witness lives in G2 to keep the pairing
		// equation e(digest, g2) == e(g1^(s-x), witness) well-typed.
		proof.WitnessG2 = curve.ScalarMulG2(a.ts.G2Generator(), exponent)
	case GroupG2:
		proof.WitnessG1 = curve.ScalarMulG1(a.ts.G1Generator(), exponent)
	}
	return proof
}
