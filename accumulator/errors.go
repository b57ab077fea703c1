package accumulator

import "errors"

// Sentinel errors returned by this package's operations, following the
// teacher's plain errors.New style rather than a wrapped-error hierarchy —
// every failure mode here is a fixed, named condition the caller is
// expected to check with errors.Is.
var (
	// ErrNotMember is returned by Delete when the requested element is not
	// currently in the accumulated set. GenerateMembershipProof does not
	// return it; it reports a non-member through MembershipProof.IsMember.
	ErrNotMember = errors.New("accumulator: element is not a member of the set")

	// ErrCapacityExceeded is returned by Add when the set already holds Q
	// elements, the maximum degree the trusted setup's power vectors support.
	ErrCapacityExceeded = errors.New("accumulator: set is at capacity")

	// ErrGroupMismatch is returned by GenerateIntersectionProof when either
	// accumulator does not hold G1 digests, as the intersection proof's
	// pairing equations require; two G2 accumulators are rejected as well.
	ErrGroupMismatch = errors.New("accumulator: both accumulators must use G1 digests for an intersection proof")

	// ErrSetupMismatch is returned by GenerateIntersectionProof when the two
	// accumulators are backed by different trusted setups. Verifiers do not
	// return it; they report any failure as false.
	ErrSetupMismatch = errors.New("accumulator: accumulators do not share a trusted setup")

	// ErrNotCoprime is returned by GenerateIntersectionProof if the two
	// difference sets turn out not to be coprime as polynomials — which
	// should be unreachable given Partition's own split, but is checked
	// rather than assumed.
	ErrNotCoprime = errors.New("accumulator: difference sets are not disjoint")
)
