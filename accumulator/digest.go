package accumulator

import (
	"fmt"

	"github.com/chain-labs/expraccum/curve"
)

// GroupType selects which pairing source group an accumulator's digest
// lives in. Membership and update proofs work the same way in either
// group; the intersection proof additionally needs both witnesses in the
// opposite group from the digest, so it only supports G1 digests — see
// IntersectionProof.
type GroupType int

const (
	// GroupG1 digests live in G1, with G2 membership witnesses.
	GroupG1 GroupType = iota
	// GroupG2 digests live in G2, with G1 membership witnesses.
	GroupG2
)

func (g GroupType) String() string {
	switch g {
	case GroupG1:
		return "G1"
	case GroupG2:
		return "G2"
	default:
		return "unknown"
	}
}

// Digest is the public commitment to a set: g^{P_S(s)} in whichever group
// the accumulator was configured for. Only one of G1/G2 is meaningful,
// selected by Group.
type Digest struct {
	Group GroupType
	G1    curve.G1
	G2    curve.G2
}

// Bytes returns the canonical compressed encoding of the digest, for
// hashing, transmission or equality comparison.
func (d Digest) Bytes() []byte {
	switch d.Group {
	case GroupG1:
		b := d.G1.Bytes()
		return b[:]
	case GroupG2:
		b := d.G2.Bytes()
		return b[:]
	default:
		return nil
	}
}

// String renders the digest's compressed encoding as hex, for logs and
// debug output — this accumulator's equivalent of the teacher's
// printDigest helper, expressed as a Stringer instead of a print function.
func (d Digest) String() string {
	return fmt.Sprintf("%s:%x", d.Group, d.Bytes())
}

// Equal reports whether two digests are the same group and value.
func (d Digest) Equal(other Digest) bool {
	if d.Group != other.Group {
		return false
	}
	switch d.Group {
	case GroupG1:
		return d.G1.Equal(&other.G1)
	case GroupG2:
		return d.G2.Equal(&other.G2)
	default:
		return false
	}
}
