// Package setup implements the trusted setup (component C4): it holds
// the secret scalars s (and the unused r, kept only because the external
// interface contract names it — see the design notes on its absence from
// every proof equation) and publishes the power vectors {g1^{s^i}},
// {g2^{s^i}} for i=0..Q+1 that every digest, witness and verification
// equation in this module is built from.
package setup

import (
	"errors"
	"math/big"

	"github.com/chain-labs/expraccum/common"
	"github.com/chain-labs/expraccum/curve"
)

// ErrCapacityTooSmall is returned by New when Q is negative.
var ErrCapacityTooSmall = errors.New("setup: capacity Q must be non-negative")

// TrustedSetup holds the secret parameters and, once GeneratePowers has
// run, the public power vectors derived from them. It is constructed once,
// is immutable thereafter, and is meant to be passed by reference to every
// accumulator and verifier that needs it.
type TrustedSetup struct {
	secretS curve.Fr
	secretR curve.Fr
	q       int

	g1Powers []curve.G1
	g2Powers []curve.G2
}

// New constructs a trusted setup for secret scalars s, r and maximum
// polynomial degree (and so maximum accumulator capacity) q. It does not
// yet compute the public powers — call GeneratePowers for that, matching
// the external interface's two-step TrustedSetup(...) / generate_powers().
func New(s, r curve.Fr, q int) (*TrustedSetup, error) {
	if q < 0 {
		return nil, ErrCapacityTooSmall
	}
	return &TrustedSetup{secretS: s, secretR: r, q: q}, nil
}

// GeneratePowers precomputes g1^{s^i} and g2^{s^i} for i=0..Q+1 by
// iterated scalar multiplication, batched across CPUs the way the
// teacher's phase1.scaleG1/scaleG2 batch a contribution's scalar
// multiplications: first materialize the scalar powers s^0..s^{Q+1} with
// one sequential multiply chain (cheap, field-only), then fan the
// expensive group scalar multiplications out over common.Parallelize.
func (ts *TrustedSetup) GeneratePowers() error {
	if err := curve.Init(); err != nil {
		return err
	}

	n := ts.q + 2
	sPowers := make([]curve.Fr, n)
	sPowers[0].SetOne()
	for i := 1; i < n; i++ {
		sPowers[i].Mul(&sPowers[i-1], &ts.secretS)
	}

	g1 := curve.G1Generator()
	g2 := curve.G2Generator()

	ts.g1Powers = make([]curve.G1, n)
	ts.g2Powers = make([]curve.G2, n)

	common.Parallelize(n, func(start, end int) {
		var kBig big.Int
		for i := start; i < end; i++ {
			sPowers[i].BigInt(&kBig)
			ts.g1Powers[i].ScalarMultiplication(&g1, &kBig)
			ts.g2Powers[i].ScalarMultiplication(&g2, &kBig)
		}
	})
	return nil
}

// Q returns the maximum supported polynomial degree / set size.
func (ts *TrustedSetup) Q() int {
	return ts.q
}

// G1Generator returns the fixed G1 generator (g1_pow[0]).
func (ts *TrustedSetup) G1Generator() curve.G1 {
	return curve.G1Generator()
}

// G2Generator returns the fixed G2 generator (g2_pow[0]).
func (ts *TrustedSetup) G2Generator() curve.G2 {
	return curve.G2Generator()
}

// G1Pow returns g1^{s^i}. GeneratePowers must have run and 0<=i<=Q+1.
func (ts *TrustedSetup) G1Pow(i int) curve.G1 {
	return ts.g1Powers[i]
}

// G2Pow returns g2^{s^i}. GeneratePowers must have run and 0<=i<=Q+1.
func (ts *TrustedSetup) G2Pow(i int) curve.G2 {
	return ts.g2Powers[i]
}

// SecretS returns the trapdoor scalar s.
//
// This is exposed — rather than kept fully private to package setup —
// because this implementation's prover (package accumulator) shares trust
// with the setup and needs s to evaluate characteristic polynomials at
// the secret point, exactly as the design notes describe ("retains s in
// memory because it is used by the prover, which is acceptable when
// prover and setup share trust"). Every verifier in package accumulator
// is built only from G1Pow/G2Pow/G1Generator/G2Generator; none of them
// call SecretS, and callers outside the prover must not either.
func (ts *TrustedSetup) SecretS() curve.Fr {
	return ts.secretS
}

// SecretR returns the trapdoor scalar r.
//
// r is accepted and stored, exactly as the external interface contract
// requires, but — per the design notes' open question — it is not used
// by any proof construction or verification equation in this module. It
// is reserved for a second hiding blinder a future extension (hiding
// commitments, batched openings) might add; this implementation does not
// invent a use for it rather than propagate an undocumented one.
func (ts *TrustedSetup) SecretR() curve.Fr {
	return ts.secretR
}
