package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chain-labs/expraccum/curve"
)

func frOf(v int64) curve.Fr {
	var f curve.Fr
	f.SetInt64(v)
	return f
}

func TestFromRootsEmptyIsOne(t *testing.T) {
	p := FromRoots(nil)
	require.True(t, p.IsConstant())
	require.Equal(t, frOf(1), p.Coeffs()[0])
}

func TestFromRootsEvaluatesToZeroAtRoots(t *testing.T) {
	roots := []curve.Fr{frOf(2), frOf(5), frOf(-3)}
	p := FromRoots(roots)
	for _, r := range roots {
		v := p.Evaluate(r)
		require.True(t, v.IsZero())
	}
	v7 := p.Evaluate(frOf(7))
	require.False(t, v7.IsZero())
}

func TestMulDegreeAdds(t *testing.T) {
	p := FromRoots([]curve.Fr{frOf(1), frOf(2)})
	q := FromRoots([]curve.Fr{frOf(3)})
	product := p.Mul(q)
	require.Equal(t, 3, product.Degree())
	for _, r := range []curve.Fr{frOf(1), frOf(2), frOf(3)} {
		v := product.Evaluate(r)
		require.True(t, v.IsZero())
	}
}

func TestDivModExact(t *testing.T) {
	p := FromRoots([]curve.Fr{frOf(1), frOf(2), frOf(3)})
	d := FromRoots([]curve.Fr{frOf(2)})

	quotient, remainder, err := p.DivMod(d)
	require.NoError(t, err)
	require.True(t, remainder.IsZero())
	v1 := quotient.Evaluate(frOf(1))
	require.True(t, v1.IsZero())
	v3 := quotient.Evaluate(frOf(3))
	require.True(t, v3.IsZero())
	v2 := quotient.Evaluate(frOf(2))
	require.False(t, v2.IsZero())
}

func TestDivModDegreeLessThanDivisor(t *testing.T) {
	p := FromCoeffs([]curve.Fr{frOf(5)})
	d := FromRoots([]curve.Fr{frOf(1), frOf(2)})

	quotient, remainder, err := p.DivMod(d)
	require.NoError(t, err)
	require.True(t, quotient.IsZero())
	require.Equal(t, frOf(5), remainder.Coeffs()[0])
}

func TestDivModByZeroErrors(t *testing.T) {
	p := FromRoots([]curve.Fr{frOf(1)})
	_, _, err := p.DivMod(Zero())
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestXGCDCoprimePolynomials(t *testing.T) {
	p := FromRoots([]curve.Fr{frOf(1), frOf(2)})
	q := FromRoots([]curve.Fr{frOf(3), frOf(4)})

	gcd, a, b := p.XGCD(q)
	require.True(t, gcd.IsConstant())

	lhs := a.Mul(p).Add(b.Mul(q))
	require.Equal(t, gcd.Coeffs()[0], lhs.Coeffs()[0])
	require.Equal(t, gcd.Degree(), lhs.Degree())
}

func TestXGCDBothEmptyDifferenceSetsDegenerateCase(t *testing.T) {
	// This is the degenerate case two identical accumulated sets hit in an
	// intersection proof: both difference sets are empty, so both
	// characteristic polynomials are the constant 1. The general
	// algorithm, with no special-casing, must still resolve this to
	// gcd=1, a=0, b=1.
	one := One()

	gcd, a, b := one.XGCD(one.Clone())
	require.True(t, gcd.IsConstant())
	require.Equal(t, frOf(1), gcd.Coeffs()[0])
	require.True(t, a.IsZero())
	require.Equal(t, frOf(1), b.Coeffs()[0])
}

func TestXGCDIdenticalNonConstantPolynomialsShareTheirRoots(t *testing.T) {
	// Two identical non-trivial polynomials are NOT coprime: their gcd is
	// the polynomial itself, which is the correct and expected result of
	// the general algorithm here, not a special case to guard against.
	p := FromRoots([]curve.Fr{frOf(1), frOf(2), frOf(3)})

	gcd, a, b := p.XGCD(p.Clone())
	require.False(t, gcd.IsConstant())
	require.Equal(t, p.Degree(), gcd.Degree())

	lhs := a.Mul(p).Add(b.Mul(p))
	require.Equal(t, gcd.Coeffs(), lhs.Coeffs())
}

func TestXGCDSharedRootIsNotCoprime(t *testing.T) {
	p := FromRoots([]curve.Fr{frOf(1), frOf(2)})
	q := FromRoots([]curve.Fr{frOf(2), frOf(3)})

	gcd, _, _ := p.XGCD(q)
	require.False(t, gcd.IsConstant())
	v := gcd.Evaluate(frOf(2))
	require.True(t, v.IsZero())
}
