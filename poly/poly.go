// Package poly implements arbitrary-degree polynomial arithmetic over
// the BLS12-381 scalar field Fr (component C3 of the accumulator
// design). It is the coefficient-form counterpart to package charpoly's
// root-form evaluator: the intersection proof needs coefficient-level
// multiplication, division and the extended Euclidean algorithm, none of
// which have a root-form analogue.
//
// The reference implementation (original_source/src/expressive_accumulator.cpp)
// drives FLINT's fmpz_mod_poly_* family for this; there is no FLINT
// binding in the Go ecosystem the accumulator can reach for, so this
// package implements the same operations natively over []curve.Fr
// slices, the representation the teacher already threads through its own
// FFT and batch-scaling code.
package poly

import (
	"errors"

	"github.com/chain-labs/expraccum/curve"
)

// ErrDivideByZero is returned by DivMod when the divisor is the zero
// polynomial.
var ErrDivideByZero = errors.New("poly: division by the zero polynomial")

// Polynomial holds coefficients from the constant term upward:
// coeffs[i] is the coefficient of z^i. The zero polynomial is
// represented as a single zero coefficient; normalize maintains this.
type Polynomial struct {
	coeffs []curve.Fr
}

// One returns the constant polynomial P(z) = 1.
func One() *Polynomial {
	var one curve.Fr
	one.SetOne()
	return &Polynomial{coeffs: []curve.Fr{one}}
}

// Zero returns the zero polynomial.
func Zero() *Polynomial {
	return &Polynomial{coeffs: []curve.Fr{{}}}
}

// FromCoeffs builds a polynomial from coefficients given low-degree first.
// The slice is copied.
func FromCoeffs(coeffs []curve.Fr) *Polynomial {
	if len(coeffs) == 0 {
		return Zero()
	}
	c := make([]curve.Fr, len(coeffs))
	copy(c, coeffs)
	p := &Polynomial{coeffs: c}
	p.normalize()
	return p
}

// FromRoots builds the coefficient form of ∏(z - root) for each root in
// roots. An empty root set yields the constant polynomial 1, matching the
// characteristic-polynomial convention for the empty set.
func FromRoots(roots []curve.Fr) *Polynomial {
	result := One()
	for _, r := range roots {
		var negR curve.Fr
		negR.Neg(&r)
		term := &Polynomial{coeffs: []curve.Fr{negR, one()}}
		result = result.Mul(term)
	}
	return result
}

func one() curve.Fr {
	var f curve.Fr
	f.SetOne()
	return f
}

// Degree returns the polynomial's degree. The zero polynomial has degree 0
// by convention.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns the coefficients, low-degree first. Callers must not
// mutate the returned slice.
func (p *Polynomial) Coeffs() []curve.Fr {
	return p.coeffs
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	for _, c := range p.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// IsConstant reports whether p has degree 0 (after normalization) —
// i.e. whether it is a nonzero field element, a "unit" of Fr[z]. The zero
// polynomial is not considered a unit.
func (p *Polynomial) IsConstant() bool {
	return len(p.coeffs) == 1 && !p.coeffs[0].IsZero()
}

// Clone returns an independent copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return FromCoeffs(p.coeffs)
}

func (p *Polynomial) normalize() {
	n := len(p.coeffs)
	for n > 1 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

func (p *Polynomial) coeffAt(i int) curve.Fr {
	if i < 0 || i >= len(p.coeffs) {
		return curve.Fr{}
	}
	return p.coeffs[i]
}

// Add returns p+q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	result := make([]curve.Fr, n)
	for i := 0; i < n; i++ {
		a := p.coeffAt(i)
		b := q.coeffAt(i)
		result[i].Add(&a, &b)
	}
	return FromCoeffs(result)
}

// Sub returns p-q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	result := make([]curve.Fr, n)
	for i := 0; i < n; i++ {
		a := p.coeffAt(i)
		b := q.coeffAt(i)
		result[i].Sub(&a, &b)
	}
	return FromCoeffs(result)
}

// ScalarMul returns p scaled by k.
func (p *Polynomial) ScalarMul(k curve.Fr) *Polynomial {
	result := make([]curve.Fr, len(p.coeffs))
	for i, c := range p.coeffs {
		result[i].Mul(&c, &k)
	}
	return FromCoeffs(result)
}

// Mul returns p*q, using the schoolbook O(deg(p)·deg(q)) algorithm — fine
// at the set sizes this accumulator targets.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	result := make([]curve.Fr, len(p.coeffs)+len(q.coeffs)-1)
	var term curve.Fr
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			term.Mul(&a, &b)
			result[i+j].Add(&result[i+j], &term)
		}
	}
	return FromCoeffs(result)
}

// Evaluate computes p(point) via Horner's method.
func (p *Polynomial) Evaluate(point curve.Fr) curve.Fr {
	var result curve.Fr
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &point)
		result.Add(&result, &p.coeffs[i])
	}
	return result
}

// DivMod divides p by d, returning (quotient, remainder) such that
// p = quotient*d + remainder with deg(remainder) < deg(d). It fails only
// when d is the zero polynomial. When deg(p) < deg(d) it degrades
// gracefully to quotient=0, remainder=p, per the polynomial-engine
// contract.
func (p *Polynomial) DivMod(d *Polynomial) (quotient, remainder *Polynomial, err error) {
	if d.IsZero() {
		return nil, nil, ErrDivideByZero
	}
	if p.Degree() < d.Degree() && !p.IsZero() {
		return Zero(), p.Clone(), nil
	}
	if p.IsZero() {
		return Zero(), Zero(), nil
	}

	remCoeffs := make([]curve.Fr, len(p.coeffs))
	copy(remCoeffs, p.coeffs)

	leadInv := d.coeffs[len(d.coeffs)-1]
	leadInv.Inverse(&leadInv)

	qDeg := p.Degree() - d.Degree()
	qCoeffs := make([]curve.Fr, qDeg+1)

	dDeg := d.Degree()
	for shift := qDeg; shift >= 0; shift-- {
		curDeg := shift + dDeg
		if curDeg >= len(remCoeffs) {
			continue
		}
		if remCoeffs[curDeg].IsZero() {
			continue
		}
		var coef curve.Fr
		coef.Mul(&remCoeffs[curDeg], &leadInv)
		qCoeffs[shift] = coef

		var term curve.Fr
		for i, dc := range d.coeffs {
			term.Mul(&coef, &dc)
			idx := shift + i
			remCoeffs[idx].Sub(&remCoeffs[idx], &term)
		}
	}

	quotient = FromCoeffs(qCoeffs)
	remainder = FromCoeffs(remCoeffs[:dDeg])
	return quotient, remainder, nil
}

// XGCD runs the extended Euclidean algorithm over Fr[z], returning
// (gcd, a, b) such that a*p + b*q = gcd. When p and q are coprime, gcd is
// a nonzero constant (a unit of Fr[z]); callers wanting a monic gcd of 1
// should scale a, b, gcd by gcd's inverse.
//
// The disjointness witness the intersection proof needs is exactly this:
// Q_A and Q_B (the parts of each set not in the intersection) are coprime
// iff the two difference sets share no elements, which is what makes the
// accumulator's intersection claim exact rather than a subset claim.
func (p *Polynomial) XGCD(q *Polynomial) (gcd, a, b *Polynomial) {
	oldR, r := p.Clone(), q.Clone()
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()

	for !r.IsZero() {
		quot, rem, err := oldR.DivMod(r)
		if err != nil {
			// r is nonzero by the loop guard, so DivMod cannot fail here.
			panic(err)
		}
		oldR, r = r, rem
		oldS, s = s, oldS.Sub(quot.Mul(s))
		oldT, t = t, oldT.Sub(quot.Mul(t))
	}
	return oldR, oldS, oldT
}
