// Package charpoly implements the characteristic polynomial of a finite
// set of small integers (component C2): P_S(z) = ∏_{x∈S}(z - x). It
// holds the set in root form and evaluates it directly, which is the
// fast path the accumulator's digest recomputation uses on every
// add/delete — O(|S|) field operations, no coefficient expansion. The
// coefficient-form engine needed for intersection proofs lives separately
// in package poly, per the design notes: the two representations serve
// different operations and neither subsumes the other.
package charpoly

import (
	"sort"

	"github.com/chain-labs/expraccum/curve"
)

// CharacteristicPolynomial represents a set S ⊂ ℤ as the roots of
// P_S(z) = ∏_{x∈S}(z-x). Duplicates are silently absorbed and order is
// insignificant — it is a set, not a multiset.
type CharacteristicPolynomial struct {
	elements map[int32]struct{}
}

// New returns the characteristic polynomial of the empty set, P(z) = 1.
func New() *CharacteristicPolynomial {
	return &CharacteristicPolynomial{elements: make(map[int32]struct{})}
}

// Add inserts x into S. A no-op if x is already present.
func (p *CharacteristicPolynomial) Add(x int32) {
	p.elements[x] = struct{}{}
}

// Remove deletes x from S. A no-op if x is absent.
func (p *CharacteristicPolynomial) Remove(x int32) {
	delete(p.elements, x)
}

// Contains reports whether x ∈ S.
func (p *CharacteristicPolynomial) Contains(x int32) bool {
	_, ok := p.elements[x]
	return ok
}

// Len returns |S|.
func (p *CharacteristicPolynomial) Len() int {
	return len(p.elements)
}

// Elements returns S as a sorted slice. Sorting makes every
// representation of the same set iterate in the same order, so
// intersection/difference computations and digest recomputation are
// deterministic regardless of insertion history.
func (p *CharacteristicPolynomial) Elements() []int32 {
	out := make([]int32, 0, len(p.elements))
	for x := range p.elements {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Evaluate computes P_S(a) = ∏_{x∈S}(a-x) in Fr. The empty set evaluates
// to 1.
func (p *CharacteristicPolynomial) Evaluate(a curve.Fr) curve.Fr {
	result := curve.Fr{}
	result.SetOne()
	if len(p.elements) == 0 {
		return result
	}
	var xFr, diff curve.Fr
	for _, x := range p.Elements() {
		xFr.SetInt64(int64(x))
		diff.Sub(&a, &xFr)
		result.Mul(&result, &diff)
	}
	return result
}

// WithoutElement returns the characteristic polynomial of S\{x}, used to
// build the membership quotient witness W(z) = P_S(z)/(z-x) without ever
// forming P_S and W in coefficient form.
func (p *CharacteristicPolynomial) WithoutElement(x int32) *CharacteristicPolynomial {
	out := New()
	for y := range p.elements {
		if y != x {
			out.Add(y)
		}
	}
	return out
}

// Partition splits a and b into (intersection, a-only, b-only), the set
// operations the intersection proof's Bézout construction is built on:
// I = A∩B, D_A = A\I, D_B = B\I.
func Partition(a, b *CharacteristicPolynomial) (intersection, onlyA, onlyB []int32) {
	for x := range a.elements {
		if _, ok := b.elements[x]; ok {
			intersection = append(intersection, x)
		} else {
			onlyA = append(onlyA, x)
		}
	}
	for x := range b.elements {
		if _, ok := a.elements[x]; !ok {
			onlyB = append(onlyB, x)
		}
	}
	sort.Slice(intersection, func(i, j int) bool { return intersection[i] < intersection[j] })
	sort.Slice(onlyA, func(i, j int) bool { return onlyA[i] < onlyA[j] })
	sort.Slice(onlyB, func(i, j int) bool { return onlyB[i] < onlyB[j] })
	return intersection, onlyA, onlyB
}

// ToFr converts a slice of set elements to field elements, for handing
// roots to package poly's FromRoots.
func ToFr(elements []int32) []curve.Fr {
	out := make([]curve.Fr, len(elements))
	for i, x := range elements {
		out[i].SetInt64(int64(x))
	}
	return out
}
