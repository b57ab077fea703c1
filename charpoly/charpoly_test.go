package charpoly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chain-labs/expraccum/curve"
)

func TestEmptySetEvaluatesToOne(t *testing.T) {
	p := New()
	var a, one curve.Fr
	a.SetInt64(7)
	one.SetOne()
	result := p.Evaluate(a)
	require.True(t, result.Equal(&one))
}

func TestAddRemoveIdempotent(t *testing.T) {
	p := New()
	p.Add(1)
	p.Add(1)
	require.Equal(t, 1, p.Len())
	p.Remove(2)
	require.Equal(t, 1, p.Len())
	p.Remove(1)
	require.Equal(t, 0, p.Len())
}

func TestEvaluateIsZeroAtMembers(t *testing.T) {
	p := New()
	for _, x := range []int32{1, 2, 3} {
		p.Add(x)
	}
	var a curve.Fr
	a.SetInt64(2)
	result1 := p.Evaluate(a)
	require.True(t, result1.IsZero())

	a.SetInt64(10)
	result2 := p.Evaluate(a)
	require.False(t, result2.IsZero())
}

func TestWithoutElement(t *testing.T) {
	p := New()
	for _, x := range []int32{1, 2, 3} {
		p.Add(x)
	}
	q := p.WithoutElement(2)
	require.Equal(t, 2, q.Len())
	require.False(t, q.Contains(2))
	require.True(t, p.Contains(2))
}

func TestPartition(t *testing.T) {
	a := New()
	b := New()
	for _, x := range []int32{1, 2, 3} {
		a.Add(x)
	}
	for _, x := range []int32{2, 3, 4} {
		b.Add(x)
	}

	intersection, onlyA, onlyB := Partition(a, b)
	require.Equal(t, []int32{2, 3}, intersection)
	require.Equal(t, []int32{1}, onlyA)
	require.Equal(t, []int32{4}, onlyB)
}

func TestPartitionIdenticalSets(t *testing.T) {
	a := New()
	b := New()
	for _, x := range []int32{5, 6} {
		a.Add(x)
		b.Add(x)
	}

	intersection, onlyA, onlyB := Partition(a, b)
	require.Equal(t, []int32{5, 6}, intersection)
	require.Empty(t, onlyA)
	require.Empty(t, onlyB)
}
