package setup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chain-labs/expraccum/common"
	"github.com/chain-labs/expraccum/curve"
)

func TestNewRejectsNegativeCapacity(t *testing.T) {
	s := common.ScalarFromSeed("s")
	r := common.ScalarFromSeed("r")
	_, err := New(s, r, -1)
	require.ErrorIs(t, err, ErrCapacityTooSmall)
}

func TestGeneratePowersMatchesDirectExponentiation(t *testing.T) {
	s := common.ScalarFromSeed("s")
	r := common.ScalarFromSeed("r")
	ts, err := New(s, r, 8)
	require.NoError(t, err)
	require.NoError(t, ts.GeneratePowers())

	require.NoError(t, curve.Init())
	g1 := curve.G1Generator()

	got0 := ts.G1Pow(0)
	require.True(t, got0.Equal(&g1))

	expected := curve.ScalarMulG1(g1, s)
	got := ts.G1Pow(1)
	require.True(t, got.Equal(&expected))

	var s3 curve.Fr
	s3.Mul(&s, &s)
	s3.Mul(&s3, &s)
	expected3 := curve.ScalarMulG1(g1, s3)
	got3 := ts.G1Pow(3)
	require.True(t, got3.Equal(&expected3))
}

func TestSecretAccessorsRoundTrip(t *testing.T) {
	s := common.ScalarFromSeed("s")
	r := common.ScalarFromSeed("r")
	ts, err := New(s, r, 4)
	require.NoError(t, err)

	gotS := ts.SecretS()
	gotR := ts.SecretR()
	require.True(t, gotS.Equal(&s))
	require.True(t, gotR.Equal(&r))
}
