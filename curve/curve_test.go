package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitIsDeterministic(t *testing.T) {
	require.NoError(t, Init())
	g1a := G1Generator()
	g2a := G2Generator()
	require.NoError(t, Init())
	g1b := G1Generator()
	g2b := G2Generator()
	require.True(t, g1a.Equal(&g1b))
	require.True(t, g2a.Equal(&g2b))
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	require.NoError(t, Init())
	g1 := G1Generator()

	var three Fr
	three.SetInt64(3)

	viaScalar := ScalarMulG1(g1, three)
	viaAdd := AddG1(AddG1(g1, g1), g1)
	require.True(t, viaScalar.Equal(&viaAdd))
}

func TestPairingCheckDetectsMismatch(t *testing.T) {
	require.NoError(t, Init())
	g1 := G1Generator()
	g2 := G2Generator()

	var two Fr
	two.SetInt64(2)
	doubled := ScalarMulG1(g1, two)

	require.True(t, PairingCheck([]G1{doubled, NegG1(ScalarMulG1(g1, two))}, []G2{g2, g2}))
	require.False(t, PairingCheck([]G1{doubled, NegG1(g1)}, []G2{g2, g2}))
}
