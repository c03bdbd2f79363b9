package skymatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almagest-io/skymatch/pkg/catalogs"
)

func TestFacadeMatch(t *testing.T) {
	a, err := catalogs.FromDegrees(
		[]float64{145.4354343, 150.234245},
		[]float64{-27.23423, -30.324233},
	)
	require.NoError(t, err)

	b, err := catalogs.FromDegrees(
		[]float64{0.003423, 145.4355343, 150.234235},
		[]float64{10.32432, -27.23423, -30.324233},
	)
	require.NoError(t, err)

	result, err := Match(a, b, 1, MutualNearest)
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, 1, result.Pairs[0].B)
	assert.Equal(t, 2, result.Pairs[1].B)
}

func TestFacadeParsePolicy(t *testing.T) {
	p, err := ParsePolicy("mutual")
	require.NoError(t, err)
	assert.Equal(t, MutualNearest, p)
}

func TestFacadeOptions(t *testing.T) {
	a, err := catalogs.FromDegrees([]float64{10}, []float64{10})
	require.NoError(t, err)

	result, err := Match(a, a, 1, MutualNearest, WithWorkers(2), WithoutIndex())
	require.NoError(t, err)
	require.Equal(t, 1, result.Len())
	assert.Zero(t, result.Pairs[0].Separation)
}
