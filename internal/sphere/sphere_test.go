package sphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almagest-io/skymatch/pkg/catalogs"
)

func TestSeparationArcsec(t *testing.T) {
	tests := []struct {
		name string
		p, q catalogs.Position
		want float64
		tol  float64
	}{
		{
			name: "coincident",
			p:    catalogs.Position{RA: 150.1, Dec: -30.5},
			q:    catalogs.Position{RA: 150.1, Dec: -30.5},
			want: 0,
			tol:  1e-9,
		},
		{
			name: "one arcsec in declination",
			p:    catalogs.Position{RA: 10, Dec: 20},
			q:    catalogs.Position{RA: 10, Dec: 20 + 1.0/3600},
			want: 1,
			tol:  1e-6,
		},
		{
			name: "ra offset scales with cos dec",
			p:    catalogs.Position{RA: 100, Dec: 60},
			q:    catalogs.Position{RA: 100 + 1.0/3600, Dec: 60},
			want: 0.5, // cos 60 deg
			tol:  1e-6,
		},
		{
			name: "quarter circle along equator",
			p:    catalogs.Position{RA: 0, Dec: 0},
			q:    catalogs.Position{RA: 90, Dec: 0},
			want: 90 * 3600,
			tol:  1e-3,
		},
		{
			name: "across the ra wrap",
			p:    catalogs.Position{RA: 359.9999, Dec: 0},
			q:    catalogs.Position{RA: 0.0001, Dec: 0},
			want: 0.72,
			tol:  1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeparationArcsec(tt.p, tt.q)
			assert.InDelta(t, tt.want, got, tt.tol)
			// Separation is symmetric.
			assert.InDelta(t, got, SeparationArcsec(tt.q, tt.p), 1e-12)
		})
	}
}

func TestIndexCandidatesSuperset(t *testing.T) {
	radius := 2.0 // arcsec

	center := catalogs.Position{RA: 187.25, Dec: 12.5}
	positions := []catalogs.Position{
		{RA: 187.25, Dec: 12.5},              // coincident
		{RA: 187.25, Dec: 12.5 + 1.0/3600},   // 1 arcsec away
		{RA: 187.25, Dec: 12.5 + 2.0/3600},   // exactly at radius
		{RA: 187.25, Dec: 12.5 + 2.5/3600},   // just outside
		{RA: 10.0, Dec: -45.0},               // far away
		{RA: 187.25 - 1.5/3600, Dec: 12.5},   // in radius, ra direction
	}

	idx := NewIndex(positions, ArcsecToAngle(radius))
	got := idx.Candidates(center)

	// Every position within the radius must be returned.
	for i, p := range positions {
		if SeparationArcsec(center, p) <= radius {
			assert.Contains(t, got, i, "position %d should be a candidate", i)
		}
	}

	// Candidates come back in ascending index order.
	for k := 1; k < len(got); k++ {
		assert.Less(t, got[k-1], got[k])
	}
}

func TestIndexCandidatesPrunesFar(t *testing.T) {
	positions := []catalogs.Position{
		{RA: 0.001, Dec: 0.001},
		{RA: 180.0, Dec: 45.0},
	}
	idx := NewIndex(positions, ArcsecToAngle(1))

	got := idx.Candidates(catalogs.Position{RA: 0.001, Dec: 0.001})
	require.Contains(t, got, 0)
	assert.NotContains(t, got, 1)
}

func TestIndexLevelMonotonic(t *testing.T) {
	// Wider radii must land on coarser (or equal) levels.
	narrow := indexLevel(ArcsecToAngle(0.1))
	wide := indexLevel(ArcsecToAngle(3600))
	assert.GreaterOrEqual(t, narrow, wide)
	assert.LessOrEqual(t, narrow, maxIndexLevel)
	assert.GreaterOrEqual(t, wide, 0)
}
