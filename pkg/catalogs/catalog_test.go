package catalogs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almagest-io/skymatch/pkg/errors"
)

func TestPositionValidate(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		wantErr bool
	}{
		{"valid", Position{RA: 145.43, Dec: -27.23}, false},
		{"ra zero", Position{RA: 0, Dec: 0}, false},
		{"dec at pole", Position{RA: 10, Dec: 90}, false},
		{"dec at south pole", Position{RA: 10, Dec: -90}, false},
		{"ra at boundary", Position{RA: 360, Dec: 0}, true},
		{"ra negative", Position{RA: -0.5, Dec: 0}, true},
		{"dec too high", Position{RA: 10, Dec: 90.001}, true},
		{"dec too low", Position{RA: 10, Dec: -90.001}, true},
		{"ra NaN", Position{RA: math.NaN(), Dec: 0}, true},
		{"dec NaN", Position{RA: 10, Dec: math.NaN()}, true},
		{"ra Inf", Position{RA: math.Inf(1), Dec: 0}, true},
		{"dec -Inf", Position{RA: 10, Dec: math.Inf(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pos.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	c, err := New(Position{RA: 1, Dec: 2}, Position{RA: 3, Dec: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, Position{RA: 3, Dec: 4}, c.At(1))

	_, err = New(Position{RA: 400, Dec: 0})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewCopiesInput(t *testing.T) {
	positions := []Position{{RA: 1, Dec: 2}}
	c, err := New(positions...)
	require.NoError(t, err)

	positions[0].RA = 99
	assert.Equal(t, 1.0, c.At(0).RA)
}

func TestFromDegrees(t *testing.T) {
	c, err := FromDegrees([]float64{10, 20}, []float64{-5, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, Position{RA: 20, Dec: 5}, c.At(1))

	_, err = FromDegrees([]float64{10, 20}, []float64{-5})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestPositionsReturnsCopy(t *testing.T) {
	c, err := New(Position{RA: 1, Dec: 2})
	require.NoError(t, err)

	got := c.Positions()
	got[0].RA = 99
	assert.Equal(t, 1.0, c.At(0).RA)
}

func TestEmptyCatalog(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Positions())

	var nilCat *Catalog
	assert.Equal(t, 0, nilCat.Len())
}

func TestNormalizeRA(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{-0.5, 359.5},
		{720.25, 0.25},
		{-360, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeRA(tt.in), 1e-12)
	}
}
