// Package catalogs provides the catalog data model for skymatch: immutable,
// ordered sequences of sky positions in equatorial degrees. A Catalog can only
// be built through validating constructors, so downstream code may assume every
// position it holds is finite and in range.
package catalogs

import (
	"math"

	"github.com/almagest-io/skymatch/pkg/errors"
)

// Position is a single sky position in degrees.
// RA is right ascension in [0, 360); Dec is declination in [-90, 90].
type Position struct {
	RA  float64
	Dec float64
}

// Validate checks that the position is finite and within the equatorial ranges.
func (p Position) Validate() error {
	if math.IsNaN(p.RA) || math.IsInf(p.RA, 0) {
		return errors.NewValidationError("ra", p.RA, "must be a finite number")
	}
	if math.IsNaN(p.Dec) || math.IsInf(p.Dec, 0) {
		return errors.NewValidationError("dec", p.Dec, "must be a finite number")
	}
	if p.RA < 0 || p.RA >= 360 {
		return errors.NewValidationError("ra", p.RA, "must be in [0, 360) degrees")
	}
	if p.Dec < -90 || p.Dec > 90 {
		return errors.NewValidationError("dec", p.Dec, "must be in [-90, 90] degrees")
	}
	return nil
}

// Catalog is an ordered, immutable sequence of validated sky positions.
// Order is significant: match results refer back to positions by 0-based index.
type Catalog struct {
	positions []Position
}

// New creates a catalog from the given positions, validating each one.
func New(positions ...Position) (*Catalog, error) {
	for i, p := range positions {
		if err := p.Validate(); err != nil {
			return nil, errors.NewValidationError("position", i, err.Error())
		}
	}
	c := &Catalog{positions: make([]Position, len(positions))}
	copy(c.positions, positions)
	return c, nil
}

// FromDegrees creates a catalog from parallel RA and Dec slices, both in
// degrees. The slices must have equal length.
func FromDegrees(ra, dec []float64) (*Catalog, error) {
	if len(ra) != len(dec) {
		return nil, errors.NewValidationError("coordinates", len(ra),
			"ra and dec sequences must have equal length")
	}
	positions := make([]Position, len(ra))
	for i := range ra {
		positions[i] = Position{RA: ra[i], Dec: dec[i]}
	}
	return New(positions...)
}

// Len returns the number of positions in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.positions)
}

// At returns the position at index i. The index must be in [0, Len).
func (c *Catalog) At(i int) Position {
	return c.positions[i]
}

// Positions returns a copy of the catalog's positions in order.
func (c *Catalog) Positions() []Position {
	out := make([]Position, len(c.positions))
	copy(out, c.positions)
	return out
}

// NormalizeRA wraps a right ascension value into [0, 360). Callers with RA
// outside the canonical range should apply this before building a catalog;
// constructors never wrap implicitly. Declination is never wrapped.
func NormalizeRA(ra float64) float64 {
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	return ra
}
