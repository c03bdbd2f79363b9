// Package sphere provides great-circle geometry helpers for catalog
// cross-matching, built on S2 spherical geometry. Separations use the
// haversine formula via s2.LatLng.Distance, which is numerically stable
// for the sub-arcsecond angles typical of source matching.
package sphere

import (
	"math"
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/almagest-io/skymatch/pkg/catalogs"
)

// ArcsecPerRadian converts great-circle angles in radians to arcseconds.
const ArcsecPerRadian = 3600 * 180 / math.Pi

// latLng maps an equatorial position onto the S2 sphere. Declination plays
// the role of latitude and right ascension of longitude.
func latLng(p catalogs.Position) s2.LatLng {
	return s2.LatLngFromDegrees(p.Dec, p.RA)
}

// Separation returns the great-circle angle between two positions.
func Separation(p, q catalogs.Position) s1.Angle {
	return latLng(p).Distance(latLng(q))
}

// SeparationArcsec returns the great-circle separation in arcseconds.
func SeparationArcsec(p, q catalogs.Position) float64 {
	return Separation(p, q).Radians() * ArcsecPerRadian
}

// ArcsecToAngle converts a radius in arcseconds to an S2 angle.
func ArcsecToAngle(arcsec float64) s1.Angle {
	return s1.Angle(arcsec / ArcsecPerRadian)
}

const (
	// maxIndexLevel is the finest S2 cell level used for bucketing. Level 30
	// cells are under a centimeter on Earth; far below any usable search radius.
	maxIndexLevel = 30

	// maxCoverCells bounds the cap covering. With cells at least four search
	// radii wide a cap touches a handful of cells at most.
	maxCoverCells = 16

	// capSlack inflates the lookup cap so that chord-angle rounding can never
	// exclude a source whose haversine separation is exactly the radius.
	capSlack = s1.Angle(1e-12)
)

// Index buckets positions by S2 cell so that a radius query inspects only
// the positions in cells overlapping the search cap. Lookups return a
// superset of the in-radius positions; callers still verify separations.
type Index struct {
	level  int
	radius s1.Angle
	cells  map[s2.CellID][]int
}

// NewIndex builds a cell index over positions for the given search radius.
func NewIndex(positions []catalogs.Position, radius s1.Angle) *Index {
	level := indexLevel(radius)
	idx := &Index{
		level:  level,
		radius: radius,
		cells:  make(map[s2.CellID][]int),
	}
	for i, p := range positions {
		id := s2.CellIDFromLatLng(latLng(p)).Parent(level)
		idx.cells[id] = append(idx.cells[id], i)
	}
	return idx
}

// indexLevel picks the finest cell level whose minimum cell width still
// exceeds twice the cap diameter, keeping cap coverings small.
func indexLevel(radius s1.Angle) int {
	level := s2.MinWidthMetric.MaxLevel(4 * radius.Radians())
	if level > maxIndexLevel {
		level = maxIndexLevel
	}
	if level < 0 {
		level = 0
	}
	return level
}

// Candidates returns the indices of all indexed positions that may lie
// within the search radius of p, in ascending index order.
func (x *Index) Candidates(p catalogs.Position) []int {
	searchCap := s2.CapFromCenterAngle(s2.PointFromLatLng(latLng(p)), x.radius+capSlack)
	rc := &s2.RegionCoverer{
		MinLevel: x.level,
		MaxLevel: x.level,
		LevelMod: 1,
		MaxCells: maxCoverCells,
	}

	var out []int
	for _, id := range rc.Covering(searchCap) {
		out = append(out, x.cells[id]...)
	}
	sort.Ints(out)
	return out
}
