package match

// Pair is one accepted cross-match: the 0-based index of a source in
// catalog A, the index of its counterpart in catalog B, and their
// great-circle separation in arcseconds.
type Pair struct {
	A          int
	B          int
	Separation float64
}

// Offset is the systematic coordinate offset measured between two catalogs
// by the OffsetCorrected policy: the median of the per-pair coordinate
// differences (A minus B), in degrees, plus the same offsets expressed in
// arcseconds on the sky (RA scaled by the cosine of the median declination).
type Offset struct {
	RADegrees  float64
	DecDegrees float64
	RAArcsec   float64
	DecArcsec  float64
}

// Result is the outcome of one match operation. Pairs are ordered by
// ascending A index, then ascending B index, and hold only indices and
// separations; they never reference catalog storage. Offset is non-nil
// only under the OffsetCorrected policy when a first-pass match succeeded.
type Result struct {
	Pairs  []Pair
	Offset *Offset
}

// Len returns the number of matched pairs.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Pairs)
}
