// Package skymatch cross-matches astronomical source catalogs: given two
// ordered lists of sky positions (right ascension and declination in
// degrees) and an angular search radius in arcseconds, it identifies the
// best-matching counterpart for each source and resolves ambiguities
// according to a selectable policy.
//
// The core lives in pkg/match; this package is the call surface most
// consumers want:
//
//	a, _ := catalogs.FromDegrees(ra1, dec1)
//	b, _ := catalogs.FromDegrees(ra2, dec2)
//	result, err := skymatch.Match(a, b, 1.0, skymatch.MutualNearest)
//	for _, p := range result.Pairs {
//	    fmt.Println(p.A, p.B, p.Separation)
//	}
package skymatch

import (
	"github.com/almagest-io/skymatch/pkg/catalogs"
	"github.com/almagest-io/skymatch/pkg/match"
)

// Re-exported matcher types, so callers only need this package and
// pkg/catalogs.
type (
	// Policy selects the ambiguity-resolution rule.
	Policy = match.Policy
	// Pair is one accepted cross-match.
	Pair = match.Pair
	// Offset is the systematic offset measured by OffsetCorrected.
	Offset = match.Offset
	// Result is the outcome of one match operation.
	Result = match.Result
	// Option configures a match operation.
	Option = match.Option
)

// Match policies.
const (
	GreedyNearest   = match.GreedyNearest
	NearestUnique   = match.NearestUnique
	MutualNearest   = match.MutualNearest
	OffsetCorrected = match.OffsetCorrected
)

// Match cross-matches catalog a against catalog b within radius arcseconds.
// See pkg/match.Match for the full contract.
func Match(a, b *catalogs.Catalog, radius float64, policy Policy, opts ...Option) (*Result, error) {
	return match.Match(a, b, radius, policy, opts...)
}

// ParsePolicy parses a policy name such as "mutual-nearest" or "greedy".
func ParsePolicy(name string) (Policy, error) {
	return match.ParsePolicy(name)
}

// Re-exported match options.
var (
	// WithLogger configures the logger used for match summaries.
	WithLogger = match.WithLogger
	// WithWorkers configures parallelism over catalog A.
	WithWorkers = match.WithWorkers
	// WithoutIndex forces the plain all-pairs scan.
	WithoutIndex = match.WithoutIndex
)
