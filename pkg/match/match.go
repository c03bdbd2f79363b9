// Package match implements cross-matching of two sky-position catalogs:
// for each source in one catalog it finds the best counterpart in the other
// within an angular search radius, then resolves ambiguities according to a
// selectable Policy. The operation is pure and deterministic; tie-breaks
// always favor the smaller opposing index.
package match

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/almagest-io/skymatch/internal/sphere"
	"github.com/almagest-io/skymatch/pkg/catalogs"
	"github.com/almagest-io/skymatch/pkg/errors"
)

// Match cross-matches catalog a against catalog b within radius arcseconds.
//
// The radius bound is inclusive: a pair separated by exactly the radius is a
// candidate. An empty catalog on either side yields an empty Result, not an
// error. Invalid parameters (non-positive or non-finite radius, unknown
// policy, bad options) fail with an error satisfying errors.ErrInvalidInput
// or errors.ErrUnknownPolicy before any computation starts.
//
// Pairs in the Result are ordered by ascending A index then B index, and
// every returned separation is ≤ radius.
func Match(a, b *catalogs.Catalog, radius float64, policy Policy, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, errors.NewValidationError("radius", radius,
			"must be a positive, finite number of arcseconds")
	}
	if !policy.Valid() {
		return nil, errors.NewValidationError("policy", int(policy),
			errors.ErrUnknownPolicy.Error())
	}
	if a.Len() == 0 || b.Len() == 0 {
		return &Result{}, nil
	}

	pa := a.Positions()
	pb := b.Positions()

	result, err := resolve(pa, pb, radius, policy, cfg)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info().
		Str("policy", policy.String()).
		Float64("radius_arcsec", radius).
		Int("pairs", result.Len()).
		Msg("cross-match complete")

	return result, nil
}

// resolve applies the selected policy over the two position sequences.
func resolve(pa, pb []catalogs.Position, radius float64, policy Policy, cfg *config) (*Result, error) {
	switch policy {
	case GreedyNearest:
		near := nearestNeighbors(pa, pb, radius, cfg)
		return &Result{Pairs: pairsFrom(near)}, nil

	case NearestUnique:
		near := uniqueNearest(nearestNeighbors(pa, pb, radius, cfg))
		return &Result{Pairs: pairsFrom(near)}, nil

	case MutualNearest:
		nearAB := nearestNeighbors(pa, pb, radius, cfg)
		nearBA := nearestNeighbors(pb, pa, radius, cfg)
		for i, asg := range nearAB {
			if !asg.ok {
				continue
			}
			back := nearBA[asg.j]
			if !back.ok || back.j != i {
				nearAB[i] = assignment{}
			}
		}
		return &Result{Pairs: pairsFrom(nearAB)}, nil

	case OffsetCorrected:
		return offsetCorrected(pa, pb, radius, cfg)

	default:
		return nil, errors.NewValidationError("policy", int(policy),
			errors.ErrUnknownPolicy.Error())
	}
}

// offsetCorrected implements the two-pass match: a forced one-to-one pass to
// measure the median coordinate offset between the catalogs, a shift of
// catalog B by that offset, and a second forced one-to-one pass over the
// shifted copy.
func offsetCorrected(pa, pb []catalogs.Position, radius float64, cfg *config) (*Result, error) {
	first := pairsFrom(uniqueNearest(nearestNeighbors(pa, pb, radius, cfg)))
	cfg.logger.Debug().Int("pairs", len(first)).Msg("first pass")
	if len(first) == 0 {
		return &Result{}, nil
	}

	off := measureOffset(pa, pb, first)
	cfg.logger.Info().
		Float64("ra_offset_arcsec", off.RAArcsec).
		Float64("dec_offset_arcsec", off.DecArcsec).
		Msg("applying median coordinate offset to catalog B")

	shifted := make([]catalogs.Position, len(pb))
	for k, p := range pb {
		shifted[k] = catalogs.Position{RA: p.RA + off.RADegrees, Dec: p.Dec + off.DecDegrees}
	}

	second := pairsFrom(uniqueNearest(nearestNeighbors(pa, shifted, radius, cfg)))
	cfg.logger.Debug().Int("pairs", len(second)).Msg("second pass")

	return &Result{Pairs: second, Offset: &off}, nil
}

// assignment is the nearest in-radius counterpart found for one source.
// ok is false when no counterpart lies within the radius.
type assignment struct {
	j   int
	sep float64
	ok  bool
}

// nearestNeighbors finds, for every position in from, its nearest in-radius
// position in to. Ties break to the smaller index. The scan over from is
// split across cfg.workers goroutines owning disjoint index blocks.
func nearestNeighbors(from, to []catalogs.Position, radius float64, cfg *config) []assignment {
	out := make([]assignment, len(from))

	var idx *sphere.Index
	if !cfg.noIndex {
		idx = sphere.NewIndex(to, sphere.ArcsecToAngle(radius))
	}

	scan := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var best assignment
			consider := func(j int) {
				sep := sphere.SeparationArcsec(from[i], to[j])
				if sep > radius {
					return
				}
				// Ascending j with a strict < keeps the smallest j on ties.
				if !best.ok || sep < best.sep {
					best = assignment{j: j, sep: sep, ok: true}
				}
			}
			if idx != nil {
				for _, j := range idx.Candidates(from[i]) {
					consider(j)
				}
			} else {
				for j := range to {
					consider(j)
				}
			}
			out[i] = best
		}
	}

	workers := cfg.workers
	if workers > len(from) {
		workers = len(from)
	}
	if workers <= 1 {
		scan(0, len(from))
		return out
	}

	g := new(errgroup.Group)
	block := (len(from) + workers - 1) / workers
	for lo := 0; lo < len(from); lo += block {
		lo, hi := lo, min(lo+block, len(from))
		g.Go(func() error {
			scan(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return out
}

// uniqueNearest resolves many-to-one assignments: where several sources claim
// the same counterpart, only the closest claimant survives (ties: smaller
// claimant index, since the scan runs in ascending order with a strict <).
func uniqueNearest(near []assignment) []assignment {
	claim := make(map[int]int, len(near)) // counterpart index -> best claimant
	for i, asg := range near {
		if !asg.ok {
			continue
		}
		prev, claimed := claim[asg.j]
		if !claimed || asg.sep < near[prev].sep {
			claim[asg.j] = i
		}
	}

	out := make([]assignment, len(near))
	for _, i := range claim {
		out[i] = near[i]
	}
	return out
}

// pairsFrom converts per-source assignments into the final pair list,
// ordered by ascending A index (each A index appears at most once).
func pairsFrom(near []assignment) []Pair {
	var pairs []Pair
	for i, asg := range near {
		if asg.ok {
			pairs = append(pairs, Pair{A: i, B: asg.j, Separation: asg.sep})
		}
	}
	return pairs
}

// measureOffset computes the median per-pair coordinate differences
// (A minus B) in degrees, plus their on-sky arcsecond equivalents. The RA
// offset is scaled by the cosine of catalog A's median declination.
func measureOffset(pa, pb []catalogs.Position, pairs []Pair) Offset {
	dra := make([]float64, len(pairs))
	ddec := make([]float64, len(pairs))
	for k, pr := range pairs {
		dra[k] = pa[pr.A].RA - pb[pr.B].RA
		ddec[k] = pa[pr.A].Dec - pb[pr.B].Dec
	}

	decs := make([]float64, len(pa))
	for i, p := range pa {
		decs[i] = p.Dec
	}

	raDeg := median(dra)
	decDeg := median(ddec)
	cosDec := math.Cos(median(decs) * math.Pi / 180)

	return Offset{
		RADegrees:  raDeg,
		DecDegrees: decDeg,
		RAArcsec:   raDeg * 3600 * cosDec,
		DecArcsec:  decDeg * 3600,
	}
}

// median returns the median of v; for even lengths, the mean of the two
// middle values. v must be non-empty and is not modified.
func median(v []float64) float64 {
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
