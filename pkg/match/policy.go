package match

import (
	"fmt"
	"strings"

	"github.com/almagest-io/skymatch/pkg/errors"
)

// Policy selects how candidate pairs are resolved into a final match set
// when several sources fall within the search radius of one another.
type Policy int

const (
	// GreedyNearest assigns each catalog-A source to its closest in-radius
	// catalog-B source. A single B source may be claimed by several A sources
	// (many-to-one allowed). Ties go to the smaller B index.
	GreedyNearest Policy = iota

	// NearestUnique starts from GreedyNearest and then, wherever several A
	// sources claim the same B source, keeps only the closest claimant
	// (ties: smaller A index). Forced one-to-one. This is a documented
	// intermediate between greedy and mutual resolution.
	NearestUnique

	// MutualNearest keeps a pair (i, j) only if j is i's nearest in-radius B
	// source AND i is j's nearest in-radius A source. Strict one-to-one by
	// reciprocal agreement; no separate conflict pass is needed.
	MutualNearest

	// OffsetCorrected runs NearestUnique twice: the first pass measures the
	// median RA/Dec offset between the matched pairs, catalog B is shifted by
	// that offset to cancel any systematic difference between the two frames,
	// and the second pass over the shifted copy produces the final pairs.
	// Forced one-to-one, like NearestUnique. Documented variant.
	OffsetCorrected
)

// Policies returns all supported match policies.
func Policies() []Policy {
	return []Policy{GreedyNearest, NearestUnique, MutualNearest, OffsetCorrected}
}

// Valid reports whether p is a supported policy value.
func (p Policy) Valid() bool {
	return p >= GreedyNearest && p <= OffsetCorrected
}

// String returns the canonical name of the policy.
func (p Policy) String() string {
	switch p {
	case GreedyNearest:
		return "greedy-nearest"
	case NearestUnique:
		return "nearest-unique"
	case MutualNearest:
		return "mutual-nearest"
	case OffsetCorrected:
		return "offset-corrected"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name. Both canonical names and short
// aliases ("greedy", "unique", "mutual", "offset") are accepted.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy-nearest", "greedy":
		return GreedyNearest, nil
	case "nearest-unique", "unique":
		return NearestUnique, nil
	case "mutual-nearest", "mutual":
		return MutualNearest, nil
	case "offset-corrected", "offset":
		return OffsetCorrected, nil
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrUnknownPolicy, name)
	}
}
