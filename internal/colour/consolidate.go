package colour

import (
	"errors"
	"math"
)

// Grouping cutoffs for consolidation. Round 2 collapses the densely
// sampled candidates with a wide cutoff; round 3 uses a tight one for the
// already-sparse reference survivors.
const (
	wideGroupCutoff  = 49.0
	tightGroupCutoff = 5.0
)

// ErrUnsorted is returned by Consolidate when its precondition is violated.
var ErrUnsorted = errors.New("candidates must be sorted ascending by RGB value")

// AdjustDelta computes the typical nearest-neighbour distance from source
// to reference: the median over source of each colour's minimum Delta E to
// any reference colour. It is the adaptive working threshold for a round,
// replacing the static median pairwise distance. An empty source or
// reference yields 0, which imposes no constraint downstream.
func AdjustDelta(source, reference []Colour) float64 {
	if len(source) == 0 || len(reference) == 0 {
		return 0
	}
	mins := make([]float64, len(source))
	for i, s := range source {
		nearest := math.Inf(1)
		for _, r := range reference {
			if d := s.DistanceTo(r); d < nearest {
				nearest = d
			}
		}
		mins[i] = nearest
	}
	return median(mins)
}

// Consolidate collapses runs of near-duplicate candidates into one
// representative per group. Candidates MUST already be sorted ascending by
// RGB value; the caller sorts, Consolidate only verifies.
//
// Walking adjacent pairs, candidates accumulate into a group until the
// Delta E between neighbours exceeds cutoff, which closes the group. Each
// group is reduced to the member with the maximum median Delta E to the
// reference set: the most distinct representative, not merely one distinct
// from its own group. Ties keep the first occurrence.
func Consolidate(candidates, reference []Colour, cutoff float64) ([]Colour, error) {
	if !sortedByRGB(candidates) {
		return nil, ErrUnsorted
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	out := make([]Colour, 0, len(candidates))
	group := []Colour{candidates[0]}
	for i := 1; i < len(candidates); i++ {
		if candidates[i-1].DistanceTo(candidates[i]) > cutoff {
			out = append(out, mostDistinct(group, reference))
			group = group[:0]
		}
		group = append(group, candidates[i])
	}
	out = append(out, mostDistinct(group, reference))
	return out, nil
}

// mostDistinct returns the group member with the highest median Delta E to
// the reference colours. The first member wins ties.
func mostDistinct(group, reference []Colour) Colour {
	best := group[0]
	bestScore := math.Inf(-1)
	for _, c := range group {
		deltas := make([]float64, len(reference))
		for i, r := range reference {
			deltas[i] = c.DistanceTo(r)
		}
		if score := median(deltas); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}
