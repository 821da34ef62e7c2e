package colour

import (
	"math"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// Stats aggregates the perceptual properties of a base-colour set. It is
// computed once per run in a single pass and read-only afterwards.
type Stats struct {
	// MinBlackDeltaE is the smallest Delta E from any base colour to black.
	MinBlackDeltaE float64
	// MinWhiteDeltaE is the smallest Delta E from any base colour to white.
	MinWhiteDeltaE float64
	// MinLuma and MaxLuma bound the luma range observed across base colours.
	MinLuma float64
	MaxLuma float64
	// MedianPairwiseDeltaE is the median, over all base colours, of each
	// colour's median Delta E to the rest of the set. It is the baseline
	// self-distance of the set and the default distance threshold when no
	// adaptive one is available.
	MedianPairwiseDeltaE float64
}

// ComputeStats derives Stats from the base colours. It returns ok=false
// when fewer than two base colours are supplied; pairwise distances are
// undefined then and callers must treat the run as degenerate rather than
// relying on zero values.
func ComputeStats(base []Colour, log hclog.Logger) (Stats, bool) {
	if len(base) < 2 {
		return Stats{}, false
	}

	blackDeltas := make([]float64, len(base))
	whiteDeltas := make([]float64, len(base))
	lumas := make([]float64, len(base))
	for i, c := range base {
		blackDeltas[i] = c.DistanceTo(Black)
		whiteDeltas[i] = c.DistanceTo(White)
		lumas[i] = c.Luma()
	}

	pairMedians := make([]float64, len(base))
	for i, c := range base {
		deltas := make([]float64, 0, len(base)-1)
		for j, o := range base {
			if i == j {
				continue
			}
			deltas = append(deltas, c.DistanceTo(o))
		}
		pairMedians[i] = median(deltas)
	}

	s := Stats{
		MinBlackDeltaE:       minOf(blackDeltas),
		MinWhiteDeltaE:       minOf(whiteDeltas),
		MinLuma:              minOf(lumas),
		MaxLuma:              maxOf(lumas),
		MedianPairwiseDeltaE: median(pairMedians),
	}

	// Per-metric medians are diagnostic only; the analyzer bands consume
	// the running min/max values.
	log.Debug("base colour statistics",
		"count", len(base),
		"min_black_delta_e", s.MinBlackDeltaE,
		"min_white_delta_e", s.MinWhiteDeltaE,
		"median_black_delta_e", median(blackDeltas),
		"median_white_delta_e", median(whiteDeltas),
		"luma_range", []float64{s.MinLuma, s.MaxLuma},
		"median_luma", median(lumas),
		"median_pairwise_delta_e", s.MedianPairwiseDeltaE,
	)

	return s, true
}

// median returns the middle value of xs (mean of the two middle values for
// even lengths). Returns 0 for an empty sequence; callers guard where zero
// would be ambiguous.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func minOf(xs []float64) float64 {
	m := math.Inf(1)
	for _, x := range xs {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
