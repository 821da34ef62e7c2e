package colour

// DefaultSampleLimit bounds the outward expansion from each pair midpoint
// when no limit is configured.
const DefaultSampleLimit = 128

// sentinelStopDeltaE stops a pair's downward expansion once the sample is
// perceptually on top of the pair's lower bound.
const sentinelStopDeltaE = 2.0

// withSentinels returns the base colours sorted ascending by RGB value,
// with black and white appended as sentinels when the set does not already
// reach those extremes.
func withSentinels(base []Colour) []Colour {
	out := make([]Colour, len(base))
	copy(out, base)
	SortByRGB(out)

	if len(out) == 0 || out[0].RGB() != Black.RGB() {
		out = append([]Colour{Black}, out...)
	}
	if out[len(out)-1].RGB() != White.RGB() {
		out = append(out, White)
	}
	return out
}

// SampleSpace walks the sorted base colours pairwise and expands outward
// from each pair's midpoint, collecting every sample the analyzer accepts.
// For each adjacent pair the midpoint is analyzed first, then offsets
// ±1, ±2, ... up to limit. The expansion stops early only when the
// downward sample comes within sentinelStopDeltaE of the pair's lower
// bound; the upward side runs to the limit regardless of how close it gets
// to the upper bound, biasing samples toward the lower end of each bracket.
//
// Output order is by pair, then midpoint, then alternating +j/-j. It is
// not globally sorted and may contain duplicates where expansions of
// neighbouring pairs overlap; downstream filtering tolerates both.
func SampleSpace(a *Analyzer, base []Colour, limit int) []Colour {
	if limit <= 0 {
		limit = DefaultSampleLimit
	}

	sorted := withSentinels(base)
	if len(sorted) < 2 {
		return nil
	}

	var out []Colour
	for i := 0; i+1 < len(sorted); i++ {
		start := sorted[i]
		end := sorted[i+1]
		m := start.RGB() + (end.RGB()-start.RGB())/2

		if c, ok := a.Analyze(m); ok {
			out = append(out, c)
		}
		for j := 1; j <= limit; j++ {
			if c, ok := a.Analyze(m + j); ok {
				out = append(out, c)
			}
			low := m - j
			if c, ok := a.Analyze(low); ok {
				out = append(out, c)
			}
			if !Valid(low) || New(low).DistanceTo(start) < sentinelStopDeltaE {
				break
			}
		}
	}
	return out
}
