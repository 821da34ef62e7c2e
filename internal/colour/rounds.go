package colour

import "github.com/hashicorp/go-hclog"

// RoundTwo filters the round-1 candidates against the base colours using
// the adaptive threshold, then consolidates the survivors. A candidate is
// dropped when its Delta E to ANY base colour falls below the threshold.
func RoundTwo(candidates, base []Colour, log hclog.Logger) ([]Colour, error) {
	refDelta := AdjustDelta(candidates, base)
	log.Debug("second round threshold", "ref_delta_e", refDelta)

	survivors := make([]Colour, 0, len(candidates))
	for _, c := range candidates {
		if !tooClose(c, base, refDelta) {
			survivors = append(survivors, c)
		}
	}

	SortByRGB(survivors)
	return Consolidate(survivors, base, wideGroupCutoff)
}

// RoundThree mines the reference palette: every reference colour is
// re-analyzed against the acceptance bands, then must clear the adaptive
// distance to both the base colours and the round-2 results. Survivors are
// consolidated twice, first against the base colours and then against
// themselves, collapsing residual near-duplicates before final output.
func RoundThree(a *Analyzer, classified, base, reference []Colour, log hclog.Logger) ([]Colour, error) {
	refBaseDelta := AdjustDelta(classified, base)
	log.Debug("third round base threshold", "ref_base_delta_e", refBaseDelta)
	refDelta := AdjustDelta(classified, reference)
	log.Debug("third round reference threshold", "ref_delta_e", refDelta)

	survivors := make([]Colour, 0, len(reference))
	for _, rc := range reference {
		c, ok := a.Analyze(rc.RGB())
		if !ok {
			continue
		}
		if tooClose(c, base, refBaseDelta) {
			continue
		}
		if tooClose(c, classified, refDelta) {
			continue
		}
		survivors = append(survivors, c)
	}

	SortByRGB(survivors)
	intermediate, err := Consolidate(survivors, base, tightGroupCutoff)
	if err != nil {
		return nil, err
	}

	SortByRGB(intermediate)
	return Consolidate(intermediate, intermediate, tightGroupCutoff)
}

// tooClose reports whether c is within threshold Delta E of any colour in
// set. A zero threshold never matches: distances are non-negative.
func tooClose(c Colour, set []Colour, threshold float64) bool {
	for _, o := range set {
		if c.DistanceTo(o) < threshold {
			return true
		}
	}
	return false
}
