package colour

// Contrast requirements for candidate colours. 3:1 is the WCAG AA minimum
// for large text; 21:1 is the black-on-white ceiling.
const (
	MinCandidateContrast = 3.0
	MaxContrast          = 21.0
	// MaxDeltaE is the practical upper bound of CIEDE2000 distances.
	MaxDeltaE = 100.0
)

// Band is an inclusive [Low, High] acceptance range.
type Band struct {
	Low  float64
	High float64
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// BandAround derives a band from a reference value and a percentage margin
// (value ± value*margin/100), clamped to the absolute [min, max] bounds.
func BandAround(value, marginPct, min, max float64) Band {
	d := value * marginPct / 100
	b := Band{Low: value - d, High: value + d}
	if b.Low < min {
		b.Low = min
	}
	if b.High > max {
		b.High = max
	}
	return b
}

// Analyzer decides whether a single RGB value is a usable accent candidate.
// Each acceptance band is anchored to the most permissive value observed
// among the base colours, so accepted colours are at least as distinct and
// contrasted as the weakest base colour.
type Analyzer struct {
	contrastWhite Band
	contrastBlack Band
	deltaWhite    Band
	deltaBlack    Band
	luma          Band
}

// NewAnalyzer builds an Analyzer from base-colour statistics.
func NewAnalyzer(stats Stats) *Analyzer {
	return &Analyzer{
		contrastWhite: Band{Low: MinCandidateContrast, High: MaxContrast},
		contrastBlack: Band{Low: MinCandidateContrast, High: MaxContrast},
		deltaWhite:    Band{Low: stats.MinWhiteDeltaE, High: MaxDeltaE},
		deltaBlack:    Band{Low: stats.MinBlackDeltaE, High: MaxDeltaE},
		luma:          Band{Low: stats.MinLuma, High: stats.MaxLuma},
	}
}

// Analyze checks rgb against the five acceptance bands in order,
// short-circuiting on the first failure. A false result is the normal
// "no candidate" outcome, not an error.
func (a *Analyzer) Analyze(rgb int) (Colour, bool) {
	if !Valid(rgb) {
		return Colour{}, false
	}
	c := New(rgb)

	if !a.contrastWhite.Contains(ContrastRatio(c, White)) {
		return Colour{}, false
	}
	if !a.contrastBlack.Contains(ContrastRatio(c, Black)) {
		return Colour{}, false
	}
	if !a.deltaWhite.Contains(c.DistanceTo(White)) {
		return Colour{}, false
	}
	if !a.deltaBlack.Contains(c.DistanceTo(Black)) {
		return Colour{}, false
	}
	if !a.luma.Contains(c.Luma()) {
		return Colour{}, false
	}

	return c, true
}
