package colour

import (
	"errors"
	"testing"
)

func TestAdjustDelta(t *testing.T) {
	c := New(0x336699)
	tests := []struct {
		name      string
		source    []Colour
		reference []Colour
		want      float64
	}{
		{name: "empty source", source: nil, reference: []Colour{c}, want: 0},
		{name: "empty reference", source: []Colour{c}, reference: nil, want: 0},
		{name: "identical single colour", source: []Colour{c}, reference: []Colour{c}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustDelta(tt.source, tt.reference); got != tt.want {
				t.Errorf("AdjustDelta = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestAdjustDeltaNearestNeighbour(t *testing.T) {
	// Each source colour's minimum distance is to its closest reference;
	// the result is the median of those minimums.
	source := []Colour{Black, White}
	reference := []Colour{New(0x010101), New(0xfefefe)}

	got := AdjustDelta(source, reference)
	dBlack := Black.DistanceTo(New(0x010101))
	dWhite := White.DistanceTo(New(0xfefefe))
	want := (dBlack + dWhite) / 2
	if diff := got - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("AdjustDelta = %f, want %f", got, want)
	}
}

func TestConsolidateRequiresSortedInput(t *testing.T) {
	unsorted := []Colour{New(0xffffff), New(0x000000)}
	if _, err := Consolidate(unsorted, nil, 5); !errors.Is(err, ErrUnsorted) {
		t.Errorf("Consolidate on unsorted input returned %v, want ErrUnsorted", err)
	}
}

func TestConsolidateEmpty(t *testing.T) {
	out, err := Consolidate(nil, nil, 5)
	if err != nil {
		t.Fatalf("Consolidate(nil) unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Consolidate(nil) returned %d colours, want 0", len(out))
	}
}

func TestConsolidateCollapsesNearDuplicates(t *testing.T) {
	// Two tight clusters far apart: one representative per cluster.
	candidates := []Colour{
		New(0x100000), New(0x100001), New(0x100002),
		New(0xe0e0e0), New(0xe0e0e1),
	}
	reference := []Colour{Black}

	out, err := Consolidate(candidates, reference, 5)
	if err != nil {
		t.Fatalf("Consolidate unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Consolidate returned %d colours, want 2: %v", len(out), Hexes(out))
	}
	if out[0].RGB() >= 0xe0e0e0 || out[1].RGB() < 0xe0e0e0 {
		t.Errorf("representatives not one per cluster: %v", Hexes(out))
	}
}

func TestConsolidateOutputSubsetOfInput(t *testing.T) {
	candidates := []Colour{
		New(0x102030), New(0x102031), New(0x405060),
		New(0x708090), New(0xa0b0c0),
	}
	in := map[int]bool{}
	for _, c := range candidates {
		in[c.RGB()] = true
	}

	out, err := Consolidate(candidates, []Colour{Black, White}, 10)
	if err != nil {
		t.Fatalf("Consolidate unexpected error: %v", err)
	}
	if len(out) == 0 || len(out) > len(candidates) {
		t.Fatalf("Consolidate returned %d colours for %d candidates", len(out), len(candidates))
	}
	for _, c := range out {
		if !in[c.RGB()] {
			t.Errorf("Consolidate invented colour %s", c.Hex())
		}
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	// A set whose pairwise neighbour distances all exceed the cutoff is
	// one group per member; consolidating it again must return it
	// unchanged.
	reference := []Colour{Black, White}
	candidates := []Colour{New(0x200000), New(0x006000), New(0x0000a0), New(0xd0d0d0)}
	SortByRGB(candidates)

	once, err := Consolidate(candidates, reference, 5)
	if err != nil {
		t.Fatalf("first Consolidate: %v", err)
	}
	twice, err := Consolidate(once, reference, 5)
	if err != nil {
		t.Fatalf("second Consolidate: %v", err)
	}
	if len(once) != len(twice) {
		t.Fatalf("idempotence violated: %d then %d colours", len(once), len(twice))
	}
	for i := range once {
		if once[i].RGB() != twice[i].RGB() {
			t.Errorf("idempotence violated at %d: %s then %s", i, once[i].Hex(), twice[i].Hex())
		}
	}
}

func TestMostDistinctFavoursDistanceFromReference(t *testing.T) {
	// Within one group the member farthest (by median Delta E) from the
	// reference set wins, not the first or the loudest.
	group := []Colour{New(0x101010), New(0x121212)}
	reference := []Colour{New(0x101010)}

	got := mostDistinct(group, reference)
	if got.RGB() != 0x121212 {
		t.Errorf("mostDistinct = %s, want #121212", got.Hex())
	}
}

func TestMostDistinctTieKeepsFirst(t *testing.T) {
	// Empty reference makes every median zero; the first member wins.
	group := []Colour{New(0x111111), New(0x222222)}
	got := mostDistinct(group, nil)
	if got.RGB() != 0x111111 {
		t.Errorf("mostDistinct tie = %s, want first member", got.Hex())
	}
}
