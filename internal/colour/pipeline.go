package colour

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/accent/internal/cache"
)

// Pipeline runs the three classification rounds over a base-colour set and
// a reference palette, memoizing each round's output in Store.
type Pipeline struct {
	Log   hclog.Logger
	Store cache.Store
	// SampleLimit bounds round-1 expansion per pair; 0 selects
	// DefaultSampleLimit.
	SampleLimit int
}

// cacheEntry is the persisted form of one candidate colour. The hex string
// is sufficient to reconstruct the Colour.
type cacheEntry struct {
	Color string `json:"color"`
}

// Run executes the full pipeline for the named base-colour list and
// returns the final selected colours. listName keys the cache entries so
// different inputs never share artifacts. With fewer than two base colours
// the statistics are undefined and the run yields no candidates.
func (p *Pipeline) Run(listName string, base, reference []Colour) ([]Colour, error) {
	stats, ok := ComputeStats(base, p.Log)
	if !ok {
		p.Log.Warn("not enough base colours for statistics, nothing to select", "count", len(base))
		return nil, nil
	}
	analyzer := NewAnalyzer(stats)

	first, err := p.memoized(listName, "first", func() ([]Colour, error) {
		sampled := SampleSpace(analyzer, base, p.SampleLimit)
		p.Log.Info("first round complete", "candidates", len(sampled))
		return sampled, nil
	})
	if err != nil {
		return nil, err
	}

	second, err := p.memoized(listName, "second", func() ([]Colour, error) {
		classified, err := RoundTwo(first, base, p.Log)
		if err != nil {
			return nil, err
		}
		p.Log.Info("second round complete", "candidates", len(classified))
		return classified, nil
	})
	if err != nil {
		return nil, err
	}

	third, err := p.memoized(listName, "third", func() ([]Colour, error) {
		selected, err := RoundThree(analyzer, second, base, reference, p.Log)
		if err != nil {
			return nil, err
		}
		p.Log.Info("third round complete", "candidates", len(selected))
		return selected, nil
	})
	if err != nil {
		return nil, err
	}

	return third, nil
}

// memoized returns the cached result for the round when present, otherwise
// computes, persists, and returns it. On a hit the compute function never
// runs, including its logging.
func (p *Pipeline) memoized(listName, round string, compute func() ([]Colour, error)) ([]Colour, error) {
	key := fmt.Sprintf("%s-%s-round", listName, round)

	data, hit, err := p.Store.Get(key)
	if err != nil {
		return nil, err
	}
	if hit {
		colours, err := decodeEntries(data)
		if err != nil {
			return nil, fmt.Errorf("corrupt cache entry %s: %w", key, err)
		}
		p.Log.Debug("cache hit", "key", key, "candidates", len(colours))
		return colours, nil
	}

	colours, err := compute()
	if err != nil {
		return nil, err
	}
	encoded, err := encodeEntries(colours)
	if err != nil {
		return nil, err
	}
	if err := p.Store.Put(key, encoded); err != nil {
		return nil, err
	}
	return colours, nil
}

func encodeEntries(colours []Colour) ([]byte, error) {
	entries := make([]cacheEntry, len(colours))
	for i, c := range colours {
		entries[i] = cacheEntry{Color: c.Hex()}
	}
	return json.Marshal(entries)
}

func decodeEntries(data []byte) ([]Colour, error) {
	var entries []cacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	colours := make([]Colour, len(entries))
	for i, e := range entries {
		c, err := ParseHex(e.Color)
		if err != nil {
			return nil, err
		}
		colours[i] = c
	}
	return colours, nil
}
