// Package palette loads colour lists from JSON files.
package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmylchreest/accent/internal/colour"
)

// ReferenceListName is the fixed name of the large reference palette mined
// in the third round.
const ReferenceListName = "pantone-colors"

// DefaultBaseListName is the base-colour list used when none is selected.
const DefaultBaseListName = "base-colors"

// Load reads a named colour list from dir: a JSON array of hex strings
// (e.g. "#1a2b3c") in a file called <name>.json. Entries are sorted
// lexicographically by hex string before conversion. Any missing file,
// malformed JSON, or non-hex entry is fatal to the run.
func Load(dir, name string) ([]colour.Colour, error) {
	path := filepath.Join(dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read colour list %s: %w", path, err)
	}

	var hexes []string
	if err := json.Unmarshal(data, &hexes); err != nil {
		return nil, fmt.Errorf("invalid colour list %s: %w", path, err)
	}
	sort.Strings(hexes)

	colours := make([]colour.Colour, len(hexes))
	for i, h := range hexes {
		c, err := colour.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid colour list %s: %w", path, err)
		}
		colours[i] = c
	}
	return colours, nil
}
