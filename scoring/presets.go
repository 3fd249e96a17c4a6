// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scoring

import (
	"fmt"
	"sort"

	"cloudeng.io/errors"
)

// ErrUnknownPreset is returned when a named preset does not exist.
var ErrUnknownPreset = errors.New("unknown scoring preset")

// Preset is a named match/mismatch/gap triple.
type Preset struct {
	Name        string
	Description string
	Match       float64
	Mismatch    float64
	Gap         float64
}

var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "match 1, mismatch and gap -1",
		Match:       1, Mismatch: -1, Gap: -1,
	},
	"edit": {
		Name:        "edit",
		Description: "global score is the negated levenshtein distance",
		Match:       0, Mismatch: -1, Gap: -1,
	},
	"lcs": {
		Name:        "lcs",
		Description: "global score is the length of the longest common subsequence",
		Match:       1, Mismatch: 0, Gap: 0,
	},
}

// Presets returns all of the available presets sorted by name.
func Presets() []Preset {
	all := make([]Preset, 0, len(presets))
	for _, p := range presets {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	return p, nil
}

// PresetScheme returns a Scheme initialized from the preset.
func PresetScheme[T comparable](p Preset) Scheme[T] {
	return Scheme[T]{Match: p.Match, Mismatch: p.Mismatch, Gap: p.Gap}
}
