// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scoring

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Config represents a YAML scoring configuration, eg:
//
//	preset: edit
//	gap: -2
//	symmetric: true
//	pairs:
//	  - {a: A, b: G, score: 0.5}
//	  - [C, T, 0.5]
//
// Match, Mismatch and Gap override the values from the preset, if any,
// and the default scheme otherwise.
type Config struct {
	Preset    string   `yaml:"preset"`
	Match     *float64 `yaml:"match"`
	Mismatch  *float64 `yaml:"mismatch"`
	Gap       *float64 `yaml:"gap"`
	Symmetric bool     `yaml:"symmetric"`
	Pairs     []Pair   `yaml:"pairs"`
}

// Pair represents an entry in a substitution table. Items are identified
// by their textual representation. A Pair may be written as a mapping
// with a, b and score keys or as a three element sequence.
type Pair struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Score float64 `yaml:"score"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pair) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		if len(value.Content) != 3 {
			return fmt.Errorf("line %v: a pair must have exactly 3 elements: a, b and score", value.Line)
		}
		score, err := strconv.ParseFloat(value.Content[2].Value, 64)
		if err != nil {
			return fmt.Errorf("line %v: invalid score %q: %w", value.Line, value.Content[2].Value, err)
		}
		p.A, p.B, p.Score = value.Content[0].Value, value.Content[1].Value, score
		return nil
	}
	type plain Pair
	var tmp plain
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*p = Pair(tmp)
	return nil
}

// ParseConfig parses the supplied YAML. Unknown fields are reported as
// errors.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfigFile is like ParseConfig but reads the configuration from
// the named file.
func ParseConfigFile(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type pairKey struct {
	a, b string
}

// NewScheme creates a Scheme from the supplied configuration. The key
// function provides the textual representation used to look up items in
// the configuration's pairs table; it may be nil if there are no pairs.
func NewScheme[T comparable](cfg Config, key func(T) string) (Scheme[T], error) {
	scheme := Default[T]()
	if len(cfg.Preset) > 0 {
		p, err := LookupPreset(cfg.Preset)
		if err != nil {
			return Scheme[T]{}, err
		}
		scheme = PresetScheme[T](p)
	}
	if cfg.Match != nil {
		scheme.Match = *cfg.Match
	}
	if cfg.Mismatch != nil {
		scheme.Mismatch = *cfg.Mismatch
	}
	if cfg.Gap != nil {
		scheme.Gap = *cfg.Gap
	}
	if err := scheme.Validate(); err != nil {
		return Scheme[T]{}, err
	}
	if len(cfg.Pairs) == 0 {
		return scheme, nil
	}
	if key == nil {
		return Scheme[T]{}, fmt.Errorf("a key function is required for a substitution table: %w", ErrInvalidScheme)
	}
	table := make(map[pairKey]float64, len(cfg.Pairs)*2)
	errs := &errors.M{}
	for _, p := range cfg.Pairs {
		errs.Append(finite(fmt.Sprintf("pair %v, %v", p.A, p.B), p.Score))
		table[pairKey{p.A, p.B}] = p.Score
		if cfg.Symmetric {
			if _, ok := table[pairKey{p.B, p.A}]; !ok {
				table[pairKey{p.B, p.A}] = p.Score
			}
		}
	}
	if err := errs.Err(); err != nil {
		return Scheme[T]{}, err
	}
	match, mismatch := scheme.Match, scheme.Mismatch
	scheme.Similarity = func(a, b T) float64 {
		if s, ok := table[pairKey{key(a), key(b)}]; ok {
			return s
		}
		if a == b {
			return match
		}
		return mismatch
	}
	return scheme, nil
}
