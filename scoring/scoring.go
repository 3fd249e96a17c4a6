// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package scoring provides the scoring schemes used for pairwise sequence
// alignment. A Scheme assigns a score to aligning two items against each
// other (a substitution) and to aligning an item against a gap.
//
// Substitution scores are obtained either from the Match and Mismatch
// scalars or, when one is supplied, from a Similarity function which
// completely replaces the scalar lookup. The gap score is always scalar.
package scoring

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

// ErrInvalidScheme is returned, wrapped, by Validate for a scheme that
// cannot be used for alignment.
var ErrInvalidScheme = errors.New("invalid scoring scheme")

// Similarity returns the substitution score for aligning a against b.
type Similarity[T any] func(a, b T) float64

// Scheme represents a scoring scheme for items of type T.
type Scheme[T comparable] struct {
	Match    float64
	Mismatch float64
	Gap      float64

	// Similarity, if non-nil, overrides Match and Mismatch.
	Similarity Similarity[T]
}

// Default returns the scheme used when none is specified: a match scores 1,
// and a mismatch or gap scores -1.
func Default[T comparable]() Scheme[T] {
	return Scheme[T]{Match: 1, Mismatch: -1, Gap: -1}
}

// FromSimilarity returns a scheme that uses fn for all substitutions and
// gap for gaps.
func FromSimilarity[T comparable](fn Similarity[T], gap float64) Scheme[T] {
	return Scheme[T]{Gap: gap, Similarity: fn}
}

// Substitution returns the score for aligning a against b.
func (s Scheme[T]) Substitution(a, b T) float64 {
	if s.Similarity != nil {
		return s.Similarity(a, b)
	}
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// HasSimilarity returns true if the scheme uses a similarity function
// rather than the match/mismatch scalars.
func (s Scheme[T]) HasSimilarity() bool {
	return s.Similarity != nil
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%v: %v is not a finite number: %w", name, v, ErrInvalidScheme)
	}
	return nil
}

// Validate returns an error if any of the scheme's scalar scores are
// NaN or infinite. All such problems are reported.
func (s Scheme[T]) Validate() error {
	errs := &errors.M{}
	errs.Append(finite("gap", s.Gap))
	if s.Similarity == nil {
		errs.Append(finite("match", s.Match))
		errs.Append(finite("mismatch", s.Mismatch))
	}
	return errs.Err()
}

// String implements fmt.Stringer.
func (s Scheme[T]) String() string {
	if s.Similarity != nil {
		return fmt.Sprintf("similarity function, gap: %v", s.Gap)
	}
	return fmt.Sprintf("match: %v, mismatch: %v, gap: %v", s.Match, s.Mismatch, s.Gap)
}
