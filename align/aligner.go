// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/seqalign/scoring"
)

// Aligner computes the optimal alignment of two sequences under a given
// scoring scheme and mode. The matrix is built and the alignment
// obtained on the first call to Align; subsequent calls return the same
// result. An Aligner is not safe for concurrent use.
type Aligner[T comparable] struct {
	a, b   []T
	scheme scoring.Scheme[T]
	mode   Mode

	filled bool
	matrix *Matrix
	result Result[T]
}

// New returns an Aligner for a and b. The sequences are not copied and
// must not be modified whilst the Aligner is in use.
func New[T comparable](mode Mode, a, b []T, scheme scoring.Scheme[T]) (*Aligner[T], error) {
	if mode == nil {
		return nil, fmt.Errorf("no alignment mode specified: %w", ErrInvalidConfiguration)
	}
	if err := scheme.Validate(); err != nil {
		return nil, errors.NewM(err, ErrInvalidConfiguration)
	}
	return &Aligner[T]{
		a:      a,
		b:      b,
		scheme: scheme,
		mode:   mode,
	}, nil
}

// NewNeedlemanWunsch returns an Aligner that performs global alignment.
func NewNeedlemanWunsch[T comparable](a, b []T, scheme scoring.Scheme[T]) (*Aligner[T], error) {
	return New(Global, a, b, scheme)
}

// NewSmithWaterman returns an Aligner that performs local alignment.
func NewSmithWaterman[T comparable](a, b []T, scheme scoring.Scheme[T]) (*Aligner[T], error) {
	return New(Local, a, b, scheme)
}

// Mode returns the alignment mode.
func (al *Aligner[T]) Mode() Mode {
	return al.mode
}

// Scheme returns the scoring scheme.
func (al *Aligner[T]) Scheme() scoring.Scheme[T] {
	return al.scheme
}

// Align computes the alignment.
func (al *Aligner[T]) Align() (Result[T], error) {
	if al.mode == nil {
		return Result[T]{}, ErrNotConfigured
	}
	if al.filled {
		return al.result, nil
	}
	al.fill()
	al.result = al.backtrack()
	al.filled = true
	return al.result, nil
}

// Result returns the alignment computed by Align.
func (al *Aligner[T]) Result() (Result[T], error) {
	if !al.filled {
		return Result[T]{}, ErrNotAligned
	}
	return al.result, nil
}

// Score returns the score of the alignment computed by Align.
func (al *Aligner[T]) Score() (float64, error) {
	if !al.filled {
		return 0, ErrNotAligned
	}
	return al.result.Score, nil
}

// Identity returns the fraction of aligned columns that are identical
// as per Result.Identity.
func (al *Aligner[T]) Identity() (float64, error) {
	if !al.filled {
		return 0, ErrNotAligned
	}
	return al.result.Identity(), nil
}

// Matrix returns the matrix computed by Align. It must not be modified.
func (al *Aligner[T]) Matrix() (*Matrix, error) {
	if !al.filled {
		return nil, ErrNotAligned
	}
	return al.matrix, nil
}

func (al *Aligner[T]) fill() {
	m := NewMatrix(len(al.a)+1, len(al.b)+1)
	gap := al.scheme.Gap
	al.mode.InitBoundaries(m, gap)
	for i := 1; i <= len(al.a); i++ {
		va := al.a[i-1]
		for j := 1; j <= len(al.b); j++ {
			diag := m.Score(i-1, j-1) + al.scheme.Substitution(va, al.b[j-1])
			up := m.Score(i-1, j) + gap
			left := m.Score(i, j-1) + gap
			score, p := al.mode.Choose(diag, up, left)
			m.Set(i, j, score, p)
		}
	}
	al.matrix = m
}

func (al *Aligner[T]) backtrack() Result[T] {
	m := al.matrix
	ei, ej := al.mode.Endpoint(m)
	var ra, rb []Element[T]
	i, j := ei, ej
done:
	for {
		switch m.Pointer(i, j) {
		case Diag:
			if i == 0 || j == 0 {
				break done
			}
			ra = append(ra, Element[T]{Value: al.a[i-1]})
			rb = append(rb, Element[T]{Value: al.b[j-1]})
			i--
			j--
		case Up:
			if i == 0 {
				break done
			}
			ra = append(ra, Element[T]{Value: al.a[i-1]})
			rb = append(rb, Element[T]{Gap: true})
			i--
		case Left:
			if j == 0 {
				break done
			}
			ra = append(ra, Element[T]{Gap: true})
			rb = append(rb, Element[T]{Value: al.b[j-1]})
			j--
		default:
			break done
		}
	}
	slices.Reverse(ra)
	slices.Reverse(rb)
	return Result[T]{
		A:      ra,
		B:      rb,
		Score:  m.Score(ei, ej),
		StartA: i,
		EndA:   ei,
		StartB: j,
		EndB:   ej,
	}
}
