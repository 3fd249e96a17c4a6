// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "math"

// Element is a single position in an aligned sequence: either an item
// from the original sequence or a gap.
type Element[T comparable] struct {
	Value T
	Gap   bool
}

// String implements fmt.Stringer. Gaps are displayed as "-".
func (e Element[T]) String() string {
	return render(e, "-")
}

// Result represents a computed alignment. A and B always have the same
// length; the items of the first sequence that are covered by the
// alignment are a[StartA:EndA], and similarly for the second.
type Result[T comparable] struct {
	A, B  []Element[T]
	Score float64

	StartA, EndA int
	StartB, EndB int
}

// Stats represents the composition of the columns of an alignment.
type Stats struct {
	Length     int
	Matches    int
	Mismatches int
	Gaps       int
}

// Len returns the number of aligned columns.
func (r Result[T]) Len() int {
	return len(r.A)
}

// Stats returns the number of matching, mismatching and gapped columns.
func (r Result[T]) Stats() Stats {
	st := Stats{Length: len(r.A)}
	for i, a := range r.A {
		b := r.B[i]
		switch {
		case a.Gap || b.Gap:
			st.Gaps++
		case a.Value == b.Value:
			st.Matches++
		default:
			st.Mismatches++
		}
	}
	return st
}

// Identity returns the fraction of columns in which both items are
// present and equal. It returns 0 for an empty alignment.
func (r Result[T]) Identity() float64 {
	st := r.Stats()
	if st.Length == 0 {
		return 0
	}
	return float64(st.Matches) / float64(st.Length)
}

// PercentIdentity returns Identity as a percentage rounded to two
// decimal places.
func (r Result[T]) PercentIdentity() float64 {
	return math.Round(r.Identity()*10000) / 100
}

func ungapped[T comparable](elems []Element[T]) []T {
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		if !e.Gap {
			out = append(out, e.Value)
		}
	}
	return out
}

// SequenceA returns the items of the first aligned sequence with gaps
// removed.
func (r Result[T]) SequenceA() []T {
	return ungapped(r.A)
}

// SequenceB returns the items of the second aligned sequence with gaps
// removed.
func (r Result[T]) SequenceB() []T {
	return ungapped(r.B)
}
