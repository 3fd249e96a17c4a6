// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package align provides optimal pairwise alignment of two sequences of
// comparable items using dynamic programming. Two modes are supported:
// global alignment (Needleman-Wunsch), where both sequences are aligned
// end to end, and local alignment (Smith-Waterman), where only the highest
// scoring contiguous region is returned.
//
// Both modes share a single implementation for filling the score and
// traceback matrix and for backtracking through it. They differ only in
// how the matrix boundaries are initialized, how the score for each cell
// is chosen and where the traceback starts; these are captured by the
// Mode interface.
//
//	al, err := align.NewNeedlemanWunsch([]rune("GATTACA"), []rune("GCATGCU"), scoring.Default[rune]())
//	...
//	result, err := al.Align()
//	fmt.Println(result)
//
// Memory and time are both O(m*n) for sequences of length m and n.
package align
