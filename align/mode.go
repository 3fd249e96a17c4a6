// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"strings"
)

// Mode represents the policy that distinguishes one alignment algorithm
// from another given the shared matrix fill and traceback.
type Mode interface {
	fmt.Stringer

	// InitBoundaries fills in row 0 and column 0 of the matrix.
	InitBoundaries(m *Matrix, gap float64)

	// Choose returns the score and pointer for a cell given the scores
	// obtained by arriving at it diagonally, from above and from the left.
	Choose(diag, up, left float64) (float64, Pointer)

	// Endpoint returns the cell that the traceback starts from.
	Endpoint(m *Matrix) (i, j int)
}

// Best returns the highest of the three scores and the pointer for it.
// Ties are broken in favour of Diag, then Up, then Left, with one
// subtlety: Up is only chosen when it is strictly greater than left, so
// when Diag loses to Left but equals Up, Left is chosen.
func Best(diag, up, left float64) (float64, Pointer) {
	if diag >= up {
		if diag >= left {
			return diag, Diag
		}
		return left, Left
	}
	if up > left {
		return up, Up
	}
	return left, Left
}

// GlobalMode implements Needleman-Wunsch global alignment.
type GlobalMode struct{}

// LocalMode implements Smith-Waterman local alignment.
type LocalMode struct{}

var (
	// Global is the Needleman-Wunsch mode.
	Global Mode = GlobalMode{}
	// Local is the Smith-Waterman mode.
	Local Mode = LocalMode{}
)

// String implements fmt.Stringer.
func (GlobalMode) String() string { return "global" }

// InitBoundaries implements Mode. Each boundary cell is the cumulative
// gap penalty for aligning that prefix entirely against gaps, with its
// pointer leading back towards the origin.
func (GlobalMode) InitBoundaries(m *Matrix, gap float64) {
	rows, cols := m.Dims()
	for i := 1; i < rows; i++ {
		m.Set(i, 0, m.Score(i-1, 0)+gap, Up)
	}
	for j := 1; j < cols; j++ {
		m.Set(0, j, m.Score(0, j-1)+gap, Left)
	}
}

// Choose implements Mode.
func (GlobalMode) Choose(diag, up, left float64) (float64, Pointer) {
	return Best(diag, up, left)
}

// Endpoint implements Mode. It always returns the bottom right cell.
func (GlobalMode) Endpoint(m *Matrix) (int, int) {
	rows, cols := m.Dims()
	return rows - 1, cols - 1
}

// String implements fmt.Stringer.
func (LocalMode) String() string { return "local" }

// InitBoundaries implements Mode. The boundaries are all zero and
// terminate the traceback.
func (LocalMode) InitBoundaries(m *Matrix, _ float64) {
	rows, cols := m.Dims()
	for i := 1; i < rows; i++ {
		m.Set(i, 0, 0, None)
	}
	for j := 1; j < cols; j++ {
		m.Set(0, j, 0, None)
	}
}

// Choose implements Mode. Negative scores are clamped to zero and the
// cell becomes a traceback terminator.
func (LocalMode) Choose(diag, up, left float64) (float64, Pointer) {
	score, p := Best(diag, up, left)
	if score < 0 {
		return 0, None
	}
	return score, p
}

// Endpoint implements Mode. It returns the first cell, in row-major
// order, holding the maximum score, or 0, 0 if no score is positive.
func (LocalMode) Endpoint(m *Matrix) (int, int) {
	rows, cols := m.Dims()
	bi, bj, best := 0, 0, 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if s := m.Score(i, j); s > best {
				bi, bj, best = i, j, s
			}
		}
	}
	return bi, bj
}

// ModeFor returns the Mode with the given name. Global is known as
// global, nw or needleman-wunsch, and Local as local, sw or
// smith-waterman. Names are not case sensitive.
func ModeFor(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "global", "nw", "needleman-wunsch":
		return Global, nil
	case "local", "sw", "smith-waterman":
		return Local, nil
	}
	return nil, fmt.Errorf("unknown alignment mode %q: %w", name, ErrInvalidConfiguration)
}
