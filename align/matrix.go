// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// Pointer records which neighbouring cell a cell's score was derived from.
type Pointer uint8

// Values for Pointer. None marks the origin, and, for local alignment,
// any cell at which a traceback must stop.
const (
	None Pointer = iota
	Diag
	Up
	Left
)

const (
	upArrow       rune = 0x2191 // utf8 up arrow
	leftArrow     rune = 0x2190 // utf8 left arrow
	diagonalArrow rune = 0x2196 // utf8 diagonal arrow
	space         rune = 0x20   // utf8 space
)

// Arrow returns a single rune representation of the pointer.
func (p Pointer) Arrow() rune {
	switch p {
	case Diag:
		return diagonalArrow
	case Up:
		return upArrow
	case Left:
		return leftArrow
	}
	return space
}

// String implements fmt.Stringer.
func (p Pointer) String() string {
	switch p {
	case None:
		return "none"
	case Diag:
		return "diag"
	case Up:
		return "up"
	case Left:
		return "left"
	}
	return "invalid"
}

// Matrix holds the score and traceback pointer for every cell of the
// dynamic programming table. Row i corresponds to the first i items of
// the first sequence and column j to the first j items of the second;
// row and column 0 represent the empty prefix.
type Matrix struct {
	rows, cols int
	scores     []float64
	pointers   []Pointer
}

// NewMatrix returns a matrix with all scores set to zero and all
// pointers set to None.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows:     rows,
		cols:     cols,
		scores:   make([]float64, rows*cols),
		pointers: make([]Pointer, rows*cols),
	}
}

// Dims returns the number of rows and columns in the matrix.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Score returns the score stored at cell i, j.
func (m *Matrix) Score(i, j int) float64 {
	return m.scores[i*m.cols+j]
}

// Pointer returns the pointer stored at cell i, j.
func (m *Matrix) Pointer(i, j int) Pointer {
	return m.pointers[i*m.cols+j]
}

// Set stores score and pointer at cell i, j.
func (m *Matrix) Set(i, j int, score float64, p Pointer) {
	idx := i*m.cols + j
	m.scores[idx] = score
	m.pointers[idx] = p
}
