// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type column struct {
	a, b   string
	marker string
	width  int
}

// text returns the display form of an item; bytes and runes are displayed
// as characters rather than as integers.
func text(v any) string {
	switch tv := v.(type) {
	case rune:
		return string(tv)
	case byte:
		return fmt.Sprintf("%c", tv)
	case string:
		return tv
	}
	return fmt.Sprint(v)
}

func render[T comparable](e Element[T], gap string) string {
	if e.Gap {
		return gap
	}
	return text(e.Value)
}

// columns returns the displayable columns of the alignment and the
// separator to use between them; strings, and items wider than a single
// rune, are separated by a space.
func (r Result[T]) columns(gap string) ([]column, string) {
	cols := make([]column, len(r.A))
	sep := ""
	var zero T
	if _, ok := any(zero).(string); ok {
		sep = " "
	}
	for i, a := range r.A {
		b := r.B[i]
		c := column{a: render(a, gap), b: render(b, gap)}
		switch {
		case a.Gap || b.Gap:
			c.marker = " "
		case a.Value == b.Value:
			c.marker = "|"
		default:
			c.marker = "."
		}
		c.width = max(utf8.RuneCountInString(c.a), utf8.RuneCountInString(c.b), 1)
		if c.width > 1 {
			sep = " "
		}
		cols[i] = c
	}
	return cols, sep
}

func padRight(out *strings.Builder, s string, width int) {
	out.WriteString(s)
	out.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(s)))
}

func padCentre(out *strings.Builder, s string, width int) {
	total := width - utf8.RuneCountInString(s)
	pre := total / 2
	out.WriteString(strings.Repeat(" ", pre))
	out.WriteString(s)
	out.WriteString(strings.Repeat(" ", total-pre))
}

func (r Result[T]) lines(gap string, markers bool) []string {
	cols, sep := r.columns(gap)
	var top, middle, bottom strings.Builder
	for i, c := range cols {
		if i > 0 {
			top.WriteString(sep)
			middle.WriteString(sep)
			bottom.WriteString(sep)
		}
		padRight(&top, c.a, c.width)
		padCentre(&middle, c.marker, c.width)
		padRight(&bottom, c.b, c.width)
	}
	trim := func(s string) string { return strings.TrimRight(s, " ") }
	if markers {
		return []string{trim(top.String()), trim(middle.String()), trim(bottom.String())}
	}
	return []string{trim(top.String()), trim(bottom.String())}
}

// String implements fmt.Stringer. It returns the two aligned sequences
// on separate lines with gaps displayed as "-".
func (r Result[T]) String() string {
	return strings.Join(r.lines("-", false), "\n")
}

// Summary returns a multi-line description of the alignment that
// includes the aligned sequences, the score and the percent identity.
func (r Result[T]) Summary() string {
	l := r.lines("-", false)
	st := r.Stats()
	return fmt.Sprintf("Alignment of SEQUENCE 1 and SEQUENCE 2:\n\t%s\n\t%s\nScore: %v\nIdentity: %.2f%% (%d/%d)\n",
		l[0], l[1], r.Score, r.PercentIdentity(), st.Matches, st.Length)
}

// FormatHorizontal writes the alignment across three lines with the
// first sequence on the top line, the second on the bottom line and a
// middle line that marks identical items with | and mismatches with a
// period, eg:
//
//	G-ATTACA
//	| | |.|.
//	GCA-TGCU
//
// Gaps are displayed using the supplied string.
func (r Result[T]) FormatHorizontal(out io.Writer, gap string) {
	for _, l := range r.lines(gap, true) {
		_, _ = io.WriteString(out, l)
		_, _ = io.WriteString(out, "\n")
	}
}

// FormatMatrix writes the score matrix, annotated with the traceback
// pointer for each cell, to out. It is intended for debugging.
func (al *Aligner[T]) FormatMatrix(out io.Writer) error {
	if !al.filled {
		return ErrNotAligned
	}
	m := al.matrix
	rows, cols := m.Dims()
	var sb strings.Builder
	sb.WriteString("    ")
	for j := 0; j < cols; j++ {
		label := ""
		if j > 0 {
			label = text(al.b[j-1])
		}
		fmt.Fprintf(&sb, "%7s", label)
	}
	if _, err := io.WriteString(out, strings.TrimRight(sb.String(), " ")+"\n"); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		sb.Reset()
		label := ""
		if i > 0 {
			label = text(al.a[i-1])
		}
		fmt.Fprintf(&sb, "%4s", label)
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "%6v%c", m.Score(i, j), m.Pointer(i, j).Arrow())
		}
		if _, err := io.WriteString(out, strings.TrimRight(sb.String(), " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
