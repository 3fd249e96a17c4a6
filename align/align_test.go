// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align_test

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/seqalign/align"
	"cloudeng.io/seqalign/scoring"
)

func ExampleNewNeedlemanWunsch() {
	al, err := align.NewNeedlemanWunsch([]rune("GATTACA"), []rune("GCATGCU"), scoring.Default[rune]())
	if err != nil {
		panic(err)
	}
	result, err := al.Align()
	if err != nil {
		panic(err)
	}
	fmt.Println(result)
	fmt.Println(result.Score, result.Identity())
	// Output:
	// G-ATTACA
	// GCA-TGCU
	// 0 0.5
}

func ExampleNewSmithWaterman() {
	scheme := scoring.Scheme[rune]{Match: 2, Mismatch: -1, Gap: -2}
	al, err := align.NewSmithWaterman([]rune("ACACACTA"), []rune("AGCACACA"), scheme)
	if err != nil {
		panic(err)
	}
	result, err := al.Align()
	if err != nil {
		panic(err)
	}
	fmt.Println(result)
	fmt.Println(result.Score, result.StartA, result.EndA, result.StartB, result.EndB)
	// Output:
	// ACACA
	// ACACA
	// 10 0 5 3 8
}

func mustAlign[T comparable](t *testing.T, mode align.Mode, a, b []T, scheme scoring.Scheme[T]) (*align.Aligner[T], align.Result[T]) {
	al, err := align.New(mode, a, b, scheme)
	if err != nil {
		t.Fatalf("%v: %v", errors.FileLocation(2, 2), err)
	}
	result, err := al.Align()
	if err != nil {
		t.Fatalf("%v: %v", errors.FileLocation(2, 2), err)
	}
	return al, result
}

func ptrFor(c byte) align.Pointer {
	switch c {
	case 'D':
		return align.Diag
	case 'U':
		return align.Up
	case 'L':
		return align.Left
	}
	return align.None
}

func TestGlobalTextbook(t *testing.T) {
	al, result := mustAlign(t, align.Global, []rune("GATTACA"), []rune("GCATGCU"), scoring.Default[rune]())

	// Hand computed, rows are GATTACA and columns GCATGCU.
	scores := [][]float64{
		{0, -1, -2, -3, -4, -5, -6, -7},
		{-1, 1, 0, -1, -2, -3, -4, -5},
		{-2, 0, 0, 1, 0, -1, -2, -3},
		{-3, -1, -1, 0, 2, 1, 0, -1},
		{-4, -2, -2, -1, 1, 1, 0, -1},
		{-5, -3, -3, -1, 0, 0, 0, -1},
		{-6, -4, -2, -2, -1, -1, 1, 0},
		{-7, -5, -3, -1, -2, -2, 0, 0},
	}
	pointers := []string{
		"NLLLLLLL",
		"UDLLLDLL",
		"UUDDLLLL",
		"UUDUDLLL",
		"UUDUDDDD",
		"UUDDUDDD",
		"UUDUUDDL",
		"UUUDLDUD",
	}
	m, err := al.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := m.Dims()
	if got, want := rows, 8; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := cols, 8; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range rows {
		for j := range cols {
			if got, want := m.Score(i, j), scores[i][j]; got != want {
				t.Errorf("score %v, %v: got %v, want %v", i, j, got, want)
			}
			if got, want := m.Pointer(i, j), ptrFor(pointers[i][j]); got != want {
				t.Errorf("pointer %v, %v: got %v, want %v", i, j, got, want)
			}
		}
	}

	if got, want := result.String(), "G-ATTACA\nGCA-TGCU"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := result.Score, 0.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	score, err := al.Score()
	if err != nil || score != 0 {
		t.Errorf("got %v, %v", score, err)
	}
	identity, err := al.Identity()
	if err != nil || identity != 0.5 {
		t.Errorf("got %v, %v", identity, err)
	}
	if got, want := result.Stats(), (align.Stats{Length: 8, Matches: 4, Mismatches: 2, Gaps: 2}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLocal(t *testing.T) {
	for i, tc := range []struct {
		a, b                       string
		scheme                     scoring.Scheme[rune]
		ra, rb                     string
		score                      float64
		startA, endA, startB, endB int
	}{
		{"ACACACTA", "AGCACACA", scoring.Scheme[rune]{Match: 2, Mismatch: -1, Gap: -2},
			"ACACA", "ACACA", 10, 0, 5, 3, 8},
		{"GATTACA", "GCATGCU", scoring.Default[rune](),
			"G-AT", "GCAT", 2, 0, 3, 0, 4},
		{"TGTTACGG", "GGTTGACTA", scoring.Scheme[rune]{Match: 3, Mismatch: -3, Gap: -2},
			"GTT-AC", "GTTGAC", 13, 1, 6, 1, 7},
		{"kitten", "sitting", scoring.Scheme[rune]{Match: 2, Mismatch: -1, Gap: -1},
			"itten", "ittin", 7, 1, 6, 1, 6},
		{"ACGT", "ACGT", scoring.Default[rune](),
			"ACGT", "ACGT", 4, 0, 4, 0, 4},
	} {
		_, result := mustAlign(t, align.Local, []rune(tc.a), []rune(tc.b), tc.scheme)
		if got, want := result.String(), tc.ra+"\n"+tc.rb; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := result.Score, tc.score; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := []int{result.StartA, result.EndA, result.StartB, result.EndB},
			[]int{tc.startA, tc.endA, tc.startB, tc.endB}; !reflect.DeepEqual(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestLocalClamp(t *testing.T) {
	al, result := mustAlign(t, align.Local, []rune("ACGT"), []rune("ACGT"), scoring.Default[rune]())
	m, _ := al.Matrix()
	rows, cols := m.Dims()
	for i := range rows {
		for j := range cols {
			if m.Score(i, j) < 0 {
				t.Errorf("%v, %v: negative score %v", i, j, m.Score(i, j))
			}
		}
	}
	// Cell 3, 1 (G vs A) would be -1 and is clamped.
	if got, want := m.Score(3, 1), 0.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := m.Pointer(3, 1), align.None; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := result.Len(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLocalAllNegative(t *testing.T) {
	for i, scheme := range []scoring.Scheme[rune]{
		{Match: -1, Mismatch: -1, Gap: -1},
		scoring.Default[rune](),
	} {
		_, result := mustAlign(t, align.Local, []rune("ABC"), []rune("XYZ"), scheme)
		if got, want := result.Len(), 0; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := result.Score, 0.0; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := result.Identity(), 0.0; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := result.String(), "\n"; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}
}

func TestTieBreak(t *testing.T) {
	for i, tc := range []struct {
		diag, up, left float64
		score          float64
		ptr            align.Pointer
	}{
		{0, 0, 0, 0, align.Diag},
		{1, 1, 0, 1, align.Diag},
		{1, 0, 1, 1, align.Diag},
		{1, 1, 2, 2, align.Left},
		{0, 1, 1, 1, align.Left},
		{0, 2, 1, 2, align.Up},
		{0, 1, 2, 2, align.Left},
	} {
		score, ptr := align.Best(tc.diag, tc.up, tc.left)
		if got, want := score, tc.score; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := ptr, tc.ptr; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	// With match == mismatch == gap every interior cell ties and the
	// diagonal must win.
	for _, v := range []float64{0, -1} {
		al, result := mustAlign(t, align.Global, []rune("AC"), []rune("AB"),
			scoring.Scheme[rune]{Match: v, Mismatch: v, Gap: v})
		m, _ := al.Matrix()
		for i := 1; i <= 2; i++ {
			for j := 1; j <= 2; j++ {
				if got, want := m.Pointer(i, j), align.Diag; got != want {
					t.Errorf("%v: %v, %v: got %v, want %v", v, i, j, got, want)
				}
			}
		}
		if got, want := result.String(), "AC\nAB"; got != want {
			t.Errorf("%v: got %v, want %v", v, got, want)
		}
	}

	// Positive gaps favour Left whenever diag loses.
	_, result := mustAlign(t, align.Global, []rune("AC"), []rune("AB"),
		scoring.Scheme[rune]{Match: 1, Mismatch: 1, Gap: 1})
	if got, want := result.String(), "AC--\n--AB"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := result.Score, 4.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmpty(t *testing.T) {
	gap2 := scoring.Scheme[rune]{Match: 1, Mismatch: -1, Gap: -2}
	for i, tc := range []struct {
		mode   align.Mode
		a, b   string
		scheme scoring.Scheme[rune]
		result string
		score  float64
	}{
		{align.Global, "", "ABC", gap2, "---\nABC", -6},
		{align.Global, "A", "", scoring.Default[rune](), "A\n-", -1},
		{align.Global, "", "", scoring.Default[rune](), "\n", 0},
		{align.Local, "", "ABC", gap2, "\n", 0},
		{align.Local, "ABC", "", gap2, "\n", 0},
	} {
		_, result := mustAlign(t, tc.mode, []rune(tc.a), []rune(tc.b), tc.scheme)
		if got, want := result.String(), tc.result; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
		if got, want := result.Score, tc.score; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	// nil slices are empty sequences.
	_, result := mustAlign[byte](t, align.Global, nil, []byte("AB"), scoring.Default[byte]())
	if got, want := result.String(), "--\nAB"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPresets(t *testing.T) {
	edit, _ := scoring.LookupPreset("edit")
	lcs, _ := scoring.LookupPreset("lcs")
	_, result := mustAlign(t, align.Global, []rune("kitten"), []rune("sitting"), scoring.PresetScheme[rune](edit))
	if got, want := result.Score, -3.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, result = mustAlign(t, align.Global, []rune("kitten"), []rune("sitting"), scoring.PresetScheme[rune](lcs))
	if got, want := result.Score, 4.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSimilarity(t *testing.T) {
	caseless := scoring.FromSimilarity(func(a, b string) float64 {
		if strings.EqualFold(a, b) {
			return 2
		}
		return -1
	}, -1)
	a := strings.Fields("The quick brown fox jumps")
	b := strings.Fields("the QUICK red fox jumps")
	_, result := mustAlign(t, align.Global, a, b, caseless)
	if got, want := result.Score, 7.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Identity uses item equality, not the similarity function.
	if got, want := result.Stats(), (align.Stats{Length: 5, Matches: 2, Mismatches: 3}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := result.Identity(), 0.4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIdentity(t *testing.T) {
	_, result := mustAlign(t, align.Global, []rune("AAB"), []rune("AB"), scoring.Default[rune]())
	if got, want := result.String(), "AAB\n-AB"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := result.Identity(), 2.0/3.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := result.PercentIdentity(), 66.67; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestErrors(t *testing.T) {
	var al align.Aligner[rune]
	if _, err := al.Align(); !errors.Is(err, align.ErrNotConfigured) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	nw, err := align.NewNeedlemanWunsch([]rune("A"), []rune("B"), scoring.Default[rune]())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := nw.Score(); !errors.Is(err, align.ErrNotAligned) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := nw.Identity(); !errors.Is(err, align.ErrNotAligned) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := nw.Result(); !errors.Is(err, align.ErrNotAligned) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := nw.Matrix(); !errors.Is(err, align.ErrNotAligned) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := nw.FormatMatrix(&strings.Builder{}); !errors.Is(err, align.ErrNotAligned) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	if _, err := align.New(nil, []rune("A"), []rune("B"), scoring.Default[rune]()); !errors.Is(err, align.ErrInvalidConfiguration) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	_, err = align.NewSmithWaterman([]rune("A"), []rune("B"), scoring.Scheme[rune]{Gap: math.NaN()})
	if !errors.Is(err, align.ErrInvalidConfiguration) || !errors.Is(err, scoring.ErrInvalidScheme) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestModeFor(t *testing.T) {
	for _, tc := range []struct {
		name string
		mode align.Mode
	}{
		{"global", align.Global},
		{"NW", align.Global},
		{"Needleman-Wunsch", align.Global},
		{"local", align.Local},
		{"sw", align.Local},
		{"smith-waterman", align.Local},
	} {
		mode, err := align.ModeFor(tc.name)
		if err != nil {
			t.Errorf("%v: %v", tc.name, err)
			continue
		}
		if got, want := mode, tc.mode; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}
	if _, err := align.ModeFor("semi-global"); !errors.Is(err, align.ErrInvalidConfiguration) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := align.Global.String()+","+align.Local.String(), "global,local"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAccessors(t *testing.T) {
	scheme := scoring.Scheme[rune]{Match: 5, Mismatch: -4, Gap: -3}
	al, err := align.NewSmithWaterman([]rune("A"), []rune("A"), scheme)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := al.Mode(), align.Local; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := al.Scheme().String(), scheme.String(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
