// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command seqalign computes global (Needleman-Wunsch) and local
// (Smith-Waterman) alignments of pairs of sequences supplied on the
// command line or in files.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

type alignFlags struct {
	cmdutil.LoggingFlags
	Match      float64 `subcmd:"match,1,'score for a pair of identical items'"`
	Mismatch   float64 `subcmd:"mismatch,-1,'score for a pair of differing items'"`
	Gap        float64 `subcmd:"gap,-1,'score for aligning an item against a gap'"`
	Scoring    string  `subcmd:"scoring,,'yaml file containing a scoring configuration, if set --match, --mismatch and --gap are ignored'"`
	Items      string  `subcmd:"items,runes,'how sequences are split into items: runes, bytes or words'"`
	Format     string  `subcmd:"format,text,'output format: text or json'"`
	GapGlyph   string  `subcmd:"gap-glyph,-,'string used to display gaps'"`
	ShowMatrix bool    `subcmd:"show-matrix,false,'display the score matrix, text format only'"`
	Files      bool    `subcmd:"files,false,'read each sequence from the named file'"`
}

type presetFlags struct{}

func init() {
	cmds := &commands{out: os.Stdout}

	globalCmd := subcmd.NewCommand("global",
		subcmd.MustRegisterFlagStruct(&alignFlags{}, nil, nil),
		cmds.aligner("global"), subcmd.ExactlyNumArguments(2))
	globalCmd.Document(`compute the optimal global alignment of two sequences using Needleman-Wunsch.`, "<seq1> <seq2>")

	localCmd := subcmd.NewCommand("local",
		subcmd.MustRegisterFlagStruct(&alignFlags{}, nil, nil),
		cmds.aligner("local"), subcmd.ExactlyNumArguments(2))
	localCmd.Document(`compute the optimal local alignment of two sequences using Smith-Waterman.`, "<seq1> <seq2>")

	presetsCmd := subcmd.NewCommand("presets",
		subcmd.MustRegisterFlagStruct(&presetFlags{}, nil, nil),
		cmds.presets, subcmd.WithoutArguments())
	presetsCmd.Document(`list the available scoring presets.`)

	cmdSet = subcmd.NewCommandSet(globalCmd, localCmd, presetsCmd)
	cmdSet.Document(`align pairs of sequences.

Sequences are split into runes by default, or into bytes or whitespace
separated words via --items. Scoring is specified either with the
--match, --mismatch and --gap flags or with a yaml file via --scoring:

  preset: edit
  gap: -2
  symmetric: true
  pairs:
    - {a: A, b: G, score: 0.5}
    - [C, T, 0.5]

The available presets are listed by the presets command.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
