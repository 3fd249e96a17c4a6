// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"cloudeng.io/algo/codec"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/seqalign/align"
	"cloudeng.io/seqalign/scoring"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type commands struct {
	out io.Writer
}

// jsonResult is the json representation of an alignment.
type jsonResult struct {
	Mode            string  `json:"mode"`
	Score           float64 `json:"score"`
	Identity        float64 `json:"identity"`
	PercentIdentity float64 `json:"percent_identity"`
	A               string  `json:"a"`
	B               string  `json:"b"`
	StartA          int     `json:"start_a"`
	EndA            int     `json:"end_a"`
	StartB          int     `json:"start_b"`
	EndB            int     `json:"end_b"`
	Matches         int     `json:"matches"`
	Mismatches      int     `json:"mismatches"`
	Gaps            int     `json:"gaps"`
}

func (c *commands) aligner(name string) func(context.Context, any, []string) error {
	return func(ctx context.Context, values any, args []string) error {
		mode, err := align.ModeFor(name)
		if err != nil {
			return err
		}
		return c.align(ctx, mode, values.(*alignFlags), args)
	}
}

func (fl *alignFlags) validate() error {
	errs := &errors.M{}
	errs.Append(flags.OneOf(fl.Items).Validate("runes", "bytes", "words"))
	errs.Append(flags.OneOf(fl.Format).Validate("text", "json"))
	return errs.Err()
}

func readSequences(ctx context.Context, fl *alignFlags, args []string) ([]byte, []byte, error) {
	if !fl.Files {
		return []byte(args[0]), []byte(args[1]), nil
	}
	var seqs [2][]byte
	for i, name := range args[:2] {
		buf, err := os.ReadFile(name)
		if err != nil {
			return nil, nil, err
		}
		seqs[i] = []byte(strings.TrimSpace(string(buf)))
		ctxlog.Debug(ctx, "read sequence", "file", name, "bytes", len(seqs[i]))
	}
	return seqs[0], seqs[1], nil
}

func (c *commands) align(ctx context.Context, mode align.Mode, fl *alignFlags, args []string) error {
	if err := fl.validate(); err != nil {
		return err
	}
	logger, err := fl.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)

	a, b, err := readSequences(ctx, fl, args)
	if err != nil {
		return err
	}
	var cfg *scoring.Config
	if len(fl.Scoring) > 0 {
		parsed, err := scoring.ParseConfigFile(ctx, fl.Scoring)
		if err != nil {
			return fmt.Errorf("failed to read scoring configuration: %v: %w", fl.Scoring, err)
		}
		cfg = &parsed
	}

	switch fl.Items {
	case "bytes":
		dec := codec.NewDecoder(func(in []byte) (byte, int) { return in[0], 1 })
		return alignItems(ctx, c.out, mode, fl, cfg, dec.Decode(a), dec.Decode(b),
			func(v byte) string { return string([]byte{v}) }, "")
	case "words":
		return alignItems(ctx, c.out, mode, fl, cfg, strings.Fields(string(a)), strings.Fields(string(b)),
			func(v string) string { return v }, " ")
	default:
		dec := codec.NewDecoder(utf8.DecodeRune)
		return alignItems(ctx, c.out, mode, fl, cfg, dec.Decode(a), dec.Decode(b),
			func(v rune) string { return string(v) }, "")
	}
}

func schemeFor[T comparable](fl *alignFlags, cfg *scoring.Config, key func(T) string) (scoring.Scheme[T], error) {
	if cfg == nil {
		return scoring.Scheme[T]{Match: fl.Match, Mismatch: fl.Mismatch, Gap: fl.Gap}, nil
	}
	return scoring.NewScheme(*cfg, key)
}

func alignItems[T comparable](ctx context.Context, out io.Writer, mode align.Mode, fl *alignFlags, cfg *scoring.Config, a, b []T, key func(T) string, sep string) error {
	scheme, err := schemeFor(fl, cfg, key)
	if err != nil {
		return err
	}
	ctxlog.Info(ctx, "aligning", "mode", mode.String(), "items", fl.Items, "len_a", len(a), "len_b", len(b), "scheme", scheme.String())
	al, err := align.New(mode, a, b, scheme)
	if err != nil {
		return err
	}
	result, err := al.Align()
	if err != nil {
		return err
	}
	st := result.Stats()
	ctxlog.Info(ctx, "aligned", "mode", mode.String(), "score", result.Score, "length", st.Length, "matches", st.Matches)

	if fl.Format == "json" {
		return json.MarshalWrite(out, jsonResult{
			Mode:            mode.String(),
			Score:           result.Score,
			Identity:        result.Identity(),
			PercentIdentity: result.PercentIdentity(),
			A:               joinElements(result.A, fl.GapGlyph, sep),
			B:               joinElements(result.B, fl.GapGlyph, sep),
			StartA:          result.StartA,
			EndA:            result.EndA,
			StartB:          result.StartB,
			EndB:            result.EndB,
			Matches:         st.Matches,
			Mismatches:      st.Mismatches,
			Gaps:            st.Gaps,
		}, jsontext.WithIndent("  "))
	}

	result.FormatHorizontal(out, fl.GapGlyph)
	fmt.Fprintf(out, "score: %v\n", result.Score)
	fmt.Fprintf(out, "identity: %.2f%% (%d/%d)\n", result.PercentIdentity(), st.Matches, st.Length)
	if mode == align.Local {
		fmt.Fprintf(out, "region: [%d:%d] [%d:%d]\n", result.StartA, result.EndA, result.StartB, result.EndB)
	}
	if fl.ShowMatrix {
		fmt.Fprintln(out)
		return al.FormatMatrix(out)
	}
	return nil
}

func joinElements[T comparable](elems []align.Element[T], gap, sep string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		if e.Gap {
			parts[i] = gap
			continue
		}
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

func (c *commands) presets(_ context.Context, _ any, _ []string) error {
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tmatch\tmismatch\tgap\tdescription")
	for _, p := range scoring.Presets() {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\t%s\n", p.Name, p.Match, p.Mismatch, p.Gap, p.Description)
	}
	return tw.Flush()
}
