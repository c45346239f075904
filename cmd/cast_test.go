package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/hexcast/internal/config"
	"github.com/papapumpkin/hexcast/internal/hexagram"
	"github.com/papapumpkin/hexcast/internal/lexicon/lexicontest"
)

func TestParseLines(t *testing.T) {
	t.Parallel()

	got, err := parseLines("8, 9,7,6,8 ,7")
	if err != nil {
		t.Fatalf("parseLines: %v", err)
	}
	want := [hexagram.LineCount]hexagram.LineState{
		hexagram.StaticYin, hexagram.ChangingYang, hexagram.StaticYang,
		hexagram.ChangingYin, hexagram.StaticYin, hexagram.StaticYang,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseLines (-want +got):\n%s", diff)
	}

	bad := []string{"7,7,7,7,7", "7,7,7,7,7,7,7", "7,7,x,7,7,7", "7,7,5,7,7,7"}
	for _, spec := range bad {
		if _, err := parseLines(spec); err == nil {
			t.Errorf("parseLines(%q) succeeded, want error", spec)
		}
	}
	if _, err := parseLines("7,7,10,7,7,7"); !errors.Is(err, hexagram.ErrInvalidLine) {
		t.Errorf("out-of-range sum err = %v, want ErrInvalidLine", err)
	}
}

func mixedLines(t *testing.T) *[hexagram.LineCount]hexagram.LineState {
	t.Helper()
	lines, err := parseLines("8,9,7,6,8,7")
	if err != nil {
		t.Fatal(err)
	}
	return &lines
}

func TestCast_ManualLinesText(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	opts := castOptions{Format: config.FormatText, Lines: mixedLines(t)}
	if err := cast(opts, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("cast: %v", err)
	}
	s := out.String()
	for _, want := range []string{"Hexagram 18:", "Mountain over Wind", "Changing lines: 2, 4", "Becomes hexagram 56:"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
}

func TestCast_PromptWaitsForInput(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	seed := uint64(99)
	opts := castOptions{Format: config.FormatText, Prompt: true, Seed: &seed}
	if err := cast(opts, strings.NewReader("\n"), &out, &errOut); err != nil {
		t.Fatalf("cast: %v", err)
	}
	if !strings.Contains(errOut.String(), promptText) {
		t.Errorf("prompt not shown: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "seed: 99") {
		t.Errorf("seed not reported: %q", errOut.String())
	}
	if !strings.HasPrefix(out.String(), "Hexagram ") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestCast_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	run := func() string {
		var out, errOut bytes.Buffer
		seed := uint64(2026)
		opts := castOptions{Format: config.FormatJSON, Seed: &seed}
		if err := cast(opts, strings.NewReader(""), &out, &errOut); err != nil {
			t.Fatalf("cast: %v", err)
		}
		return out.String()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("seeded castings differ:\n%s\n%s", a, b)
	}
}

func TestCast_JSONWithLexicon(t *testing.T) {
	t.Parallel()

	path := lexicontest.WriteFile(t, t.TempDir(), "lex.toml", lexicontest.Document())

	var out, errOut bytes.Buffer
	opts := castOptions{Format: config.FormatJSON, Lexicon: path, Lines: mixedLines(t)}
	if err := cast(opts, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("cast: %v", err)
	}

	var got struct {
		Present struct {
			Number     int               `json:"number"`
			Judgement  string            `json:"judgement"`
			Commentary map[string]string `json:"commentary"`
		} `json:"present"`
		Future *struct {
			Number int `json:"number"`
		} `json:"future"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if got.Present.Number != 18 || got.Present.Judgement != "J18" {
		t.Errorf("present = %+v", got.Present)
	}
	if diff := cmp.Diff(map[string]string{"2": "L18.2", "4": "L18.4"}, got.Present.Commentary); diff != "" {
		t.Errorf("commentary (-want +got):\n%s", diff)
	}
	if got.Future == nil || got.Future.Number != 56 {
		t.Errorf("future = %+v", got.Future)
	}
}

func TestCast_BadLexiconFails(t *testing.T) {
	t.Parallel()

	doc := lexicontest.Document()
	doc.Hexagrams = doc.Hexagrams[:63]
	path := lexicontest.WriteFile(t, t.TempDir(), "lex.json", doc)

	var out, errOut bytes.Buffer
	opts := castOptions{Format: config.FormatText, Lexicon: path, Lines: mixedLines(t)}
	err := cast(opts, strings.NewReader(""), &out, &errOut)
	if err == nil {
		t.Fatal("cast succeeded with invalid lexicon")
	}
	if out.Len() != 0 {
		t.Errorf("no report should be written on failure, got:\n%s", out.String())
	}
}

func TestRootCommand_CastLines(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"cast", "--lines", "7,7,7,8,8,8", "--no-color"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v\n%s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "Hexagram 11: Peace") || !strings.Contains(out.String(), "Unchanging.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestCastFlags_SeedSourcesAreExclusive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "seed only", args: []string{"--seed", "1"}},
		{name: "lines only", args: []string{"--lines", "7,7,7,8,8,8"}},
		{name: "random seed only", args: []string{"--random-seed"}},
		{name: "seed and lines", args: []string{"--seed", "1", "--lines", "7,7,7,8,8,8"}, wantErr: true},
		{name: "random seed and lines", args: []string{"--random-seed", "--lines", "7,7,7,8,8,8"}, wantErr: true},
		{name: "seed and random seed", args: []string{"--seed", "1", "--random-seed"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ran := false
			c := &cobra.Command{
				Use:           "cast",
				SilenceUsage:  true,
				SilenceErrors: true,
				RunE: func(*cobra.Command, []string) error {
					ran = true
					return nil
				},
			}
			addCastFlags(c)
			c.SetArgs(tt.args)
			c.SetOut(&bytes.Buffer{})
			c.SetErr(&bytes.Buffer{})

			err := c.Execute()
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "none of the others can be") {
					t.Errorf("Execute() error = %v, want mutually exclusive flag error", err)
				}
				if ran {
					t.Error("command ran despite conflicting flags")
				}
				return
			}
			if err != nil {
				t.Errorf("Execute() error = %v", err)
			}
		})
	}
}
