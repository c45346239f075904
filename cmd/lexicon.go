package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/hexcast/internal/hexagram"
	"github.com/papapumpkin/hexcast/internal/lexicon"
	"github.com/papapumpkin/hexcast/internal/logging"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect and validate lexicon files",
}

var lexiconValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check that a lexicon holds 64 complete hexagram records",
	Long: `Validate loads a lexicon and reports every data problem found.

Without a path, the configured lexicon is checked.
With --watch (-w), the file is re-validated each time it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLexiconValidate,
}

var lexiconShowCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Print the text for one hexagram",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconShow,
}

func init() {
	lexiconValidateCmd.Flags().BoolP("watch", "w", false, "re-validate whenever the file changes")
	lexiconCmd.AddCommand(lexiconValidateCmd)
	lexiconCmd.AddCommand(lexiconShowCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func lexiconPath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	if cfg.LexiconPath == "" {
		return "", errors.New("no lexicon given: pass a path or set --lexicon")
	}
	return cfg.LexiconPath, nil
}

func runLexiconValidate(cmd *cobra.Command, args []string) error {
	path, err := lexiconPath(cmd, args)
	if err != nil {
		return err
	}
	watch, _ := cmd.Flags().GetBool("watch")

	lex, err := lexicon.Load(path)
	ok := reportValidation(cmd.ErrOrStderr(), path, lex, err)
	if !watch {
		if !ok {
			return fmt.Errorf("lexicon %s is invalid", path)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchLexicon(ctx, cmd.ErrOrStderr(), path)
}

func watchLexicon(ctx context.Context, w io.Writer, path string) error {
	logger := logging.New("lexicon")

	fmt.Fprintf(w, "watching %s (Ctrl-C to stop)\n", path)
	err := lexicon.Watch(ctx, path, func(lex *lexicon.Lexicon, err error) {
		logger.Debug("lexicon reloaded", "path", path, "ok", err == nil)
		reportValidation(w, path, lex, err)
	})
	if err != nil {
		return fmt.Errorf("lexicon: watch %s: %w", path, err)
	}
	return nil
}

// reportValidation prints a one-line verdict plus any validation details and
// reports whether the lexicon is usable.
func reportValidation(w io.Writer, path string, lex *lexicon.Lexicon, err error) bool {
	if err == nil {
		fmt.Fprintf(w, "✓ lexicon %q: %d hexagrams\n", path, lex.Len())
		return true
	}

	switch {
	case errors.Is(err, lexicon.ErrRead):
		fmt.Fprintf(w, "✗ lexicon %q: cannot read: %v\n", path, err)
	case errors.Is(err, lexicon.ErrParse):
		fmt.Fprintf(w, "✗ lexicon %q: malformed: %v\n", path, err)
	default:
		fmt.Fprintf(w, "✗ lexicon %q: invalid data\n", path)
		verrs := lexicon.ValidationErrors(err)
		for _, ve := range verrs {
			fmt.Fprintf(w, "  [%s] %v\n", ve.Category, ve)
		}
		if len(verrs) == 0 {
			fmt.Fprintf(w, "  %v\n", err)
		}
	}
	return false
}

func runLexiconShow(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("hexagram number: %w", err)
	}
	h, err := hexagram.FromNumber(n)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	var lex *lexicon.Lexicon
	if cfg.LexiconPath != "" {
		if lex, err = lexicon.Load(cfg.LexiconPath); err != nil {
			return fmt.Errorf("failed to load lexicon: %w", err)
		}
	}
	return showEntry(cmd.OutOrStdout(), h, lex)
}

func showEntry(w io.Writer, h hexagram.Hexagram, lex *lexicon.Lexicon) error {
	e, annotated := lex.Lookup(h.Number())
	name := h.Name()
	if annotated && e.Name != "" {
		name = e.Name
	}

	fmt.Fprintf(w, "Hexagram %d: %s\n", h.Number(), name)
	fmt.Fprint(w, h.String())
	fmt.Fprintln(w, h.Trigrams())
	if !annotated {
		return nil
	}

	if e.Judgement != "" {
		fmt.Fprintf(w, "\nJudgement\n%s\n", e.Judgement)
	}
	if e.Image != "" {
		fmt.Fprintf(w, "\nImage\n%s\n", e.Image)
	}
	fmt.Fprintln(w, "\nLines")
	for pos := 1; pos <= hexagram.LineCount; pos++ {
		_, err := fmt.Fprintf(w, "  %d: %s\n", pos, e.Line(pos))
		if err != nil {
			return err
		}
	}
	return nil
}
