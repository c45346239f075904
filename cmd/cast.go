package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/hexcast/internal/coin"
	"github.com/papapumpkin/hexcast/internal/config"
	"github.com/papapumpkin/hexcast/internal/divination"
	"github.com/papapumpkin/hexcast/internal/hexagram"
	"github.com/papapumpkin/hexcast/internal/lexicon"
	"github.com/papapumpkin/hexcast/internal/logging"
	"github.com/papapumpkin/hexcast/internal/render"
)

const promptText = "Think deeply on your question and press Enter when ready..."

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Cast a hexagram",
	Long: `Cast tosses three coins per line, six lines bottom to top.

Use --seed for a reproducible casting, or --lines to enter the sums of coins
you tossed yourself (bottom line first, each 6, 7, 8 or 9).`,
	Args: cobra.NoArgs,
	RunE: runCast,
}

func init() {
	addCastFlags(castCmd)
	rootCmd.AddCommand(castCmd)
}

func addCastFlags(c *cobra.Command) {
	c.Flags().Uint64("seed", 0, "seed for a reproducible casting")
	c.Flags().Bool("random-seed", false, "pick a seed, print it, and cast with it")
	c.Flags().String("lines", "", "comma-separated coin sums, bottom line first (e.g. 8,9,7,6,8,7)")
	c.Flags().Bool("no-prompt", false, "cast immediately without waiting for Enter")
	c.Flags().StringP("format", "f", "", "output format: text or json")
	c.MarkFlagsMutuallyExclusive("seed", "random-seed", "lines")
}

// castOptions is the resolved input to a single casting.
type castOptions struct {
	Prompt  bool
	Format  string
	Color   bool
	Lexicon string
	Seed    *uint64
	Lines   *[hexagram.LineCount]hexagram.LineState
}

func runCast(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := castOptionsFrom(cmd, cfg)
	if err != nil {
		return err
	}
	return cast(opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func castOptionsFrom(cmd *cobra.Command, cfg config.Config) (castOptions, error) {
	flags := cmd.Flags()
	opts := castOptions{
		Prompt:  cfg.Prompt,
		Format:  cfg.Format,
		Color:   cfg.Color,
		Lexicon: cfg.LexiconPath,
	}

	if noPrompt, _ := flags.GetBool("no-prompt"); noPrompt {
		opts.Prompt = false
	}
	if f, _ := flags.GetString("format"); f != "" {
		opts.Format = strings.ToLower(f)
	}
	if opts.Format != config.FormatText && opts.Format != config.FormatJSON {
		return castOptions{}, fmt.Errorf("%w: format %q (want text or json)", config.ErrInvalidConfig, opts.Format)
	}

	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		opts.Seed = &seed
	} else if random, _ := flags.GetBool("random-seed"); random {
		seed, err := coin.NewSeed()
		if err != nil {
			return castOptions{}, err
		}
		opts.Seed = &seed
	}

	if spec, _ := flags.GetString("lines"); spec != "" {
		lines, err := parseLines(spec)
		if err != nil {
			return castOptions{}, err
		}
		opts.Lines = &lines
		opts.Prompt = false
	}
	return opts, nil
}

// parseLines reads six comma-separated coin sums, bottom line first.
func parseLines(spec string) ([hexagram.LineCount]hexagram.LineState, error) {
	var lines [hexagram.LineCount]hexagram.LineState
	fields := strings.Split(spec, ",")
	if len(fields) != hexagram.LineCount {
		return lines, fmt.Errorf("--lines: want %d values, got %d", hexagram.LineCount, len(fields))
	}
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return lines, fmt.Errorf("--lines: line %d: %w", i+1, err)
		}
		l, err := hexagram.ParseLineState(n)
		if err != nil {
			return lines, fmt.Errorf("--lines: line %d: %w", i+1, err)
		}
		lines[i] = l
	}
	return lines, nil
}

func cast(opts castOptions, in io.Reader, out, errOut io.Writer) error {
	logger := logging.WithCast(logging.New("cast"), uuid.NewString())

	var lex *lexicon.Lexicon
	if opts.Lexicon != "" {
		var err error
		lex, err = lexicon.Load(opts.Lexicon)
		if err != nil {
			return fmt.Errorf("failed to load lexicon: %w", err)
		}
		logger.Debug("lexicon loaded", "path", lex.Path, "entries", lex.Len(), "source", lex.Metadata.Source)
	}

	if opts.Prompt {
		fmt.Fprintln(errOut, promptText)
		if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read prompt: %w", err)
		}
	}

	var d divination.Divination
	switch {
	case opts.Lines != nil:
		d = divination.FromLines(*opts.Lines)
	case opts.Seed != nil:
		fmt.Fprintf(errOut, "seed: %d\n", *opts.Seed)
		d = divination.Cast(coin.NewSeeded(*opts.Seed))
	default:
		d = divination.Cast(&coin.Crypto{})
	}

	attrs := []any{
		"present", d.Present().Number(),
		"changing", d.ChangingLines(),
	}
	if future, ok := d.Future(); ok {
		attrs = append(attrs, "future", future.Number())
	}
	logger.Debug("cast complete", attrs...)

	ropts := render.Options{Color: opts.Color}
	if lex != nil {
		ropts.Lexicon = lex
	}
	if opts.Format == config.FormatJSON {
		return render.JSON(out, d, ropts)
	}
	return render.Text(out, d, ropts)
}
