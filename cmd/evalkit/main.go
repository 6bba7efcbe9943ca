package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/evalkit/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// buildConfig constructs an app.Config for op from command flags and arguments
func buildConfig(cmd *cobra.Command, op app.Operation, args []string) (app.Config, error) {
	jsonFlag, _ := cmd.Flags().GetBool("json")
	yamlFlag, _ := cmd.Flags().GetBool("yaml")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	var outputFormat app.OutputFormat
	switch {
	case jsonFlag:
		outputFormat = app.JSON
	case yamlFlag:
		outputFormat = app.YAML
	default:
		outputFormat = app.Text
	}

	cfg := app.Config{
		Operation:    op,
		OutputFormat: outputFormat,
		Quiet:        quiet,
		Debug:        debug,
	}

	// wordcount reads sources; every other command takes its input inline
	if op != app.WordCount {
		cfg.Args = args
		return cfg, nil
	}

	cfg.Sources = args
	cfg.HTML, _ = cmd.Flags().GetBool("html")
	cfg.Selector, _ = cmd.Flags().GetString("selector")
	cfg.Stem, _ = cmd.Flags().GetBool("stem")
	cfg.Top, _ = cmd.Flags().GetInt("top")
	cfg.Summary, _ = cmd.Flags().GetBool("summary")

	if cfg.Top < 0 {
		return app.Config{}, fmt.Errorf("--top must not be negative")
	}
	if cfg.Selector != "" && !cfg.HTML {
		return app.Config{}, fmt.Errorf("--selector requires --html")
	}
	return cfg, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// runE returns the RunE handler shared by every operation command.
func runE(op app.Operation) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, op, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		setupLogger(config.Debug)
		slog.Debug("Running operation", "operation", op, "args", len(args), "format", config.OutputFormat)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("%s failed: %w", op, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), result)
		return nil
	}
}

var rootCmd = &cobra.Command{
	Use:   "evalkit",
	Short: "Small text and search utilities",
	Long: `Evalkit bundles a few classic text utilities and a binary search.
Text is taken from arguments or, when there are none, from standard input.

Examples:
  evalkit reverse "I'm hungry!"
  evalkit acronym Portable Network Graphics
  evalkit scrabble quirky zoo
  evalkit wordcount notes.txt
  evalkit search 6 1 3 4 6 8 9 11`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var reverseCmd = &cobra.Command{
	Use:   "reverse [text...]",
	Short: "Reverse the characters of text",
	RunE:  runE(app.Reverse),
}

var acronymCmd = &cobra.Command{
	Use:   "acronym [phrase...]",
	Short: "Build an acronym from a phrase",
	RunE:  runE(app.Acronym),
}

var scrabbleCmd = &cobra.Command{
	Use:   "scrabble [word...]",
	Short: "Score words with standard Scrabble tile values",
	RunE:  runE(app.Scrabble),
}

var wordcountCmd = &cobra.Command{
	Use:   "wordcount [sources...]",
	Short: "Count word occurrences in files, URLs, or standard input",
	Long: `Count how often each word occurs. Words are split on whitespace and commas
and compared case-sensitively unless --stem is given. Sources may be local
files, http(s) URLs, or "-" for standard input.`,
	RunE: runE(app.WordCount),
}

var searchCmd = &cobra.Command{
	Use:   "search <target> <sorted values...>",
	Short: "Binary search a sorted list of values",
	Long: `Find the zero-based index of target in an ascending list of values.
Values are compared as integers when they all parse as integers, and as
strings otherwise.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runE(app.Search),
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.Bool("json", false, "Output in JSON format")
	fs.Bool("yaml", false, "Output in YAML format")
	fs.BoolP("quiet", "q", false, "Suppress warning messages")
	fs.BoolP("debug", "D", false, "Enable debug logging")
	_ = fs.MarkHidden("debug")
}

// addWordCountFlags registers the flags specific to wordcount.
func addWordCountFlags(fs *pflag.FlagSet) {
	fs.Bool("html", false, "Treat sources as HTML and count only their readable text")
	fs.StringP("selector", "s", "", "CSS selector for HTML content extraction")
	fs.Bool("stem", false, "Fold words to their lowercase English stem before counting")
	fs.IntP("top", "n", 0, "Only show the N most frequent words")
	fs.Bool("summary", false, "Also report word, character, and token totals")
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	// output format flags are mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	addWordCountFlags(wordcountCmd.Flags())

	rootCmd.AddCommand(reverseCmd, acronymCmd, scrabbleCmd, wordcountCmd, searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
