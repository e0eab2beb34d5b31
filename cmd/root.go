package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/webperf-tools/jsdiet/pkg/dataset"
)

var (
	inputFile       string
	outputFile      string
	statsFile       string
	suggestionsFile string
	configFile      string
	formatName      string
	dryRun          bool
	noMoji          bool
	verbose         bool
)

// stdout is swapped out by tests.
var stdout io.Writer = os.Stdout

var rootCmd = &cobra.Command{
	Use:   "jsdiet",
	Short: "Suggest smaller alternatives for a page's JavaScript libraries",
	Long: `Audit a web page's detected JavaScript libraries for bloat.

jsdiet consumes a stack-detection report (produced by an upstream analyzer
such as a wappalyzer-style scanner) and cross-references every identified
JavaScript library against a size-statistics dataset and a curated list of
smaller functional equivalents. The result is a ranked report of libraries
you could replace and how many compressed bytes each switch would save.

jsdiet performs no detection and no network access itself; reference
datasets ship embedded in the binary and can be overridden with flags.

Modes:
- YAML Mode: Uses 'jsdiet.yaml' to audit several pages in one run.
- CLI Mode: Audits a single detection report without configuration.`,
	Example: `  # CLI Mode: audit one detection report
  jsdiet -i detections.json

  # CLI Mode: write a JSON report to a file
  jsdiet -i detections.json --format json -o report.json

  # CLI Mode: custom reference datasets
  jsdiet -i detections.json --stats sizes.json --suggestions alts.json

  # YAML Mode: audit every page listed in jsdiet.yaml
  jsdiet --config jsdiet.yaml`,
	SilenceUsage: true,
}

func runRoot(cmd *cobra.Command, args []string) error {
	setupLogging()

	// Detect YAML Mode
	cfgPath := configFile
	if cfgPath == "" {
		if _, err := os.Stat("jsdiet.yaml"); err == nil {
			cfgPath = "jsdiet.yaml"
		}
	}

	if cfgPath != "" {
		return runBatchMode(cfgPath)
	}

	if inputFile == "" {
		return fmt.Errorf("no detection report given (use --input or a jsdiet.yaml config)")
	}
	return runAuditMode()
}

// Execute runs the root cobra command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadDatasets resolves the stats and suggestion tables, falling back to the
// embedded defaults for whichever path is empty, and cross-validates them.
func loadDatasets(statsPath, suggestionsPath string) (dataset.Stats, dataset.Suggestions, error) {
	defStats, defSuggestions, err := dataset.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("embedded datasets are broken: %w", err)
	}

	stats := defStats
	if statsPath != "" {
		if stats, err = dataset.LoadStats(statsPath); err != nil {
			return nil, nil, err
		}
	}
	suggestions := defSuggestions
	if suggestionsPath != "" {
		if suggestions, err = dataset.LoadSuggestions(suggestionsPath); err != nil {
			return nil, nil, err
		}
	}

	if err := dataset.Validate(stats, suggestions); err != nil {
		return nil, nil, err
	}
	return stats, suggestions, nil
}

func init() {
	rootCmd.RunE = runRoot
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to the detection report (CLI Mode only)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path to output file (default: print to stdout)")
	rootCmd.Flags().StringVar(&statsFile, "stats", "", "Path to a library size-statistics dataset (default: embedded)")
	rootCmd.Flags().StringVar(&suggestionsFile, "suggestions", "", "Path to a suggestion dataset (default: embedded)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to config file (default: jsdiet.yaml)")
	rootCmd.Flags().StringVar(&formatName, "format", "markdown", "Output format: markdown or json")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print to stdout instead of writing to file")
	rootCmd.Flags().BoolVar(&noMoji, "nomoji", false, "Disable emojis in the output")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")

	// Add version flag as shortcut for "version" command
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("jsdiet {{.Version}}\n")
}
