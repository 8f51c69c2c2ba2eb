// Command katas lists the exercises of this module and runs their demos.
//
//	katas list
//	katas run                     # every exercise
//	katas run two-sum dijkstra    # selected exercises
//	katas --config katas.yaml run --strict
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/katas/internal/catalog"
	"github.com/katalvlaran/katas/internal/config"
	"github.com/katalvlaran/katas/kata"
)

var (
	// Global flags
	configPath string
	verbose    bool
	strict     bool

	cfg    *config.Config
	logger *zap.Logger
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "katas",
	Short: "Run the sample invocation of each coding exercise",
	Long: `katas runs the demo of every exercise package (two-sum, palindrome,
binary search, Dijkstra, reverse, character counter, pet registry).

Sample inputs come from a YAML file (--config); missing sections keep
their defaults.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered exercises",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var runCmd = &cobra.Command{
	Use:   "run [exercise...]",
	Short: "Run exercise demos (all when none named)",
	RunE:  runDemos,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file with demo inputs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	runCmd.Flags().BoolVar(&strict, "strict", false, "Treat unimplemented exercises as failures")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a production zap logger at level, or debug when verbose.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl := zapcore.InfoLevel
	if s := strings.TrimSpace(level); s != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
			return nil, err
		}
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := catalog.Build(cfg)
	if err != nil {
		return err
	}
	printList(cmd.OutOrStdout(), c.All())

	return nil
}

func printList(w io.Writer, exs []kata.Exercise) {
	for _, e := range exs {
		fmt.Fprintf(w, "%-18s %-7s %s\n", e.Name, e.Status, e.Summary)
	}
}

func runDemos(cmd *cobra.Command, args []string) error {
	c, err := catalog.Build(cfg)
	if err != nil {
		return err
	}
	exs, err := catalog.Select(c, args)
	if err != nil {
		return err
	}

	outcomes := catalog.Run(exs, logger)
	failed := printOutcomes(cmd.OutOrStdout(), outcomes, strict)
	if failed > 0 {
		return fmt.Errorf("%d of %d exercises failed", failed, len(outcomes))
	}

	return nil
}

// printOutcomes writes one line per outcome and returns the number of failures.
func printOutcomes(w io.Writer, outcomes []kata.Outcome, strict bool) int {
	failed := 0
	for _, o := range outcomes {
		switch o.Verdict {
		case kata.Passed:
			fmt.Fprintf(w, "%s %s: %s\n", green("PASS"), o.Name, o.Output)
		case kata.Unimplemented:
			fmt.Fprintf(w, "%s %s: %v\n", yellow("TODO"), o.Name, o.Err)
			if strict {
				failed++
			}
		default:
			fmt.Fprintf(w, "%s %s: %v\n", red("FAIL"), o.Name, o.Err)
			failed++
		}
	}

	return failed
}
