package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/efratelisha/cplc/internal/config"
	"github.com/efratelisha/cplc/internal/driver"
	"github.com/efratelisha/cplc/internal/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watch bool

var compileCmd = &cobra.Command{
	Use:   "compile <file.ou>",
	Short: "Compile a CPL source file into a QUAD listing",
	Long: `Compile runs the full scan -> parse -> emit pipeline over a CPL source
file and, if it is free of lexical, syntactic, and semantic errors, writes
a QUAD listing to a sibling file with the same stem and a .qud suffix.

Examples:
  cplc compile program.ou
  cplc compile program.ou --config cplc.toml
  cplc compile program.ou --watch`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().BoolVar(&watch, "watch", false, "re-run the pipeline each time the source file changes")
}

// runCompile implements the CLI surface of spec.md §6: it prints the
// signature to the diagnostic stream, validates the single positional
// argument exactly the way cpq.py's ensure_input() does (same five
// distinct CRITICAL conditions, same order), and otherwise runs the core
// pipeline and writes the .qud file.
func runCompile(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(args)

	fmt.Fprintln(os.Stderr, cfg.Signature)

	inputFile, ok := validateArgs(args, cfg)
	if !ok {
		return nil
	}

	if err := compileOnce(inputFile, cfg); err != nil {
		return err
	}

	if !watch {
		return nil
	}
	return watchAndRecompile(inputFile, cfg)
}

// resolveConfig loads cplc.toml, preferring --config, then a file named
// "cplc.toml" next to the input argument (if there is exactly one), then
// falling back to the hard-coded defaults (spec.md §6, §9; SPEC_FULL.md
// AMBIENT STACK "Configuration").
func resolveConfig(args []string) *config.Config {
	if configPath != "" {
		if cfg, err := config.Load(configPath); err == nil {
			return cfg
		}
		return config.Default()
	}
	if len(args) == 1 {
		candidate := filepath.Join(filepath.Dir(args[0]), "cplc.toml")
		if _, err := os.Stat(candidate); err == nil {
			if cfg, err := config.Load(candidate); err == nil {
				return cfg
			}
		}
	}
	return config.Default()
}

// validateArgs reproduces ensure_input() from cpq.py: exactly one
// argument, ending in the input suffix, whose output file doesn't already
// exist, and which itself exists. Each failure prints one CRITICAL
// diagnostic and the function returns ok=false, telling the caller not to
// invoke the core (spec.md §6).
func validateArgs(args []string, cfg *config.Config) (string, bool) {
	switch {
	case len(args) == 0:
		notifyCritical(cfg, "no file was given")
		return "", false
	case len(args) > 1:
		notifyCritical(cfg, "too many arguments")
		return "", false
	}

	inputFile := args[0]

	if !strings.HasSuffix(inputFile, cfg.InputSuffix) {
		notifyCritical(cfg, "wrong file type")
		return "", false
	}

	outputFile := outputFileName(inputFile, cfg)
	if _, err := os.Stat(outputFile); err == nil {
		notifyCritical(cfg, "output file already exists")
		return "", false
	}

	if _, err := os.Stat(inputFile); err != nil {
		notifyCritical(cfg, "input file doesn't exist")
		return "", false
	}

	return inputFile, true
}

func notifyCritical(cfg *config.Config, reason string) {
	fmt.Fprintln(os.Stderr, errors.New(errors.SeverityCritical,
		fmt.Sprintf("%s, not creating %s file", reason, cfg.OutputSuffix), 0, "", "").Format())
}

func outputFileName(inputFile string, cfg *config.Config) string {
	return strings.TrimSuffix(inputFile, cfg.InputSuffix) + cfg.OutputSuffix
}

// compileOnce runs the core pipeline once and writes the .qud file, or
// prints diagnostics and a final CRITICAL without writing anything if the
// scanner or parser recorded any ERROR (spec.md §7).
func compileOnce(inputFile string, cfg *config.Config) error {
	source, err := os.ReadFile(inputFile)
	if err != nil {
		notifyCritical(cfg, "input file doesn't exist")
		return nil
	}

	result := driver.Compile(string(source), inputFile, cfg)

	for _, item := range result.Diagnostics.Items() {
		fmt.Fprintln(os.Stderr, item.Format())
	}

	if result.Diagnostics.HasError() {
		notifyCritical(cfg, "encountered errors during compilation")
		return nil
	}

	outFile := outputFileName(inputFile, cfg)
	if err := os.WriteFile(outFile, []byte(driver.WriteListing(result.Listing)), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}
	return nil
}

// watchAndRecompile re-runs compileOnce every time inputFile is rewritten,
// until the process is interrupted. This is a developer convenience
// (SPEC_FULL.md AMBIENT STACK "File watching"); it has no bearing on the
// single-shot semantics spec.md §6 describes.
func watchAndRecompile(inputFile string, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(inputFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", inputFile, err)
	}

	base := filepath.Base(inputFile)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "recompiling %s\n", inputFile)
			if err := compileOnce(inputFile, cfg); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
