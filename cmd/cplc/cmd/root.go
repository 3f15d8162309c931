// Package cmd implements cplc's cobra command tree: a root command whose
// default action is "compile" (preserving spec.md §6's single-positional-
// argument CLI), plus lex/parse/version subcommands grounded on the
// teacher's cmd/dwscript/cmd layout.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, overridable by build flags (-ldflags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "cplc <file.ou>",
	Short: "CPL-to-QUAD compiler",
	Long: `cplc compiles CPL ("Compiler Practical Language") source files into a
linear three-address QUAD listing.

Given a single .ou source file, cplc scans, parses, and emits QUAD
instructions into a sibling .qud file with the same stem. This is
equivalent to running "cplc compile <file.ou>" directly.`,
	Version:      Version,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompile(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to cplc.toml (default: cplc.toml next to the input file, if present)")
}
