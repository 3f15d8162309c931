package cmd

import (
	"fmt"
	"os"

	"github.com/efratelisha/cplc/internal/driver"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.ou>",
	Short: "Parse a CPL file and print the emitted QUAD without writing a .qud file",
	Long: `Parse runs the scanner and parser over a CPL source file and prints
whatever QUAD listing was produced, along with any diagnostics, without
performing cplc compile's output-file validation or write. Useful for
inspecting the QUAD emitted by a program that has errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	listing, diags := driver.Parse(string(content), filename)

	for _, instr := range listing {
		fmt.Println(instr)
	}
	for _, item := range diags.Items() {
		fmt.Fprintln(os.Stderr, item.Format())
	}

	if diags.HasError() {
		return fmt.Errorf("parsing failed")
	}
	return nil
}
