package cmd

import (
	"fmt"
	"os"

	"github.com/efratelisha/cplc/internal/driver"
	"github.com/spf13/cobra"
)

var (
	lexShowLine bool
	lexOnlyErr  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file.ou>",
	Short: "Tokenize a CPL file and print the resulting tokens",
	Long: `Tokenize (lex) a CPL source file and print the resulting token stream.

This is useful for debugging the scanner independently of the parser.

Examples:
  cplc lex program.ou
  cplc lex --show-line program.ou
  cplc lex --only-errors program.ou`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowLine, "show-line", false, "show the source line number of each token")
	lexCmd.Flags().BoolVar(&lexOnlyErr, "only-errors", false, "show only ILLEGAL tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	tokens, diags := driver.Lex(string(content), filename)

	errCount := 0
	for _, tok := range tokens {
		if tok.Kind == "ILLEGAL" {
			errCount++
		}
		if lexOnlyErr && tok.Kind != "ILLEGAL" {
			continue
		}
		printToken(tok)
	}

	for _, item := range diags.Items() {
		fmt.Fprintln(os.Stderr, item.Format())
	}

	if errCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errCount)
	}
	return nil
}

func printToken(tok driver.TokenDump) {
	if lexShowLine {
		fmt.Printf("[%-9s] %-20q @line %d\n", tok.Kind, tok.Literal, tok.Line)
		return
	}
	fmt.Printf("[%-9s] %q\n", tok.Kind, tok.Literal)
}
