package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lsys/internal/diag"
	"lsys/internal/diagfmt"
	"lsys/internal/lexer"
	"lsys/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] \"rule or axiom text\"",
	Short: "Tokenize a rule or axiom string",
	Long:  `Tokenize breaks a DSL string into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("kind", "rule", "input kind (rule|axiom)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	kindFlag, _ := cmd.Flags().GetString("kind")

	var kind source.InputKind
	switch kindFlag {
	case "rule":
		kind = source.InputRule
	case "axiom":
		kind = source.InputAxiom
	default:
		return fmt.Errorf("invalid --kind %q (expected rule|axiom)", kindFlag)
	}

	set := source.NewSet()
	id := set.AddString(kindFlag, kind, args[0])
	bag := diag.NewBag(100)
	toks := lexer.Scan(set.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	// Диагностика в stderr, токены в stdout
	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, set, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), toks)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("invalid --format %q (expected pretty|json)", format)
	}
}
