package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lsys/internal/diag"
	"lsys/internal/diagfmt"
	"lsys/internal/lsystem"
	"lsys/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags]",
	Short: "Parse rules and axioms without deriving",
	Long: `Parse checks the given rules and axiom against the DSL grammar and
reports every problem with its position. Nothing is derived.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringArray("rule", nil, "rule to check (repeatable)")
	parseCmd.Flags().String("axiom", "", "axiom to check")
	parseCmd.Flags().String("format", "pretty", "diagnostic format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	rules, _ := cmd.Flags().GetStringArray("rule")
	axiom, _ := cmd.Flags().GetString("axiom")
	format, _ := cmd.Flags().GetString("format")
	if len(rules) == 0 && axiom == "" {
		return fmt.Errorf("nothing to parse: pass --rule and/or --axiom")
	}

	set := source.NewSet()
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}

	if axiom != "" {
		id := set.AddString("axiom", source.InputAxiom, axiom)
		if seq, ok := lsystem.ParseAxiom(set, id, rep); ok && !quietEnabled(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "axiom: %d modules\n", len(seq))
		}
	}
	for i, text := range rules {
		id := set.AddString(fmt.Sprintf("rule[%d]", i), source.InputRule, text)
		rule, ok := lsystem.ParseRule(set, id, rep)
		if ok && !quietEnabled(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "rule[%d]: %s%s%s\n", i,
				rule.Pred.Symbol, describe(rule.Stochastic(), " stochastic"),
				describe(rule.ContextSensitive(), " context-sensitive"))
		}
	}

	if bag.Len() > 0 {
		bag.Sort()
		switch format {
		case "json":
			if err := diagfmt.JSON(cmd.OutOrStdout(), bag, set, diagfmt.JSONOpts{IncludeNotes: true}); err != nil {
				return err
			}
		default:
			diagfmt.Pretty(os.Stderr, bag, set, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
		}
	}
	if bag.HasErrors() {
		return fmt.Errorf("parse failed: %s", bag.Summary())
	}
	return nil
}

func describe(cond bool, label string) string {
	if cond {
		return label
	}
	return ""
}
