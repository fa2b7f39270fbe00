package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"lsys/internal/catalog"
	"lsys/internal/driver"
	"lsys/internal/lsystem"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List or run the built-in example systems",
	RunE:  runExamplesList,
}

var examplesRunCmd = &cobra.Command{
	Use:   "run [flags] [name]",
	Short: "Derive one example, or all of them in parallel",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExamplesRun,
}

func init() {
	examplesRunCmd.Flags().Bool("all", false, "derive every example")
	examplesRunCmd.Flags().IntP("generations", "n", -1, "override the generation count")
	examplesRunCmd.Flags().Int("jobs", runtime.NumCPU(), "parallel derivations with --all")
	examplesCmd.AddCommand(examplesRunCmd)
}

func runExamplesList(cmd *cobra.Command, args []string) error {
	for _, e := range catalog.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s (%d generations)\n",
			e.Name, e.Description, e.Iterations)
	}
	return nil
}

func runExamplesRun(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	gens, _ := cmd.Flags().GetInt("generations")

	if all {
		if len(args) > 0 {
			return fmt.Errorf("--all does not take a name")
		}
		return runAllExamples(cmd, gens)
	}
	if len(args) != 1 {
		return fmt.Errorf("pass an example name or --all (see `lsys examples`)")
	}

	req, err := resolveRequest(args[0], "")
	if err != nil {
		return err
	}
	if gens >= 0 {
		req.Generations = gens
	}
	res, err := driver.Derive(req)
	if err != nil {
		return err
	}
	printTimings(cmd, res.Timings)
	if !quietEnabled(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: generation %d, %d modules\n",
			res.Name, res.Generations, len(res.Sequence))
	}
	fmt.Fprintln(cmd.OutOrStdout(), lsystem.FormatSequence(res.Sequence))
	return nil
}

func runAllExamples(cmd *cobra.Command, gens int) error {
	jobs, _ := cmd.Flags().GetInt("jobs")

	entries := catalog.All()
	reqs := make([]driver.Request, 0, len(entries))
	for _, e := range entries {
		req := driver.Request{Name: e.Name, Config: e.Config, Generations: e.Iterations}
		if gens >= 0 {
			req.Generations = gens
		}
		reqs = append(reqs, req)
	}

	results, err := driver.DeriveAll(cmd.Context(), reqs, jobs)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%-18s generation %d, %d modules\n",
			res.Name, res.Generations, len(res.Sequence))
	}
	return nil
}
