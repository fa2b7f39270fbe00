package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lsys/internal/driver"
	"lsys/internal/lsystem"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [flags] [path]",
	Short: "Derive an L-system and print the final sequence",
	Long: `Derive loads a system from lsys.toml (searched upward from path or the
current directory) or from the built-in catalog, runs the configured number of
generations and prints the resulting sequence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().String("example", "", "derive a built-in system instead of a project")
	deriveCmd.Flags().IntP("generations", "n", -1, "override the generation count")
	deriveCmd.Flags().String("snapshot", "", "write the final state to a snapshot file")
	deriveCmd.Flags().String("resume", "", "resume from a snapshot file instead of the axiom")
	deriveCmd.Flags().String("out", "", "write the sequence to a file instead of stdout")
}

func runDerive(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	example, _ := cmd.Flags().GetString("example")

	req, err := resolveRequest(example, startDir)
	if err != nil {
		return err
	}
	if gens, _ := cmd.Flags().GetInt("generations"); gens >= 0 {
		req.Generations = gens
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	var res *driver.Result
	if resumePath != "" {
		res, err = deriveResumed(req, resumePath)
	} else {
		res, err = driver.Derive(req)
	}
	if err != nil {
		return err
	}

	if snapPath, _ := cmd.Flags().GetString("snapshot"); snapPath != "" {
		snap := driver.Snapshot{
			Name:       res.Name,
			Generation: res.Generations,
			Sequence:   res.Sequence,
		}
		if err := driver.SaveSnapshot(snapPath, snap); err != nil {
			return err
		}
		if !quietEnabled(cmd) {
			fmt.Fprintf(cmd.ErrOrStderr(), "snapshot: %s (generation %d)\n", snapPath, res.Generations)
		}
	}

	printTimings(cmd, res.Timings)

	text := lsystem.FormatSequence(res.Sequence)
	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		return os.WriteFile(outPath, []byte(text+"\n"), 0o644)
	}
	if !quietEnabled(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: generation %d, %d modules\n",
			res.Name, res.Generations, len(res.Sequence))
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// deriveResumed parses the system, swaps in the snapshot state and continues
// until the requested generation.
func deriveResumed(req driver.Request, snapPath string) (*driver.Result, error) {
	snap, err := driver.LoadSnapshot(snapPath)
	if err != nil {
		return nil, err
	}
	sys, err := lsystem.New(req.Config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Name, err)
	}
	driver.Resume(sys, snap)

	for sys.Generation() < req.Generations {
		if _, err := sys.NextGeneration(); err != nil {
			return nil, fmt.Errorf("%s: generation %d: %w", req.Name, sys.Generation()+1, err)
		}
	}
	return &driver.Result{
		Name:        req.Name,
		Generations: sys.Generation(),
		Sequence:    sys.Current(),
	}, nil
}
