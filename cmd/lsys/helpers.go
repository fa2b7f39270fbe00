package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lsys/internal/catalog"
	"lsys/internal/driver"
	"lsys/internal/observ"
	"lsys/internal/project"
)

const noLsysTomlMessage = "no lsys.toml found\nplease specify the project explicitly, e.g.:\n  lsys derive path/to/project\nor pick a built-in system:\n  lsys derive --example koch-snowflake"

// useColor разрешает флаг --color с учётом терминала.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func quietEnabled(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && quiet
}

func timingsEnabled(cmd *cobra.Command) bool {
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	return err == nil && timings
}

// resolveRequest builds a derivation request from --example, an explicit
// project path, or the nearest manifest up the tree.
func resolveRequest(exampleName, startDir string) (driver.Request, error) {
	if exampleName != "" {
		entry, ok := catalog.Lookup(exampleName)
		if !ok {
			return driver.Request{}, fmt.Errorf("unknown example %q (see `lsys examples`)", exampleName)
		}
		return driver.Request{
			Name:        entry.Name,
			Config:      entry.Config,
			Generations: entry.Iterations,
		}, nil
	}

	manifest, ok, err := project.Find(startDir)
	if err != nil {
		return driver.Request{}, err
	}
	if !ok {
		return driver.Request{}, fmt.Errorf("%s", noLsysTomlMessage)
	}
	return driver.FromManifest(manifest), nil
}

func printTimings(cmd *cobra.Command, report observ.Report) {
	if !timingsEnabled(cmd) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "timings: total %.2f ms\n", report.TotalMS)
	for _, p := range report.Phases {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %-10s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "  // %s", p.Note)
		}
		fmt.Fprintln(cmd.ErrOrStderr())
	}
}
