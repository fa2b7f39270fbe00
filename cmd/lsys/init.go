package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lsys/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new lsys project",
	Long: `Initialize a new lsys project by creating a project manifest (lsys.toml)
with a Koch curve starter system. If [path|name] is omitted, initializes the
current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 && args[0] != "" {
		target = args[0]
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", target, err)
	}

	if _, err := os.Stat(absTarget); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(absTarget, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", absTarget, err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat %q: %w", absTarget, err)
	}

	manifestPath := filepath.Join(absTarget, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists", manifestPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %q: %w", manifestPath, err)
	}

	name := projectName(absTarget)
	if err := os.WriteFile(manifestPath, []byte(project.Template(name)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}
	if !quietEnabled(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", manifestPath)
		fmt.Fprintln(cmd.OutOrStdout(), "next: lsys derive")
	}
	return nil
}

// projectName derives a manifest name from the directory basename, falling
// back to "lsys-project" for unusable names.
func projectName(dir string) string {
	base := strings.TrimSpace(filepath.Base(dir))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "lsys-project"
	}
	return base
}
