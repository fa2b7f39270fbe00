package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lsys/internal/lsystem"
	"lsys/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] [path]",
	Short: "Step through generations interactively",
	Long: `Watch opens a terminal UI over the system: one keypress advances one
generation, with a live preview of the sequence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("example", "", "watch a built-in system instead of a project")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("watch needs a terminal; use `lsys derive` instead")
	}

	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	example, _ := cmd.Flags().GetString("example")

	req, err := resolveRequest(example, startDir)
	if err != nil {
		return err
	}
	sys, err := lsystem.New(req.Config)
	if err != nil {
		return err
	}

	model := ui.NewStepperModel(req.Name, sys, req.Generations)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watch UI failed: %w", err)
	}
	return nil
}
