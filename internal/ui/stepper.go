// Package ui renders an interactive derivation stepper: one keypress, one
// generation, with a live preview of the current sequence.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lsys/internal/lsystem"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	statStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type stepperModel struct {
	name   string
	sys    *lsystem.LSystem
	target int

	spinner  spinner.Model
	prog     progress.Model
	width    int
	stepping bool
	err      error
	quitting bool
}

type stepDoneMsg struct {
	seq []lsystem.Module
	err error
}

// NewStepperModel returns a Bubble Tea model driving sys keypress by
// keypress. target is the generation the progress bar fills at; zero means
// open-ended.
func NewStepperModel(name string, sys *lsystem.LSystem, target int) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &stepperModel{
		name:    name,
		sys:     sys,
		target:  target,
		spinner: sp,
		prog:    prog,
		width:   80,
	}
}

func (m *stepperModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *stepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "enter", "n":
			if m.stepping || m.err != nil {
				return m, nil
			}
			m.stepping = true
			return m, tea.Batch(m.step(), m.spinner.Tick)
		case "r":
			if m.stepping {
				return m, nil
			}
			m.sys.Reset()
			m.err = nil
			return m, m.prog.SetPercent(0)
		}
		return m, nil
	case stepDoneMsg:
		m.stepping = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.prog.SetPercent(m.percent())
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progModel, cmd := m.prog.Update(msg)
		m.prog = progModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *stepperModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	header := fmt.Sprintf("%s  generation %d", m.name, m.sys.Generation())
	if m.stepping {
		header = fmt.Sprintf("%s %s  deriving...", m.spinner.View(), header)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(statStyle.Render(fmt.Sprintf("  %d modules", len(m.sys.Current()))))
	b.WriteString("\n")

	preview := truncate(lsystem.FormatSequence(m.sys.Current()), m.width-4)
	b.WriteString(previewStyle.Render("  " + preview))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("  error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.target > 0 {
		b.WriteString(m.prog.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  space/enter: next  r: reset  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// step выполняет одно поколение вне цикла Update, чтобы не замораживать TUI
// на глубоких поколениях.
func (m *stepperModel) step() tea.Cmd {
	sys := m.sys
	return func() tea.Msg {
		seq, err := sys.NextGeneration()
		return stepDoneMsg{seq: seq, err: err}
	}
}

func (m *stepperModel) percent() float64 {
	if m.target <= 0 {
		return 0
	}
	pct := float64(m.sys.Generation()) / float64(m.target)
	if pct > 1 {
		pct = 1
	}
	return pct
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
