// Package tui provides a terminal browser for stored simulation runs.
// It navigates metadata only; trajectory rendering stays in the plot
// and export commands.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/geodesim/internal/storage"
	"github.com/san-kum/geodesim/internal/viz"
)

var (
	header   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dim      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type model struct {
	runs   []storage.RunMetadata
	cursor int
	width  int
}

func newModel(runs []storage.RunMetadata) model {
	return model{runs: runs, width: 80}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.runs)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(header.Render("geodesim runs") + "\n\n")

	if len(m.runs) == 0 {
		b.WriteString(dim.Render("no stored runs; use `geodesim run` first") + "\n")
		return b.String()
	}

	for i, run := range m.runs {
		line := fmt.Sprintf("%-28s %8.1f M☉  %2d particles  seed %d",
			run.ID, run.MassSolar, run.Particles, run.Seed)
		if i == m.cursor {
			b.WriteString(selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	run := m.runs[m.cursor]
	b.WriteString("\n" + header.Render("outcomes") + "\n")
	for i, outcome := range run.Outcomes {
		length := 0
		if i < len(run.Lengths) {
			length = run.Lengths[i]
		}
		b.WriteString(fmt.Sprintf("  particle %02d  %s  %s\n",
			i, viz.OutcomeBadge(outcome), dim.Render(fmt.Sprintf("%d states", length))))
	}

	b.WriteString("\n" + dim.Render("j/k move · q quit") + "\n")
	return b.String()
}

// Browse opens the run browser over the given store.
func Browse(store *storage.Store) error {
	runs, err := store.List()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(newModel(runs)).Run()
	return err
}
