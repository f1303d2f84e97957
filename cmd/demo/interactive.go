package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/sharedref/trace"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	stepInterval = 600 * time.Millisecond
	historySize  = 12
)

type interactiveModel struct {
	scenario *Scenario
	registry *trace.Registry
	counter  *trace.Counter
	player   *player
	spinner  spinner.Model
	history  []string
	err      error
	paused   bool
	done     bool
}

type stepMsg struct{}

func newInteractiveModel(sc *Scenario, reg *trace.Registry, counter *trace.Counter) *interactiveModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	return &interactiveModel{
		scenario: sc,
		registry: reg,
		counter:  counter,
		player:   newPlayer(sc, counter),
		spinner:  sp,
	}
}

func stepTick() tea.Cmd {
	return tea.Tick(stepInterval, func(time.Time) tea.Msg { return stepMsg{} })
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, stepTick())
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case " ":
			if !m.done {
				m.paused = !m.paused
				if !m.paused {
					return m, stepTick()
				}
			}

		case "n":
			if m.paused && !m.done {
				m.advance()
			}

		case "r":
			m.player = newPlayer(m.scenario, m.counter)
			m.history = nil
			m.err = nil
			m.done = false
			if !m.paused {
				return m, stepTick()
			}
		}

	case stepMsg:
		if m.paused || m.done {
			return m, nil
		}
		m.advance()
		if !m.done {
			return m, stepTick()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) advance() {
	desc, done, err := m.player.Step()
	if desc != "" {
		m.history = append(m.history, desc)
		if len(m.history) > historySize {
			m.history = m.history[len(m.history)-historySize:]
		}
	}
	if err != nil {
		m.err = err
		m.done = true
		return
	}
	m.done = done
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sharedref demo"))
	b.WriteString(" ")
	b.WriteString(m.scenario.Name)
	b.WriteString("\n\n")

	st := m.registry.Stats()
	executed, total := m.player.Progress()
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"blocks %d  values %d  acquired %d  disposed %d  freed %d  instances %d",
		st.LiveBlocks, st.LiveValues, st.Acquired, st.Disposed, st.Freed, m.counter.Live(),
	)))
	b.WriteString("\n\n")

	for _, h := range m.history {
		b.WriteString("  ")
		b.WriteString(stepStyle.Render(h))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.done:
		b.WriteString(doneStyle.Render("Scenario complete."))
	case m.paused:
		b.WriteString(fmt.Sprintf("paused at step %d/%d", executed, total))
	default:
		b.WriteString(fmt.Sprintf("%s step %d/%d", m.spinner.View(), executed, total))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("space pause/resume • n single step • r restart • q quit"))

	return b.String()
}

func runInteractive(sc *Scenario, reg *trace.Registry, counter *trace.Counter) error {
	p := tea.NewProgram(newInteractiveModel(sc, reg, counter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
