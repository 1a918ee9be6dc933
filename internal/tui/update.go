package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.engine = msg.Engine
		m.scenarioIdx = 0
		if sc := m.currentScenario(); sc != nil {
			return m, runScenarioCmd(m.engine, *sc)
		}
		m.loading = false
		return m, nil

	case ProjectionCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.records = msg.Records
		m.analysis = msg.Analysis
		m.rowOffset = 0
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevScenario):
		return m.switchScenario(-1)

	case key.Matches(msg, m.keys.NextScenario):
		return m.switchScenario(1)

	case key.Matches(msg, m.keys.Up):
		if m.rowOffset > 0 {
			m.rowOffset--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.rowOffset < m.maxRowOffset() {
			m.rowOffset++
		}
		return m, nil
	}

	return m, nil
}

// switchScenario cycles the selection by delta, wrapping around, and kicks
// off the run for the newly selected scenario.
func (m Model) switchScenario(delta int) (tea.Model, tea.Cmd) {
	if m.config == nil || len(m.config.Scenarios) == 0 {
		return m, nil
	}
	n := len(m.config.Scenarios)
	m.scenarioIdx = (m.scenarioIdx + delta + n) % n
	m.loading = true
	m.err = nil
	return m, runScenarioCmd(m.engine, m.config.Scenarios[m.scenarioIdx])
}

// maxRowOffset bounds scrolling so the last page of rows stays on screen.
func (m Model) maxRowOffset() int {
	visible := m.visibleRows()
	if len(m.records) <= visible {
		return 0
	}
	return len(m.records) - visible
}
