// Package tui is a terminal browser for projection results: it loads a
// configuration file, runs scenarios on demand and renders the yearly
// records as a scrollable table.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/config"
	"github.com/avoleti/incomehelper/internal/domain"
)

// keyMap holds the key bindings shown in the status bar.
type keyMap struct {
	PrevScenario key.Binding
	NextScenario key.Binding
	Up           key.Binding
	Down         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevScenario: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev scenario"),
		),
		NextScenario: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next scenario"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model represents the entire application state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration

	// Calculation engine
	engine *calculation.ProjectionEngine

	// Current selection and results
	scenarioIdx int
	records     []domain.YearlyRecord
	analysis    *calculation.ProjectionAnalysis

	// Table scroll offset
	rowOffset int

	keys keyMap

	// Error state
	err error

	// Loading state
	loading bool
}

// NewModel creates a new application model
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		keys:       defaultKeyMap(),
		loading:    true,
		width:      80,
		height:     24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads and validates the
// configuration file and builds the projection engine from it.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		taxCalc, err := calculation.NewTaxCalculator(cfg.TaxConfigOrDefault())
		if err != nil {
			return ErrorMsg{Err: err}
		}
		engine, err := calculation.NewProjectionEngine(taxCalc, cfg.ProjectionConfigOrDefault())
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return ConfigLoadedMsg{Config: cfg, Engine: engine}
	}
}

// runScenarioCmd returns a command that runs one scenario
func runScenarioCmd(engine *calculation.ProjectionEngine, scenario domain.Scenario) tea.Cmd {
	return func() tea.Msg {
		records, err := engine.RunProjection(scenario.ProjectionInput)
		if err != nil {
			return ProjectionCompleteMsg{ScenarioName: scenario.Name, Err: err}
		}
		analysis, err := calculation.AnalyzeProjection(records)
		if err != nil {
			return ProjectionCompleteMsg{ScenarioName: scenario.Name, Err: err}
		}
		return ProjectionCompleteMsg{
			ScenarioName: scenario.Name,
			Records:      records,
			Analysis:     analysis,
		}
	}
}

// currentScenario returns the selected scenario, nil before config load.
func (m Model) currentScenario() *domain.Scenario {
	if m.config == nil || len(m.config.Scenarios) == 0 {
		return nil
	}
	return &m.config.Scenarios[m.scenarioIdx]
}
