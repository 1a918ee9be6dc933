package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

func loadedModel(t *testing.T) Model {
	t.Helper()

	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name: "base",
				ProjectionInput: domain.ProjectionInput{
					StartGross:             decimal.NewFromInt(1200000),
					Years:                  5,
					StartMonthlyInvestment: decimal.NewFromInt(20000),
					ExpectedReturnRate:     decimal.NewFromInt(12),
				},
			},
			{
				Name: "lean",
				ProjectionInput: domain.ProjectionInput{
					StartGross:             decimal.NewFromInt(1200000),
					Years:                  5,
					StartMonthlyInvestment: decimal.NewFromInt(10000),
					ExpectedReturnRate:     decimal.NewFromInt(12),
				},
			},
		},
	}
	engine, err := calculation.NewProjectionEngine(
		calculation.MustNewTaxCalculator(domain.DefaultTaxConfig()),
		domain.DefaultProjectionConfig(),
	)
	require.NoError(t, err)

	m := NewModel("unused.yaml")
	updated, cmd := m.Update(ConfigLoadedMsg{Config: cfg, Engine: engine})
	require.NotNil(t, cmd, "loading config should trigger the first run")

	model := updated.(Model)
	msg := cmd()
	complete, ok := msg.(ProjectionCompleteMsg)
	require.True(t, ok)
	require.NoError(t, complete.Err)

	updated, _ = model.Update(complete)
	return updated.(Model)
}

func TestModelConfigLoadRunsFirstScenario(t *testing.T) {
	m := loadedModel(t)

	assert.False(t, m.loading)
	assert.Nil(t, m.err)
	require.Len(t, m.records, 5)
	require.NotNil(t, m.analysis)
	assert.Equal(t, "base", m.currentScenario().Name)
}

func TestModelScenarioCycling(t *testing.T) {
	m := loadedModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, "lean", m.currentScenario().Name)
	assert.True(t, m.loading)

	// Wrap around going left twice.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, "base", m.currentScenario().Name)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, "lean", m.currentScenario().Name)
}

func TestModelQuitKey(t *testing.T) {
	m := loadedModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelScrollBounds(t *testing.T) {
	m := loadedModel(t)

	// Default 24-line terminal fits all five rows; scrolling is a no-op.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 0, m.rowOffset)

	// Shrink to three visible rows; the offset stops at the last page.
	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = updated.(Model)
	for i := 0; i < 5; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
	}
	assert.Equal(t, 2, m.rowOffset)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 1, m.rowOffset)
}

func TestModelViewStates(t *testing.T) {
	m := NewModel("unused.yaml")
	assert.Contains(t, m.View(), "Loading")

	updated, _ := m.Update(ErrorMsg{Err: assert.AnError})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Error:")

	m = loadedModel(t)
	view := m.View()
	assert.Contains(t, view, "Income Projection")
	assert.Contains(t, view, "base")
	assert.Contains(t, view, "Gross/Y")
}
