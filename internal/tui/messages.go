package tui

import (
	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
	Engine *calculation.ProjectionEngine
}

// ProjectionCompleteMsg carries a finished scenario run
type ProjectionCompleteMsg struct {
	ScenarioName string
	Records      []domain.YearlyRecord
	Analysis     *calculation.ProjectionAnalysis
	Err          error
}
