// Package config loads and validates the YAML input file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

// InputParser loads projection configurations from YAML.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile reads and parses a YAML configuration file, then validates
// it. The returned configuration is ready to run.
func (p *InputParser) LoadFromFile(path string) (*domain.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return p.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a YAML configuration document.
func (p *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := p.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// ValidateConfiguration checks the parsed configuration: the tax and
// projection sections (or their defaults) must construct cleanly and every
// scenario must be uniquely named with valid input scalars.
func (p *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if _, err := calculation.NewTaxCalculator(cfg.TaxConfigOrDefault()); err != nil {
		return fmt.Errorf("tax section: %w", err)
	}

	taxCalc := calculation.MustNewTaxCalculator(domain.DefaultTaxConfig())
	if _, err := calculation.NewProjectionEngine(taxCalc, cfg.ProjectionConfigOrDefault()); err != nil {
		return fmt.Errorf("projection section: %w", err)
	}

	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}

	seen := make(map[string]bool, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario name: %q", sc.Name)
		}
		seen[sc.Name] = true

		if err := calculation.ValidateInput(sc.ProjectionInput); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}

	return nil
}
