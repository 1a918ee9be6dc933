// Package domain contains the shared types of the income projection:
// configuration, per-run input and the yearly records the engine emits.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket is one slab of a progressive tax table. Width is the size of
// the slab in currency units; a zero width marks the final, unbounded slab.
type TaxBracket struct {
	Width decimal.Decimal `yaml:"width" json:"width"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether this bracket absorbs all remaining income.
func (b TaxBracket) Unbounded() bool {
	return b.Width.IsZero()
}

// TaxConfig describes a progressive tax regime: a standard deduction taken
// off gross, an ordered slab table and a flat surcharge on the slab tax.
type TaxConfig struct {
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction"`
	SurchargeRate     decimal.Decimal `yaml:"surcharge_rate" json:"surchargeRate"`
	Brackets          []TaxBracket    `yaml:"brackets" json:"brackets"`
}

// DefaultTaxConfig returns the built-in regime: 50,000 standard deduction,
// 4% surcharge, and six 400,000-wide slabs from 0% to 25% topped by an
// unbounded 30% slab.
func DefaultTaxConfig() TaxConfig {
	slab := decimal.NewFromInt(400000)
	return TaxConfig{
		StandardDeduction: decimal.NewFromInt(50000),
		SurchargeRate:     decimal.NewFromFloat(0.04),
		Brackets: []TaxBracket{
			{Width: slab, Rate: decimal.Zero},
			{Width: slab, Rate: decimal.NewFromFloat(0.05)},
			{Width: slab, Rate: decimal.NewFromFloat(0.10)},
			{Width: slab, Rate: decimal.NewFromFloat(0.15)},
			{Width: slab, Rate: decimal.NewFromFloat(0.20)},
			{Width: slab, Rate: decimal.NewFromFloat(0.25)},
			{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.30)},
		},
	}
}

// ProjectionConfig carries the policy ceilings and fixed rates of the
// projection. It is plain data; the engine validates it at construction.
type ProjectionConfig struct {
	// SalaryCap is the hard ceiling on annual gross; hikes stop here.
	SalaryCap decimal.Decimal `yaml:"salary_cap" json:"salaryCap"`
	// MonthlyInvestmentCap bounds the monthly contribution.
	MonthlyInvestmentCap decimal.Decimal `yaml:"monthly_investment_cap" json:"monthlyInvestmentCap"`
	// AnnualHikeRate is the year-over-year salary growth as a fraction
	// (0.05 means 5%).
	AnnualHikeRate decimal.Decimal `yaml:"annual_hike_rate" json:"annualHikeRate"`
	// MonthlyFixedCharge is the flat statutory charge per month.
	MonthlyFixedCharge decimal.Decimal `yaml:"monthly_fixed_charge" json:"monthlyFixedCharge"`
}

// DefaultProjectionConfig returns the built-in policy values.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		SalaryCap:            decimal.NewFromInt(5000000),
		MonthlyInvestmentCap: decimal.NewFromInt(100000),
		AnnualHikeRate:       decimal.NewFromFloat(0.05),
		MonthlyFixedCharge:   decimal.NewFromInt(200),
	}
}

// ProjectionInput are the caller-supplied scalars for one projection run.
type ProjectionInput struct {
	StartGross             decimal.Decimal `yaml:"start_gross" json:"startGross"`
	Years                  int             `yaml:"years" json:"years"`
	StartMonthlyInvestment decimal.Decimal `yaml:"start_monthly_investment" json:"startMonthlyInvestment"`
	// InvestmentHikePercent grows the monthly contribution each year, as a
	// percentage (10 means 10%).
	InvestmentHikePercent  decimal.Decimal `yaml:"investment_hike_percent" json:"investmentHikePercent"`
	ExpectedReturnRate     decimal.Decimal `yaml:"expected_return_rate" json:"expectedReturnRate"`
	OtherDeductionsMonthly decimal.Decimal `yaml:"other_deductions_monthly" json:"otherDeductionsMonthly"`
}

// Scenario is a named projection input inside a configuration file.
type Scenario struct {
	Name            string `yaml:"name" json:"name"`
	ProjectionInput `yaml:",inline" json:"input"`
}

// Configuration is the top-level input file: optional tax and projection
// overrides plus the named scenarios to run.
type Configuration struct {
	Tax        *TaxConfig        `yaml:"tax,omitempty" json:"tax,omitempty"`
	Projection *ProjectionConfig `yaml:"projection,omitempty" json:"projection,omitempty"`
	Scenarios  []Scenario        `yaml:"scenarios" json:"scenarios"`
}

// TaxConfigOrDefault returns the configured tax regime, falling back to the
// built-in one when the section is absent.
func (c *Configuration) TaxConfigOrDefault() TaxConfig {
	if c.Tax != nil {
		return *c.Tax
	}
	return DefaultTaxConfig()
}

// ProjectionConfigOrDefault returns the configured projection policy,
// falling back to the built-in one when the section is absent.
func (c *Configuration) ProjectionConfigOrDefault() ProjectionConfig {
	if c.Projection != nil {
		return *c.Projection
	}
	return DefaultProjectionConfig()
}

// FindScenario returns the named scenario or an error listing what exists.
func (c *Configuration) FindScenario(name string) (*Scenario, error) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], nil
		}
	}
	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		names = append(names, s.Name)
	}
	return nil, fmt.Errorf("scenario %q not found (have %v)", name, names)
}
