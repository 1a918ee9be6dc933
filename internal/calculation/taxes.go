package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avoleti/incomehelper/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Slabs are applied to taxable income (gross minus the standard
//    deduction) in table order; each slab taxes at most its width.
// 2. The final slab is unbounded so arbitrarily large incomes are fully
//    covered; NewTaxCalculator rejects tables without an unbounded final
//    slab since a bounded table would silently leave income untaxed.
// 3. The surcharge is a flat percentage added once on the total slab tax,
//    not compounded per slab.
// 4. No jurisdictional correctness is implied; the table is whatever the
//    caller configures.

// TaxCalculator computes income tax from a progressive slab table with a
// standard deduction and a flat surcharge. It is immutable after
// construction and safe for concurrent use.
type TaxCalculator struct {
	StandardDeduction decimal.Decimal
	SurchargeRate     decimal.Decimal
	Brackets          []domain.TaxBracket
}

// NewTaxCalculator builds a TaxCalculator from config, validating it.
// Construction either succeeds with a fully valid configuration or fails
// before any computation runs.
func NewTaxCalculator(cfg domain.TaxConfig) (*TaxCalculator, error) {
	if cfg.StandardDeduction.IsNegative() {
		return nil, fmt.Errorf("standard deduction cannot be negative: %s", cfg.StandardDeduction)
	}
	if cfg.SurchargeRate.IsNegative() || cfg.SurchargeRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("surcharge rate must be between 0 and 1: %s", cfg.SurchargeRate)
	}
	if len(cfg.Brackets) == 0 {
		return nil, fmt.Errorf("at least one tax bracket is required")
	}
	for i, b := range cfg.Brackets {
		if b.Rate.IsNegative() {
			return nil, fmt.Errorf("bracket %d: rate cannot be negative: %s", i, b.Rate)
		}
		if b.Width.IsNegative() {
			return nil, fmt.Errorf("bracket %d: width cannot be negative: %s", i, b.Width)
		}
		last := i == len(cfg.Brackets)-1
		if last && !b.Unbounded() {
			return nil, fmt.Errorf("final bracket must be unbounded (zero width); got width %s", b.Width)
		}
		if !last && b.Unbounded() {
			return nil, fmt.Errorf("bracket %d: only the final bracket may be unbounded", i)
		}
	}

	brackets := make([]domain.TaxBracket, len(cfg.Brackets))
	copy(brackets, cfg.Brackets)
	return &TaxCalculator{
		StandardDeduction: cfg.StandardDeduction,
		SurchargeRate:     cfg.SurchargeRate,
		Brackets:          brackets,
	}, nil
}

// MustNewTaxCalculator is NewTaxCalculator for known-good configs such as
// domain.DefaultTaxConfig; it panics on validation failure.
func MustNewTaxCalculator(cfg domain.TaxConfig) *TaxCalculator {
	tc, err := NewTaxCalculator(cfg)
	if err != nil {
		panic(err)
	}
	return tc
}

// ComputeTax returns the total tax payable, surcharge included, for a gross
// annual income. Negative income clamps to a zero taxable base; the
// function is pure and never errors.
func (tc *TaxCalculator) ComputeTax(grossAnnual decimal.Decimal) decimal.Decimal {
	taxable := grossAnnual.Sub(tc.StandardDeduction)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	remaining := taxable
	tax := decimal.Zero
	for _, b := range tc.Brackets {
		take := remaining
		if !b.Unbounded() {
			take = decimal.Min(remaining, b.Width)
		}
		if take.LessThanOrEqual(decimal.Zero) {
			break
		}
		tax = tax.Add(take.Mul(b.Rate))
		remaining = remaining.Sub(take)
	}

	// Flat surcharge on the computed slab tax.
	return tax.Add(tax.Mul(tc.SurchargeRate))
}

// EffectiveRate returns tax as a fraction of gross, zero for non-positive
// gross.
func (tc *TaxCalculator) EffectiveRate(grossAnnual decimal.Decimal) decimal.Decimal {
	if grossAnnual.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return tc.ComputeTax(grossAnnual).Div(grossAnnual)
}
