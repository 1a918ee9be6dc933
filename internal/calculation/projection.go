package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avoleti/incomehelper/internal/domain"
)

// Policy constants of the salary breakdown. These are deliberate fixed
// allocations, not user configuration.
var (
	// basicShare is the basic-salary share of gross.
	basicShare = decimal.NewFromFloat(0.40)
	// contributionRate is the statutory contribution rate on basic, applied
	// once for the employee and once for the employer.
	contributionRate = decimal.NewFromFloat(0.12)
	// highInvestThreshold is the invest-percentage above which a year is
	// remarked "High" instead of "Good".
	highInvestThreshold = decimal.NewFromInt(40)

	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// simulationState is the mutable state of a single projection run. It is
// owned exclusively by that run and discarded when the final record has
// been emitted.
type simulationState struct {
	grossAnnual        decimal.Decimal
	monthlyInvestment  decimal.Decimal
	runningInvestTotal decimal.Decimal
	cumulativeValue    decimal.Decimal
}

// ProjectionEngine advances a simulation one year at a time: salary
// breakdown, deductions, net pay, capped monthly investment and the
// compounding portfolio value. The engine itself is immutable and safe to
// share across concurrent runs; each run owns its own state.
type ProjectionEngine struct {
	TaxCalc *TaxCalculator
	Config  domain.ProjectionConfig

	logger Logger
}

// NewProjectionEngine builds a ProjectionEngine, validating the projection
// config.
func NewProjectionEngine(taxCalc *TaxCalculator, cfg domain.ProjectionConfig) (*ProjectionEngine, error) {
	if taxCalc == nil {
		return nil, fmt.Errorf("tax calculator is required")
	}
	if cfg.SalaryCap.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("salary cap must be positive: %s", cfg.SalaryCap)
	}
	if cfg.MonthlyInvestmentCap.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("monthly investment cap must be positive: %s", cfg.MonthlyInvestmentCap)
	}
	if cfg.AnnualHikeRate.IsNegative() {
		return nil, fmt.Errorf("annual hike rate cannot be negative: %s", cfg.AnnualHikeRate)
	}
	if cfg.MonthlyFixedCharge.IsNegative() {
		return nil, fmt.Errorf("monthly fixed charge cannot be negative: %s", cfg.MonthlyFixedCharge)
	}
	return &ProjectionEngine{TaxCalc: taxCalc, Config: cfg, logger: NopLogger{}}, nil
}

// SetLogger replaces the engine's logger (NopLogger by default).
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	pe.logger = l
}

// ValidateInput checks the caller-supplied scalars for a run. A
// non-positive year count is rejected here rather than yielding an empty
// sequence.
func ValidateInput(in domain.ProjectionInput) error {
	if in.Years <= 0 {
		return fmt.Errorf("years must be a positive integer: %d", in.Years)
	}
	if in.StartGross.IsNegative() {
		return fmt.Errorf("starting gross salary cannot be negative: %s", in.StartGross)
	}
	if in.StartMonthlyInvestment.IsNegative() {
		return fmt.Errorf("starting monthly investment cannot be negative: %s", in.StartMonthlyInvestment)
	}
	if in.OtherDeductionsMonthly.IsNegative() {
		return fmt.Errorf("other monthly deductions cannot be negative: %s", in.OtherDeductionsMonthly)
	}
	return nil
}

// projectYear computes one year's record from the current state and
// advances the running totals. Intermediate math is full precision; rounding
// happens once, when the record is built.
func (pe *ProjectionEngine) projectYear(st *simulationState, expectedReturn, otherDeductionsMonthly decimal.Decimal) domain.YearlyRecord {
	gross := st.grossAnnual

	basic := gross.Mul(basicShare)
	employeeContrib := basic.Mul(contributionRate)
	employerContrib := basic.Mul(contributionRate)
	fixedChargeYearly := pe.Config.MonthlyFixedCharge.Mul(twelve)

	taxYearly := pe.TaxCalc.ComputeTax(gross)

	commonDedYearly := employeeContrib.Add(employerContrib).Add(fixedChargeYearly)
	commonDedMonthly := commonDedYearly.Div(twelve)

	netYearly := gross.Sub(taxYearly)
	netMonthly := netYearly.Div(twelve)
	grossMonthly := gross.Div(twelve)
	taxMonthly := taxYearly.Div(twelve)

	monthlyInvest := decimal.Min(st.monthlyInvestment, pe.Config.MonthlyInvestmentCap)

	salaryLeftMonthly := netMonthly.Sub(monthlyInvest).Sub(commonDedMonthly).Sub(otherDeductionsMonthly)

	investPct := decimal.Zero
	if netMonthly.GreaterThan(decimal.Zero) {
		investPct = monthlyInvest.Div(netMonthly).Mul(hundred)
	}

	investedYearly := monthlyInvest.Mul(twelve)
	st.runningInvestTotal = st.runningInvestTotal.Add(investedYearly)

	// Contributions land at the start of the year and the whole balance
	// compounds for the full year.
	growth := one.Add(expectedReturn.Div(hundred))
	st.cumulativeValue = st.cumulativeValue.Add(investedYearly).Mul(growth)

	returnPct := decimal.Zero
	if st.runningInvestTotal.GreaterThan(decimal.Zero) {
		returnPct = st.cumulativeValue.Sub(st.runningInvestTotal).Div(st.runningInvestTotal).Mul(hundred)
	}

	remarks := "Good"
	if investPct.GreaterThan(highInvestThreshold) {
		remarks = "High"
	}

	return domain.YearlyRecord{
		GrossYearly:             gross.Round(0),
		GrossMonthly:            grossMonthly.Round(0),
		TaxYearly:               taxYearly.Round(0),
		TaxMonthly:              taxMonthly.Round(0),
		NetYearly:               netYearly.Round(0),
		NetMonthly:              netMonthly.Round(0),
		CommonDeductionsMonthly: commonDedMonthly.Round(0),
		OtherDeductionsMonthly:  otherDeductionsMonthly.Round(0),
		TotalInvestedYearly:     investedYearly.Round(0),
		MonthlyInvestment:       monthlyInvest.Round(0),
		SalaryLeftMonthly:       salaryLeftMonthly.Round(0),
		InvestPercentage:        investPct.Round(2),
		Remarks:                 remarks,
		RunningInvestTotal:      st.runningInvestTotal.Round(0),
		CumulativeValue:         st.cumulativeValue.Round(0),
		ReturnPercentage:        returnPct.Round(2),
	}
}

// RunProjection runs the multi-year projection and returns one record per
// year, in order. Years are computed strictly sequentially since each year
// depends on the previous year's running totals.
func (pe *ProjectionEngine) RunProjection(in domain.ProjectionInput) ([]domain.YearlyRecord, error) {
	if err := ValidateInput(in); err != nil {
		return nil, fmt.Errorf("invalid projection input: %w", err)
	}

	st := &simulationState{
		grossAnnual:        in.StartGross,
		monthlyInvestment:  in.StartMonthlyInvestment,
		runningInvestTotal: decimal.Zero,
		cumulativeValue:    decimal.Zero,
	}

	hikeFactor := one.Add(pe.Config.AnnualHikeRate)
	investHikeFactor := one.Add(in.InvestmentHikePercent.Div(hundred))

	records := make([]domain.YearlyRecord, 0, in.Years)
	for year := 1; year <= in.Years; year++ {
		rec := pe.projectYear(st, in.ExpectedReturnRate, in.OtherDeductionsMonthly)
		rec.Year = year
		records = append(records, rec)

		pe.logger.Debugf("year %d: gross=%s net=%s invested=%s value=%s",
			year, rec.GrossYearly, rec.NetYearly, rec.RunningInvestTotal, rec.CumulativeValue)

		// Hikes apply to next year's state; both caps are hard ceilings.
		st.grossAnnual = decimal.Min(st.grossAnnual.Mul(hikeFactor), pe.Config.SalaryCap)
		st.monthlyInvestment = decimal.Min(st.monthlyInvestment.Mul(investHikeFactor), pe.Config.MonthlyInvestmentCap)
	}

	return records, nil
}
