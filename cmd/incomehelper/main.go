package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/compare"
	"github.com/avoleti/incomehelper/internal/config"
	"github.com/avoleti/incomehelper/internal/domain"
	"github.com/avoleti/incomehelper/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "incomehelper",
	Short: "Salary, tax and investment projection CLI",
	Long:  "Projects salary growth, slab taxes and compounding investments over multiple years",
}

// loadConfiguration parses and validates a YAML config file.
func loadConfiguration(path string) *domain.Configuration {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// buildEngine constructs the projection engine for a configuration,
// wiring the debug logger when requested.
func buildEngine(cfg *domain.Configuration, debugMode bool) *calculation.ProjectionEngine {
	taxCalc, err := calculation.NewTaxCalculator(cfg.TaxConfigOrDefault())
	if err != nil {
		log.Fatal(err)
	}
	engine, err := calculation.NewProjectionEngine(taxCalc, cfg.ProjectionConfigOrDefault())
	if err != nil {
		log.Fatal(err)
	}
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

// resolveScenario picks the named scenario, or the first one when no name
// is given.
func resolveScenario(cfg *domain.Configuration, name string) *domain.Scenario {
	if name == "" {
		return &cfg.Scenarios[0]
	}
	sc, err := cfg.FindScenario(name)
	if err != nil {
		log.Fatal(err)
	}
	return sc
}

// configFromFlags builds a single-scenario configuration out of the scalar
// flags, for running without a config file.
func configFromFlags(cmd *cobra.Command) *domain.Configuration {
	gross, _ := cmd.Flags().GetFloat64("gross")
	years, _ := cmd.Flags().GetInt("years")
	monthlyInvestment, _ := cmd.Flags().GetFloat64("monthly-investment")
	investmentHike, _ := cmd.Flags().GetFloat64("investment-hike")
	returnRate, _ := cmd.Flags().GetFloat64("return")
	otherDeductions, _ := cmd.Flags().GetFloat64("other-deductions")

	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{{
			Name: "adhoc",
			ProjectionInput: domain.ProjectionInput{
				StartGross:             decimal.NewFromFloat(gross),
				Years:                  years,
				StartMonthlyInvestment: decimal.NewFromFloat(monthlyInvestment),
				InvestmentHikePercent:  decimal.NewFromFloat(investmentHike),
				ExpectedReturnRate:     decimal.NewFromFloat(returnRate),
				OtherDeductionsMonthly: decimal.NewFromFloat(otherDeductions),
			},
		}},
	}
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		log.Fatal(err)
	}
	return cfg
}

// resolveInput loads the config file argument when present, otherwise
// falls back to the scalar flags.
func resolveInput(cmd *cobra.Command, args []string) *domain.Configuration {
	if len(args) > 0 {
		return loadConfiguration(args[0])
	}
	return configFromFlags(cmd)
}

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Run a projection scenario and emit a report",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveInput(cmd, args)

		debugMode, _ := cmd.Flags().GetBool("debug")
		engine := buildEngine(cfg, debugMode)

		scenarioName, _ := cmd.Flags().GetString("scenario")
		scenario := resolveScenario(cfg, scenarioName)

		records, err := engine.RunProjection(scenario.ProjectionInput)
		if err != nil {
			log.Fatal(err)
		}

		report := &domain.ProjectionReport{
			ScenarioName: scenario.Name,
			GeneratedAt:  time.Now(),
			Records:      records,
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unknown format %q (available: %s; aliases: %s)",
				outputFormat,
				strings.Join(output.AvailableFormatterNames(), ", "),
				strings.Join(output.AvailableFormatAliases(), ", "))
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath != "" {
			written, err := output.WriteFormatted(formatter, report, outputPath)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report saved to %s\n", written)
			return
		}

		data, err := formatter.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Print summary analytics for a scenario",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveInput(cmd, args)

		debugMode, _ := cmd.Flags().GetBool("debug")
		engine := buildEngine(cfg, debugMode)

		scenarioName, _ := cmd.Flags().GetString("scenario")
		scenario := resolveScenario(cfg, scenarioName)

		records, err := engine.RunProjection(scenario.ProjectionInput)
		if err != nil {
			log.Fatal(err)
		}
		analysis, err := calculation.AnalyzeProjection(records)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Scenario: %s (%d years)\n\n", scenario.Name, analysis.Years)
		fmt.Printf("Total invested:   %s\n", analysis.TotalInvested.StringFixed(0))
		fmt.Printf("Final value:      %s\n", analysis.FinalValue.StringFixed(0))
		fmt.Printf("Total gain:       %s\n", analysis.TotalGain.StringFixed(0))
		fmt.Printf("Total tax paid:   %s\n", analysis.TotalTaxPaid.StringFixed(0))
		fmt.Printf("Investment CAGR:  %s%%\n", analysis.InvestmentCAGR.StringFixed(2))
		fmt.Printf("Portfolio CAGR:   %s%%\n", analysis.ReturnsCAGR.StringFixed(2))
		if analysis.BreakEvenYear > 0 {
			fmt.Printf("First profitable year: %d\n", analysis.BreakEvenYear)
		}
		fmt.Printf("Best net-salary year:  %d\n", analysis.MaxNetSalaryYear)

		fmt.Printf("\n%-22s %14s %14s %14s %14s\n", "Metric", "Mean", "StdDev", "Min", "Max")
		for _, col := range analysis.Columns {
			st := analysis.Stats[col]
			fmt.Printf("%-22s %14s %14s %14s %14s\n", col,
				st.Mean.StringFixed(2), st.StdDev.StringFixed(2),
				st.Min.StringFixed(2), st.Max.StringFixed(2))
		}

		fmt.Printf("\n%-6s %14s %12s %12s %12s %12s\n",
			"Year", "YearlyReturn", "SalaryHike%", "InvestHike%", "Savings", "EffTax%")
		for _, d := range analysis.Derived {
			fmt.Printf("%-6d %14s %12s %12s %12s %12s\n", d.Year,
				d.YearlyReturn.StringFixed(0), d.SalaryHikePct.StringFixed(2),
				d.InvestHikePct.StringFixed(2), d.SavingsRate.StringFixed(4),
				d.EffectiveTaxRatePct.StringFixed(2))
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare a base scenario against alternatives",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfiguration(args[0])

		baseScenarioName, _ := cmd.Flags().GetString("base")
		withStr, _ := cmd.Flags().GetString("with")
		outputFormat, _ := cmd.Flags().GetString("format")

		if baseScenarioName == "" {
			log.Fatal("--base flag is required to specify the base scenario name")
		}
		if withStr == "" {
			log.Fatal("--with flag is required to specify alternative scenario names")
		}

		var alternatives []string
		for _, name := range strings.Split(withStr, ",") {
			if name = strings.TrimSpace(name); name != "" {
				alternatives = append(alternatives, name)
			}
		}
		if len(alternatives) == 0 {
			log.Fatal("no valid scenario names specified in --with flag")
		}

		debugMode, _ := cmd.Flags().GetBool("debug")
		engine := buildEngine(cfg, debugMode)

		compareEngine := compare.NewCompareEngine(engine)
		comparisonSet, err := compareEngine.Compare(context.Background(), cfg, compare.CompareOptions{
			BaseScenarioName: baseScenarioName,
			Alternatives:     alternatives,
		})
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
		comparisonSet.ConfigPath = args[0]

		switch strings.ToLower(outputFormat) {
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)
		case "table", "console", "":
			fmt.Print((&compare.TableFormatter{}).Format(comparisonSet))
		default:
			log.Fatalf("unknown format %q (table, csv, json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfiguration(args[0])
		fmt.Printf("%s is valid (%d scenarios)\n", args[0], len(cfg.Scenarios))
		for _, sc := range cfg.Scenarios {
			fmt.Printf("  - %s: %d years starting at %s\n",
				sc.Name, sc.Years, sc.StartGross.StringFixed(0))
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "incomehelper %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("scenario", "", "Scenario name to run (default: first in file)")
	cmd.Flags().Bool("debug", false, "Enable debug output for per-year calculations")
	cmd.Flags().Float64("gross", 0, "Starting gross annual salary (when no input file)")
	cmd.Flags().Int("years", 0, "Number of years to project (when no input file)")
	cmd.Flags().Float64("monthly-investment", 0, "Starting monthly investment (when no input file)")
	cmd.Flags().Float64("investment-hike", 0, "Yearly investment increase percent (when no input file)")
	cmd.Flags().Float64("return", 0, "Expected annual return percent (when no input file)")
	cmd.Flags().Float64("other-deductions", 0, "Other monthly deductions (when no input file)")
}

func main() {
	addRunFlags(projectCmd)
	projectCmd.Flags().StringP("format", "f", "console", "Output format (console, text, detailed-csv, html, json)")
	projectCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")

	addRunFlags(analyzeCmd)

	compareCmd.Flags().String("base", "", "Base scenario name to compare against (required)")
	compareCmd.Flags().String("with", "", "Comma-separated list of scenario names to compare (required)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for per-year calculations")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
