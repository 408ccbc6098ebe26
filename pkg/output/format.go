// Package output provides utilities for formatting and displaying evaluation results.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"immo-analyzer/internal/evaluate"
	"immo-analyzer/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(e evaluate.Evaluation) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Evaluation %s ---\n", e.ID)
	fmt.Printf("Recommendation: %s\n", strings.ToUpper(e.Recommendation))
	for _, warning := range e.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}

	fmt.Printf("\n-- Screening --\n")
	if e.Screening.Investable {
		fmt.Printf("No disqualifying findings\n")
	}
	for _, reason := range e.Screening.Disqualifiers {
		fmt.Printf("NO-GO: %s\n", reason)
	}
	for _, warning := range e.Screening.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	for _, signal := range e.Screening.Signals {
		fmt.Printf("Signal (+%d): %q - %s\n", signal.Severity, signal.Phrase, signal.Description)
	}
	fmt.Printf("Warning severity: %d/10", e.Screening.Severity)
	if e.Screening.Critical {
		fmt.Printf(" (critical)")
	}
	fmt.Printf("\n")

	fmt.Printf("\n-- Quick check: %s (%d/%d) --\n", e.QuickCheck.TrafficLight, e.QuickCheck.Passed, e.QuickCheck.Total)
	for _, check := range e.QuickCheck.Checks {
		marker := "PASS"
		if !check.Passed {
			marker = "FAIL"
		}
		fmt.Printf("%s | %s\n", marker, check.Name)
	}

	fmt.Printf("\n-- Financing --\n")
	if e.RentEstimated {
		fmt.Printf("Rent estimated from market data: %s/month\n", format.Currency(e.EffectiveMonthlyRent))
	}
	fmt.Printf("Loan: %s (%s financed)\n", format.Currency(e.Cashflow.LoanAmount), format.Percent(e.Cashflow.FinancedShare))
	fmt.Printf("Monthly payment: %s | Monthly cashflow: %s (%s)\n",
		format.Currency(e.Cashflow.MonthlyPayment), format.Currency(e.Cashflow.MonthlyCashflow), e.Cashflow.Rating)
	fmt.Printf("Gross yield: %s | Net yield: %s", format.Percent(e.Cashflow.GrossYield), format.Percent(e.Cashflow.NetYield))
	if e.Cashflow.EquityYield != nil {
		fmt.Printf(" | Equity yield: %s", format.Percent(*e.Cashflow.EquityYield))
	}
	fmt.Printf("\n")
	if e.Metrics.Fault == nil {
		fmt.Printf("Price-rent factor: %.1f (%s)", e.Metrics.PriceRentFactor, e.Metrics.FactorRating)
		if e.Metrics.PricePerSqm != nil {
			fmt.Printf(" | Price per sqm: %s", format.Currency(*e.Metrics.PricePerSqm))
		}
		fmt.Printf("\n")
	}
	fmt.Printf("Break-even equity: %s (%s) - %s\n",
		format.Currency(e.BreakEven.RequiredEquity), format.Percent(e.BreakEven.EquityShare), e.BreakEven.Note)

	fmt.Printf("\n-- Projection (%d year(s)) --\n", len(e.Plan.Years))
	fmt.Printf("Year | Remaining debt | Cashflow/mo | Net worth\n")
	fmt.Printf("____ | ______________ | ___________ | _________\n")
	for _, year := range e.Plan.Years {
		_, _ = p.Printf("%4d | %14.2f | %11.2f | %9.2f\n",
			year.Year, year.RemainingDebt, year.MonthlyCashflow, year.NetWorth)
	}
	fmt.Printf("Total interest: %s | Final net worth: %s\n",
		format.Currency(e.Plan.Summary.TotalInterest), format.Currency(e.Plan.Summary.FinalNetWorth))
	if e.Plan.Summary.YearsToFullRepayment != nil {
		fmt.Printf("Loan fully repaid after %d years\n", *e.Plan.Summary.YearsToFullRepayment)
	}
	printMilestones(e)

	fmt.Printf("\n-- Scenarios --\n")
	for _, s := range e.Scenarios {
		fmt.Printf("%s: rate %s, cashflow %s/mo, final net worth %s\n",
			s.Definition.Name, format.Percent(s.EffectiveInterestRate),
			format.Currency(s.Cashflow.MonthlyCashflow), format.Currency(s.Plan.Summary.FinalNetWorth))
	}

	fmt.Printf("\n-- Sensitivity (monthly cashflow) --\n")
	fmt.Printf("rate \\ equity")
	for _, share := range e.Sensitivity.EquityShares {
		fmt.Printf(" | %6.0f%%", share)
	}
	fmt.Printf("\n")
	for i, rate := range e.Sensitivity.InterestRates {
		fmt.Printf("%12.2f%%", rate)
		for _, cell := range e.Sensitivity.Cells[i] {
			_, _ = p.Printf(" | %7.0f", cell.MonthlyCashflow)
		}
		fmt.Printf("\n")
	}

	fmt.Printf("\n-- Valuation --\n")
	if e.FairPrice.Fault == nil {
		fmt.Printf("Fair price estimate: %s (%s, deviation %s)\n",
			format.Currency(e.FairPrice.Blended), e.FairPrice.Verdict, format.Percent(e.FairPrice.DeviationPercent))
	}
	fmt.Printf("Closing costs: %s (%s) | Total acquisition: %s\n",
		format.Currency(e.ClosingCosts.Total), format.Percent(e.ClosingCosts.TotalRate),
		format.Currency(e.ClosingCosts.TotalAcquisitionCost))
	if e.Depreciation.Linear != nil {
		fmt.Printf("Linear depreciation: %s/year (%s over %d years)\n",
			format.Currency(e.Depreciation.Linear.Annual), format.Percent(e.Depreciation.Linear.Rate),
			e.Depreciation.Linear.DurationYears)
	}
	if e.Depreciation.DecliningBalance != nil {
		fmt.Printf("Declining balance available: advantage %s over %d years, switch in year %d\n",
			format.Currency(e.Depreciation.DecliningBalance.AdvantageVsLinear),
			e.Depreciation.DecliningBalance.ComparisonYears,
			e.Depreciation.DecliningBalance.RecommendedSwitchYear)
	}
	if e.Capitalization.Triggered {
		fmt.Printf("Capitalization threshold breached: %s must be depreciated over %d years\n",
			format.Currency(e.Capitalization.TotalCosts), e.Capitalization.ForcedYears)
	}

	fmt.Printf("\n-- Alternative investment (%s over %d years) --\n",
		format.Percent(e.Comparison.AnnualReturn), e.Comparison.HorizonYears)
	fmt.Printf("Property: %s | Alternative: %s | ",
		format.Currency(e.Comparison.PropertyFinalNetWorth), format.Currency(e.Comparison.AlternativeWithContributions))
	if e.Comparison.PropertyAhead {
		fmt.Printf("property ahead by %s\n", format.Currency(e.Comparison.AdvantageVsContributions))
	} else {
		fmt.Printf("alternative ahead by %s\n", format.Currency(-e.Comparison.AdvantageVsContributions))
	}

	if len(e.Subsidies) > 0 {
		fmt.Printf("\n-- Subsidy programs --\n")
		for _, match := range e.Subsidies {
			fmt.Printf("[%s] %s: %s\n", match.PriorityLabel, match.Name, match.Reason)
		}
	}
}

func printMilestones(e evaluate.Evaluation) {
	printYear := func(label string, year *int) {
		if year != nil {
			fmt.Printf("%s: year %d\n", label, *year)
		}
	}
	printYear("Loan 25% repaid", e.Milestones.LoanRepaid25)
	printYear("Loan 50% repaid", e.Milestones.LoanRepaid50)
	printYear("Loan 75% repaid", e.Milestones.LoanRepaid75)
	printYear("Loan fully repaid", e.Milestones.LoanRepaidFull)
	printYear("First positive cashflow", e.Milestones.FirstPositiveCashflow)
	printYear("Equity doubled", e.Milestones.EquityDoubled)

	thresholds := make([]int, 0, len(e.Milestones.NetWorth))
	for threshold := range e.Milestones.NetWorth {
		thresholds = append(thresholds, threshold)
	}
	sort.Ints(thresholds)
	for _, threshold := range thresholds {
		printYear(fmt.Sprintf("Net worth %s", format.Currency(float64(threshold))), e.Milestones.NetWorth[threshold])
	}
}

// CsvFormat outputs the projection table in comma-separated value format.
func CsvFormat(e evaluate.Evaluation) {
	fmt.Printf(`"year","remaining debt","principal to date","interest","principal","annual cashflow","monthly cashflow","property value","current rent","equity built","net worth"`)
	fmt.Printf("\n")
	for _, year := range e.Plan.Years {
		fmt.Printf(`"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			year.Year, year.RemainingDebt, year.PrincipalToDate, year.InterestYear, year.PrincipalYear,
			year.AnnualCashflow, year.MonthlyCashflow, year.PropertyValue, year.CurrentRent,
			year.EquityBuilt, year.NetWorth)
		fmt.Printf("\n")
	}
}

// JSONFormat outputs the complete evaluation as indented JSON.
func JSONFormat(e evaluate.Evaluation) error {
	encoded, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode evaluation: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
