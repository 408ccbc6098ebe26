// Package financing provides the single-period financing calculations: the
// cashflow snapshot for a property purchase under given loan terms, derived
// investment metrics, and the break-even equity solver.
package financing

import (
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
)

// Input holds the parameters of a single cashflow computation. All rates are
// annual percentages.
type Input struct {
	PurchasePrice    float64
	MonthlyRent      float64
	MonthlyCosts     float64
	Equity           float64
	InterestRate     float64
	AmortizationRate float64
}

// Snapshot is the derived single-period financing picture. EquityYield is nil
// when equity is zero; it is undefined there, not zero.
type Snapshot struct {
	Fault *fault.Fault `json:"fault,omitempty"`

	LoanAmount       float64  `json:"loanAmount"`
	Equity           float64  `json:"equity"`
	FinancedShare    float64  `json:"financedShare"`
	InterestRate     float64  `json:"interestRate"`
	AmortizationRate float64  `json:"amortizationRate"`
	AnnuityRate      float64  `json:"annuityRate"`
	AnnualPayment    float64  `json:"annualPayment"`
	MonthlyPayment   float64  `json:"monthlyPayment"`
	MonthlyRent      float64  `json:"monthlyRent"`
	MonthlyCosts     float64  `json:"monthlyCosts"`
	MonthlyCashflow  float64  `json:"monthlyCashflow"`
	AnnualCashflow   float64  `json:"annualCashflow"`
	GrossYield       float64  `json:"grossYield"`
	NetYield         float64  `json:"netYield"`
	EquityYield      *float64 `json:"equityYield,omitempty"`
	SelfSustaining   bool     `json:"selfSustaining"`
	CashflowPositive bool     `json:"cashflowPositive"`
	Rating           string   `json:"rating"`
	Score            float64  `json:"score"`
}

// Validate reports the first structural problem with the input, or nil.
func (in Input) Validate() *fault.Fault {
	switch {
	case in.PurchasePrice <= 0:
		return fault.Invalid("purchase price must be positive, got %.2f", in.PurchasePrice)
	case in.MonthlyRent < 0:
		return fault.Invalid("monthly rent must not be negative, got %.2f", in.MonthlyRent)
	case in.MonthlyCosts < 0:
		return fault.Invalid("monthly costs must not be negative, got %.2f", in.MonthlyCosts)
	case in.Equity < 0:
		return fault.Invalid("equity must not be negative, got %.2f", in.Equity)
	case in.Equity > in.PurchasePrice:
		return fault.Invalid("equity %.2f exceeds purchase price %.2f", in.Equity, in.PurchasePrice)
	case in.InterestRate < 0:
		return fault.Invalid("interest rate must not be negative, got %.2f", in.InterestRate)
	case in.AmortizationRate < 0:
		return fault.Invalid("amortization rate must not be negative, got %.2f", in.AmortizationRate)
	}
	return nil
}

// ComputeCashflow derives the financing snapshot for the given input. Invalid
// inputs produce a snapshot carrying a fault instead of an error return so
// batch scenario and sensitivity generation can flag single cells.
func ComputeCashflow(in Input, bands RatingBands) Snapshot {
	if f := in.Validate(); f != nil {
		return Snapshot{Fault: f}
	}
	if len(bands) == 0 {
		bands = DefaultRatingBands()
	}

	loan := in.PurchasePrice - in.Equity
	annuityRate := in.InterestRate + in.AmortizationRate
	annualPayment := loan * annuityRate / constants.PercentageMultiplier
	monthlyPayment := annualPayment / constants.MonthsPerYear

	monthlyCashflow := in.MonthlyRent - monthlyPayment - in.MonthlyCosts
	annualCashflow := monthlyCashflow * constants.MonthsPerYear

	grossYield := in.MonthlyRent * constants.MonthsPerYear / in.PurchasePrice * constants.PercentageMultiplier
	netYield := (in.MonthlyRent - in.MonthlyCosts) * constants.MonthsPerYear / in.PurchasePrice * constants.PercentageMultiplier

	var equityYield *float64
	if in.Equity > 0 {
		y := annualCashflow / in.Equity * constants.PercentageMultiplier
		equityYield = &y
	}

	rating, score := bands.Classify(monthlyCashflow)

	return Snapshot{
		LoanAmount:       mathutil.Round(loan),
		Equity:           mathutil.Round(in.Equity),
		FinancedShare:    mathutil.RoundPercent(loan / in.PurchasePrice * constants.PercentageMultiplier),
		InterestRate:     in.InterestRate,
		AmortizationRate: in.AmortizationRate,
		AnnuityRate:      annuityRate,
		AnnualPayment:    mathutil.Round(annualPayment),
		MonthlyPayment:   mathutil.Round(monthlyPayment),
		MonthlyRent:      mathutil.Round(in.MonthlyRent),
		MonthlyCosts:     mathutil.Round(in.MonthlyCosts),
		MonthlyCashflow:  mathutil.Round(monthlyCashflow),
		AnnualCashflow:   mathutil.Round(annualCashflow),
		GrossYield:       mathutil.RoundPercent(grossYield),
		NetYield:         mathutil.RoundPercent(netYield),
		EquityYield:      mathutil.RoundPtr(equityYield),
		SelfSustaining:   monthlyCashflow >= 0,
		CashflowPositive: monthlyCashflow > 0,
		Rating:           rating,
		Score:            score,
	}
}
