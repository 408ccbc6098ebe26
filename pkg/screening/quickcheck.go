package screening

import "strings"

// QuickCheckInput are the six coarse gates for the 30-second pre-screen.
type QuickCheckInput struct {
	GrossYield         float64
	PriceRentFactor    float64
	MonthlyCashflow    float64
	EnergyClass        string
	Leasehold          bool
	SocialHousingBound bool
}

// Check is one quick-check gate with its outcome.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// QuickCheck is the traffic-light summary of the six gates.
type QuickCheck struct {
	Checks       []Check `json:"checks"`
	Passed       int     `json:"passed"`
	Total        int     `json:"total"`
	TrafficLight string  `json:"trafficLight"`
	Verdict      string  `json:"verdict"`
}

// Quick-check gate thresholds.
const (
	quickCheckMinGrossYield   = 4.0
	quickCheckMaxFactor       = 25.0
	quickCheckGreenMinPassed  = 5
	quickCheckYellowMinPassed = 3
)

// RunQuickCheck evaluates the six gates and maps the pass count onto a
// traffic light: green at five or more, yellow at three or four, red below.
func RunQuickCheck(in QuickCheckInput) QuickCheck {
	class := strings.ToUpper(strings.TrimSpace(in.EnergyClass))
	checks := []Check{
		{Name: "gross yield at least 4%", Passed: in.GrossYield >= quickCheckMinGrossYield},
		{Name: "price-rent factor at most 25", Passed: in.PriceRentFactor > 0 && in.PriceRentFactor <= quickCheckMaxFactor},
		{Name: "cashflow not negative", Passed: in.MonthlyCashflow >= 0},
		{Name: "energy class better than G", Passed: class != "G" && class != "H"},
		{Name: "no leasehold", Passed: !in.Leasehold},
		{Name: "no social housing binding", Passed: !in.SocialHousingBound},
	}

	passed := 0
	for _, check := range checks {
		if check.Passed {
			passed++
		}
	}

	result := QuickCheck{Checks: checks, Passed: passed, Total: len(checks)}
	switch {
	case passed >= quickCheckGreenMinPassed:
		result.TrafficLight = "green"
		result.Verdict = "worth a closer look"
	case passed >= quickCheckYellowMinPassed:
		result.TrafficLight = "yellow"
		result.Verdict = "examine the failed gates before proceeding"
	default:
		result.TrafficLight = "red"
		result.Verdict = "does not meet the basic investment criteria"
	}
	return result
}
