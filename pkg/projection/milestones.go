package projection

import (
	"immo-analyzer/pkg/constants"
)

// NetWorthMilestoneThresholds are the absolute net-worth levels scanned for,
// in currency units.
var NetWorthMilestoneThresholds = []float64{100000, 250000, 500000}

// Milestones records the first year each threshold is reached. A nil entry
// means the milestone was not reached within the projected horizon.
type Milestones struct {
	LoanRepaid25          *int         `json:"loanRepaid25,omitempty"`
	LoanRepaid50          *int         `json:"loanRepaid50,omitempty"`
	LoanRepaid75          *int         `json:"loanRepaid75,omitempty"`
	LoanRepaidFull        *int         `json:"loanRepaidFull,omitempty"`
	FirstPositiveCashflow *int         `json:"firstPositiveCashflow,omitempty"`
	EquityDoubled         *int         `json:"equityDoubled,omitempty"`
	NetWorth              map[int]*int `json:"netWorth,omitempty"`
}

// ScanMilestones walks a plan forward and records the first occurrence of
// each milestone. Values are never overwritten once set.
func ScanMilestones(plan Plan) Milestones {
	milestones := Milestones{NetWorth: make(map[int]*int)}
	for _, threshold := range NetWorthMilestoneThresholds {
		milestones.NetWorth[int(threshold)] = nil
	}

	loan := plan.Summary.LoanAmount
	startingEquity := plan.Summary.StartingEquity

	for i := range plan.Years {
		row := plan.Years[i]
		year := row.Year

		if loan > 0 {
			repaidShare := row.PrincipalToDate / loan * constants.PercentageMultiplier
			setFirst(&milestones.LoanRepaid25, year, repaidShare >= 25)
			setFirst(&milestones.LoanRepaid50, year, repaidShare >= 50)
			setFirst(&milestones.LoanRepaid75, year, repaidShare >= 75)
			setFirst(&milestones.LoanRepaidFull, year, row.RemainingDebt <= 0)
		}

		setFirst(&milestones.FirstPositiveCashflow, year, row.MonthlyCashflow > 0)

		if startingEquity > 0 {
			setFirst(&milestones.EquityDoubled, year, row.EquityBuilt >= 2*startingEquity)
		}

		for _, threshold := range NetWorthMilestoneThresholds {
			key := int(threshold)
			if milestones.NetWorth[key] == nil && row.NetWorth >= threshold {
				y := year
				milestones.NetWorth[key] = &y
			}
		}
	}

	return milestones
}

func setFirst(target **int, year int, reached bool) {
	if *target == nil && reached {
		y := year
		*target = &y
	}
}
