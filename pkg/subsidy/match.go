package subsidy

import (
	"sort"
	"strings"
)

// Match evaluates every catalog program against the query and returns the
// eligible ones sorted by priority tier, highest first. The sort is stable,
// so catalog order breaks ties.
func (c Catalog) Match(q Query) []Match {
	var matches []Match
	for _, program := range c.Programs {
		match, ok := program.Evaluate(q)
		if !ok {
			continue
		}
		match.ProgramID = program.ID
		match.Name = program.Name
		match.PriorityLabel = match.Priority.String()
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority > matches[j].Priority
	})
	return matches
}

// energyClassOrder ranks classes from best to worst. Unknown or empty
// classes rank best so they never accidentally qualify for renovation
// programs.
var energyClassOrder = []string{"A+", "A", "B", "C", "D", "E", "F", "G", "H"}

func normalizeEnergyClass(class string) string {
	return strings.ToUpper(strings.TrimSpace(class))
}

func energyClassRank(class string) int {
	normalized := normalizeEnergyClass(class)
	for i, candidate := range energyClassOrder {
		if candidate == normalized {
			return i
		}
	}
	return -1
}

// energyClassAtOrBelow reports whether class is the given threshold class or
// worse.
func energyClassAtOrBelow(class, threshold string) bool {
	rank := energyClassRank(class)
	thresholdRank := energyClassRank(threshold)
	return rank >= 0 && thresholdRank >= 0 && rank >= thresholdRank
}
