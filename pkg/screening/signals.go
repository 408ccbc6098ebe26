package screening

// phraseRule is one listing-text pattern with its severity contribution.
// The scan is a case-insensitive substring match over the description.
type phraseRule struct {
	Phrase      string
	Description string
	Severity    int
}

var phraseRules = []phraseRule{
	{Phrase: "renovierungsbedürftig", Description: "needs renovation", Severity: 2},
	{Phrase: "sanierungsbedürftig", Description: "needs refurbishment", Severity: 2},
	{Phrase: "sanierungsstau", Description: "deferred maintenance backlog", Severity: 2},
	{Phrase: "handwerkerobjekt", Description: "fixer-upper", Severity: 2},
	{Phrase: "ausbau", Description: "unfinished expansion potential", Severity: 2},
	{Phrase: "rohbau", Description: "structural shell only", Severity: 2},
	{Phrase: "kernsaniert werden", Description: "requires gut renovation", Severity: 2},
	{Phrase: "aus altersgründen", Description: "age-related sale, often long-deferred maintenance", Severity: 1},
	{Phrase: "altersbedingt", Description: "age-related sale, often long-deferred maintenance", Severity: 1},
	{Phrase: "nur an selbstnutzer", Description: "restricted to owner-occupiers", Severity: 3},
	{Phrase: "nur eigennutzung", Description: "restricted to owner-occupiers", Severity: 3},
	{Phrase: "keine besichtigung", Description: "no viewing possible", Severity: 5},
	{Phrase: "denkmalschutz", Description: "listed building, renovation constraints", Severity: 2},
	{Phrase: "denkmalgeschützt", Description: "listed building, renovation constraints", Severity: 2},
	{Phrase: "milieuschutz", Description: "neighbourhood protection statute limits modernization", Severity: 2},
	{Phrase: "erhaltungssatzung", Description: "preservation statute limits modernization", Severity: 2},
	{Phrase: "erbpacht", Description: "leasehold, land is not part of the purchase", Severity: 5},
	{Phrase: "erbbaurecht", Description: "leasehold, land is not part of the purchase", Severity: 5},
}

// detectSignals scans the lowercased description against the phrase table and
// the data-dependent legacy-tenant rule. Every matched phrase contributes its
// own signal; the caller caps the total severity.
func detectSignals(p Property, policy Policy, text string) ([]Signal, int) {
	var signals []Signal
	severity := 0

	if text == "" {
		return signals, severity
	}

	for _, rule := range phraseRules {
		if !containsAny(text, []string{rule.Phrase}) {
			continue
		}
		signals = append(signals, Signal{Phrase: rule.Phrase, Description: rule.Description, Severity: rule.Severity})
		severity += rule.Severity
	}

	// Sitting tenants at a rent far below market cannot realistically be
	// raised; the listing yield is then locked in, not a starting point.
	if containsAny(text, []string{"altmieter"}) && p.MonthlyRent > 0 && p.LivingArea > 0 {
		if p.MonthlyRent/p.LivingArea < policy.LowLegacyRentPerSqm {
			signals = append(signals, Signal{
				Phrase:      "altmieter",
				Description: "legacy tenant with rent locked below market level",
				Severity:    2,
			})
			severity += 2
		}
	}

	return signals, severity
}
