package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSignalsPhrases(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name             string
		description      string
		expectedSeverity int
		expectedSignals  int
	}{
		{"Single renovation phrase", "Objekt ist renovierungsbedürftig", 2, 1},
		{"Age-related sale", "Verkauf aus Altersgründen", 1, 1},
		{"Owner-occupier restriction", "Verkauf nur an Selbstnutzer", 3, 1},
		{"No viewing is critical on its own", "Keine Besichtigung möglich", 5, 1},
		{"Listed building", "Objekt steht unter Denkmalschutz", 2, 1},
		{"Neighbourhood protection", "Lage im Milieuschutzgebiet", 2, 1},
		{"Multiple phrases accumulate", "Sanierungsstau, Verkauf aus Altersgründen, keine Besichtigung", 8, 3},
		{"Clean listing", "Moderne Wohnung mit Einbauküche", 0, 0},
		{"Empty description", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Screen(Property{
				PurchasePrice: 250000,
				LivingArea:    70,
				Description:   tt.description,
			}, policy)
			assert.Equal(t, tt.expectedSeverity, result.Severity)
			assert.Len(t, result.Signals, tt.expectedSignals)
		})
	}
}

func TestDetectSignalsSeverityCap(t *testing.T) {
	result := Screen(Property{
		PurchasePrice: 250000,
		LivingArea:    70,
		Description: "Renovierungsbedürftiges Handwerkerobjekt mit Sanierungsstau, " +
			"keine Besichtigung, nur an Selbstnutzer, Denkmalschutz",
	}, DefaultPolicy())

	assert.Equal(t, 10, result.Severity, "severity is capped")
	assert.True(t, result.Critical)
}

func TestDetectSignalsCriticalThreshold(t *testing.T) {
	below := Screen(Property{
		PurchasePrice: 250000,
		Description:   "Objekt ist sanierungsbedürftig, Verkauf altersbedingt",
	}, DefaultPolicy())
	assert.Equal(t, 3, below.Severity)
	assert.False(t, below.Critical)

	at := Screen(Property{
		PurchasePrice: 250000,
		Description:   "Keine Besichtigung möglich",
	}, DefaultPolicy())
	assert.Equal(t, 5, at.Severity)
	assert.True(t, at.Critical)
}

func TestDetectSignalsLegacyTenant(t *testing.T) {
	policy := DefaultPolicy()

	t.Run("Low rent with sitting tenant", func(t *testing.T) {
		result := Screen(Property{
			PurchasePrice: 250000,
			LivingArea:    100,
			MonthlyRent:   450,
			Description:   "Vermietet an Altmieter",
		}, policy)
		require.NotEmpty(t, result.Signals)
		assert.Equal(t, 2, result.Severity)
	})

	t.Run("Market rent with sitting tenant is fine", func(t *testing.T) {
		result := Screen(Property{
			PurchasePrice: 250000,
			LivingArea:    100,
			MonthlyRent:   900,
			Description:   "Vermietet an Altmieter",
		}, policy)
		assert.Empty(t, result.Signals)
		assert.Zero(t, result.Severity)
	})

	t.Run("No rent data skips the rule", func(t *testing.T) {
		result := Screen(Property{
			PurchasePrice: 250000,
			LivingArea:    100,
			Description:   "Vermietet an Altmieter",
		}, policy)
		assert.Empty(t, result.Signals)
	})
}
