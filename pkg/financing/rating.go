package financing

// RatingBand is one step of the monthly-cashflow rating function. Bands are
// evaluated in order; the first matching band wins. Strict bands match when
// the cashflow exceeds the threshold, inclusive bands when it reaches it.
type RatingBand struct {
	Threshold float64
	Inclusive bool
	Label     string
	Score     float64
}

// RatingBands is an ordered, descending set of rating bands plus an implicit
// fallback. It is injected policy, not hard-coded at call sites, so the
// thresholds can be tuned in configuration.
type RatingBands []RatingBand

// DefaultRatingBands returns the standard monthly-cashflow rating policy.
func DefaultRatingBands() RatingBands {
	return RatingBands{
		{Threshold: 150, Label: "excellent", Score: 95},
		{Threshold: 50, Label: "very good", Score: 85},
		{Threshold: 0, Label: "good", Score: 75},
		{Threshold: -100, Inclusive: true, Label: "acceptable", Score: 60},
		{Threshold: -200, Inclusive: true, Label: "moderate", Score: 45},
	}
}

// FallbackRating labels cashflows below every band.
const (
	FallbackRatingLabel = "low"
	FallbackRatingScore = 30
)

// Classify maps a monthly cashflow onto its rating label and score.
func (bands RatingBands) Classify(monthlyCashflow float64) (string, float64) {
	for _, band := range bands {
		if monthlyCashflow > band.Threshold || (band.Inclusive && monthlyCashflow == band.Threshold) {
			return band.Label, band.Score
		}
	}
	return FallbackRatingLabel, FallbackRatingScore
}
