// Package marketdata provides reference figures for German residential
// markets: typical purchase prices per square metre and gross yields for the
// covered cities, plus the national average band. The static provider is the
// only implementation; the interface exists so a live data source can be
// dropped in later.
package marketdata

import (
	"strings"

	"go.uber.org/zap"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/mathutil"
)

// CityMarket is the reference record for one city.
type CityMarket struct {
	City              string  `json:"city"`
	PricePerSqm       float64 `json:"pricePerSqm"`
	PriceTrend        string  `json:"priceTrend"`
	TypicalGrossYield float64 `json:"typicalGrossYield"`
}

// NationalAverage is the purchase-price band across all covered markets.
type NationalAverage struct {
	PricePerSqmLow  float64 `json:"pricePerSqmLow"`
	PricePerSqmHigh float64 `json:"pricePerSqmHigh"`
	RentPerSqmLow   float64 `json:"rentPerSqmLow"`
	RentPerSqmHigh  float64 `json:"rentPerSqmHigh"`
}

// Provider resolves market reference data for a city.
type Provider interface {
	Lookup(city string) (CityMarket, bool)
	EstimateMonthlyRent(city string, livingArea float64) float64
	National() NationalAverage
}

// StaticProvider serves the built-in reference tables.
type StaticProvider struct {
	logger  *zap.Logger
	markets map[string]CityMarket
}

// NewStaticProvider returns a provider backed by the built-in tables. A nil
// logger falls back to a no-op logger.
func NewStaticProvider(logger *zap.Logger) *StaticProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaticProvider{
		logger: logger,
		markets: map[string]CityMarket{
			"muenchen":  {City: "München", PricePerSqm: 9000, PriceTrend: "stable", TypicalGrossYield: 2.8},
			"berlin":    {City: "Berlin", PricePerSqm: 5840, PriceTrend: "+1.6%", TypicalGrossYield: 3.0},
			"hamburg":   {City: "Hamburg", PricePerSqm: 5500, PriceTrend: "+0.4%", TypicalGrossYield: 3.2},
			"frankfurt": {City: "Frankfurt", PricePerSqm: 5200, PriceTrend: "stable", TypicalGrossYield: 3.4},
			"leipzig":   {City: "Leipzig", PricePerSqm: 3000, PriceTrend: "+2.9%", TypicalGrossYield: 4.5},
		},
	}
}

// Lookup resolves the reference record for a city. Lookups are
// case-insensitive and tolerate both umlaut and transliterated spellings.
func (p *StaticProvider) Lookup(city string) (CityMarket, bool) {
	market, ok := p.markets[normalizeCity(city)]
	if !ok && city != "" {
		p.logger.Debug("no market data for city",
			zap.String("op", "marketdata.Lookup"),
			zap.String("city", city),
		)
	}
	return market, ok
}

// EstimateMonthlyRent derives an expected cold rent from the city's price
// level and typical gross yield. Unknown cities yield zero, which callers
// treat as "no estimate available".
func (p *StaticProvider) EstimateMonthlyRent(city string, livingArea float64) float64 {
	market, ok := p.Lookup(city)
	if !ok || livingArea <= 0 {
		return 0
	}
	annualPerSqm := market.PricePerSqm * market.TypicalGrossYield / constants.PercentageMultiplier
	return mathutil.Round(livingArea * annualPerSqm / float64(constants.MonthsPerYear))
}

// National returns the national average purchase-price and rent bands.
func (p *StaticProvider) National() NationalAverage {
	return NationalAverage{
		PricePerSqmLow:  3260,
		PricePerSqmHigh: 4250,
		RentPerSqmLow:   11.20,
		RentPerSqmHigh:  12.40,
	}
}

var umlautReplacer = strings.NewReplacer("ü", "ue", "ö", "oe", "ä", "ae", "ß", "ss")

func normalizeCity(city string) string {
	return umlautReplacer.Replace(strings.ToLower(strings.TrimSpace(city)))
}
