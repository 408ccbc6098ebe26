// Package constants provides shared constants for the immo-analyzer application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Default financing assumptions, applied when the configuration leaves them
// unset. These reflect typical German mortgage terms.
const (
	// DefaultInterestRate is the default nominal annual interest rate in percent
	DefaultInterestRate = 3.75

	// DefaultAmortizationRate is the default annual amortization rate in percent
	DefaultAmortizationRate = 1.25

	// DefaultHorizonYears is the default projection horizon
	DefaultHorizonYears = 30

	// MilestoneHorizonYears is the horizon used for milestone scanning so
	// long-run milestones remain reachable
	MilestoneHorizonYears = 40

	// DefaultRentGrowthRate is the default annual rent growth in percent
	DefaultRentGrowthRate = 1.5

	// DefaultValueGrowthRate is the default annual property value growth in percent
	DefaultValueGrowthRate = 1.5

	// MinimumInterestRate is the floor applied to perturbed interest rates
	// so scenario and sensitivity runs never see non-physical rates
	MinimumInterestRate = 0.5
)

// Alternative-investment comparison constants
const (
	// ReferenceAnnualReturn is the assumed annual return of the passive
	// alternative investment in percent
	ReferenceAnnualReturn = 7.0
)

// Fair-price estimate constants
const (
	// FairPriceTargetYield is the gross yield target of the yield-based valuation
	FairPriceTargetYield = 4.5

	// FairPriceTargetFactor is the purchase-price factor target
	FairPriceTargetFactor = 22.0

	// FairPriceServiceableShare is the share of rent assumed available for
	// debt service in the affordability valuation
	FairPriceServiceableShare = 0.65

	// FairPriceReferenceAnnuity is the reference annuity rate (interest +
	// amortization) of the affordability valuation in percent
	FairPriceReferenceAnnuity = 5.3

	// FairPriceBuffer discounts the affordability valuation for safety
	FairPriceBuffer = 0.9

	// FairPriceToleranceBand is the +/- percentage band treated as "fair"
	FairPriceToleranceBand = 5.0
)

// Screening policy constants
const (
	// PrefabProblemEraStart and PrefabProblemEraEnd bound the prefabricated
	// construction years that disqualify a property
	PrefabProblemEraStart = 1960
	PrefabProblemEraEnd   = 1990

	// SeverityCap is the maximum warning severity score
	SeverityCap = 10

	// SeverityCriticalThreshold marks a warning score as critical
	SeverityCriticalThreshold = 5

	// LowLegacyRentPerSqm is the monthly rent per square meter below which a
	// sitting-tenant rent counts as suspiciously low
	LowLegacyRentPerSqm = 6.0
)

// Energy renovation cost/benefit policy, used to decide whether a worst
// energy class demotes from a disqualification to a soft warning.
const (
	// RenovationCostPerSqm is the assumed full energetic renovation cost
	RenovationCostPerSqm = 400.0

	// RenovationGrantRate is the assumed subsidy share of renovation cost
	RenovationGrantRate = 0.25

	// RenovationGrantBasisCap caps the renovation cost eligible for the grant
	RenovationGrantBasisCap = 150000.0

	// EnergySavingPerSqmYear is the assumed annual energy cost saving
	EnergySavingPerSqmYear = 12.0

	// RenovationPaybackThresholdYears demotes the energy-class no-go when
	// the renovation pays back faster than this
	RenovationPaybackThresholdYears = 15.0

	// RenovationValueUpliftRate is the assumed property value uplift from a
	// full energetic renovation, as a share of the purchase price
	RenovationValueUpliftRate = 0.05
)

// Closing-cost constants
const (
	// DefaultTransferTaxRate applies when the region is not in the table, in percent
	DefaultTransferTaxRate = 5.0

	// NotaryAndRegistrationRate covers notary plus land-register fees, in percent
	NotaryAndRegistrationRate = 2.0

	// BrokerFeeRate is the buyer-side broker commission when one applies, in percent
	BrokerFeeRate = 3.57
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// MonthLayout is the format for month-granularity dates in config files and
// reference tables (e.g. the declining-balance acquisition window).
const MonthLayout = "2006-01"
