// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config into the inputs
// of the analysis packages.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/validation"
)

// Configuration holds all configuration for an analysis run.
type Configuration struct {
	Property      PropertyConfig
	Financing     FinancingConfig
	Household     HouseholdConfig
	Analysis      AnalysisConfig
	TaxTablesFile string        `yaml:"taxTablesFile,omitempty"`
	Logging       LoggingConfig `yaml:"logging,omitempty"`
	Output        OutputConfig  `yaml:"output,omitempty"`
}

// PropertyConfig describes the listing under analysis.
type PropertyConfig struct {
	PurchasePrice          float64
	LivingArea             float64
	MonthlyRent            float64
	MonthlyCosts           float64
	ConstructionYear       int
	EnergyClass            string
	PropertyType           string
	Description            string
	City                   string
	Region                 string
	Tenanted               bool
	Leasehold              bool
	SocialHousingBound     bool
	NewBuild               bool
	AcquisitionMonth       string // "2006-01" layout
	BuildingValueShare     float64
	Heritage               bool
	HeritageRenovationCost float64
	RepairCostsByYear      []float64
	WithBroker             bool
}

// FinancingConfig holds the financing parameters.
type FinancingConfig struct {
	Equity           float64
	InterestRate     float64
	AmortizationRate float64
}

// HouseholdConfig holds the buyer attributes relevant to subsidy matching.
type HouseholdConfig struct {
	OwnerOccupied      bool
	Children           int
	AnnualIncome       float64
	HeatingReplacement bool
	NaturalRefrigerant bool
	ReplacesFossil     bool
	HeatingCost        float64
}

// AnalysisConfig holds the projection parameters.
type AnalysisConfig struct {
	HorizonYears    int
	RentGrowthRate  float64
	ValueGrowthRate float64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Building value share of the purchase price used for depreciation when the
// config does not split out the land value.
const defaultBuildingValueShare = 80.0

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset financing and analysis parameters with the
// standard assumptions.
func (conf *Configuration) ApplyDefaults() {
	if conf.Financing.InterestRate == 0 {
		conf.Financing.InterestRate = constants.DefaultInterestRate
	}
	if conf.Financing.AmortizationRate == 0 {
		conf.Financing.AmortizationRate = constants.DefaultAmortizationRate
	}
	if conf.Analysis.HorizonYears == 0 {
		conf.Analysis.HorizonYears = constants.DefaultHorizonYears
	}
	if conf.Analysis.RentGrowthRate == 0 {
		conf.Analysis.RentGrowthRate = constants.DefaultRentGrowthRate
	}
	if conf.Analysis.ValueGrowthRate == 0 {
		conf.Analysis.ValueGrowthRate = constants.DefaultValueGrowthRate
	}
	if conf.Property.BuildingValueShare == 0 {
		conf.Property.BuildingValueShare = defaultBuildingValueShare
	}
}

// ValidateConfiguration performs plausibility validation and returns warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	warnings := validation.ValidateProperty(validation.PropertyInput{
		PurchasePrice:    conf.Property.PurchasePrice,
		LivingArea:       conf.Property.LivingArea,
		MonthlyRent:      conf.Property.MonthlyRent,
		ConstructionYear: conf.Property.ConstructionYear,
		Equity:           conf.Financing.Equity,
		InterestRate:     conf.Financing.InterestRate,
		AmortizationRate: conf.Financing.AmortizationRate,
	})

	if conf.Property.MonthlyRent == 0 && conf.Property.City == "" {
		warnings = append(warnings, "no rent and no city given - rent cannot be estimated and yields will be zero")
	}
	if conf.Property.Region == "" {
		warnings = append(warnings, "no region given - closing costs use the default transfer tax rate")
	}

	return warnings
}
