package config

import (
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/financing"
	"immo-analyzer/pkg/projection"
	"immo-analyzer/pkg/scenario"
	"immo-analyzer/pkg/screening"
	"immo-analyzer/pkg/subsidy"
	"immo-analyzer/pkg/taxrules"
)

// FinancingInput converts the configuration into the cashflow-core input.
// The effective rent overrides the configured one when a market estimate was
// substituted for a missing figure.
func (conf *Configuration) FinancingInput(effectiveRent float64) financing.Input {
	return financing.Input{
		PurchasePrice:    conf.Property.PurchasePrice,
		MonthlyRent:      effectiveRent,
		MonthlyCosts:     conf.Property.MonthlyCosts,
		Equity:           conf.Financing.Equity,
		InterestRate:     conf.Financing.InterestRate,
		AmortizationRate: conf.Financing.AmortizationRate,
	}
}

// ProjectionAssumptions converts the configuration into projector input.
func (conf *Configuration) ProjectionAssumptions(effectiveRent float64) projection.Assumptions {
	return projection.Assumptions{
		PurchasePrice:    conf.Property.PurchasePrice,
		Equity:           conf.Financing.Equity,
		InterestRate:     conf.Financing.InterestRate,
		AmortizationRate: conf.Financing.AmortizationRate,
		MonthlyRent:      effectiveRent,
		MonthlyCosts:     conf.Property.MonthlyCosts,
		HorizonYears:     conf.Analysis.HorizonYears,
		RentGrowthRate:   conf.Analysis.RentGrowthRate,
		ValueGrowthRate:  conf.Analysis.ValueGrowthRate,
	}
}

// ScenarioBase converts the configuration into the scenario-engine base.
func (conf *Configuration) ScenarioBase(effectiveRent float64) scenario.Base {
	return scenario.Base{
		PurchasePrice:    conf.Property.PurchasePrice,
		MonthlyRent:      effectiveRent,
		MonthlyCosts:     conf.Property.MonthlyCosts,
		Equity:           conf.Financing.Equity,
		InterestRate:     conf.Financing.InterestRate,
		AmortizationRate: conf.Financing.AmortizationRate,
		HorizonYears:     conf.Analysis.HorizonYears,
	}
}

// ScreeningProperty converts the configuration into the screening view.
func (conf *Configuration) ScreeningProperty() screening.Property {
	return screening.Property{
		PurchasePrice:    conf.Property.PurchasePrice,
		LivingArea:       conf.Property.LivingArea,
		ConstructionYear: conf.Property.ConstructionYear,
		EnergyClass:      conf.Property.EnergyClass,
		MonthlyRent:      conf.Property.MonthlyRent,
		Tenanted:         conf.Property.Tenanted,
		PropertyType:     conf.Property.PropertyType,
		Description:      conf.Property.Description,
	}
}

// SubsidyQuery converts the configuration into the subsidy matching query.
func (conf *Configuration) SubsidyQuery() subsidy.Query {
	return subsidy.Query{
		OwnerOccupied:      conf.Household.OwnerOccupied,
		Children:           conf.Household.Children,
		HouseholdIncome:    conf.Household.AnnualIncome,
		EnergyClass:        conf.Property.EnergyClass,
		Region:             conf.Property.Region,
		HeatingReplacement: conf.Household.HeatingReplacement,
		NaturalRefrigerant: conf.Household.NaturalRefrigerant,
		ReplacesFossil:     conf.Household.ReplacesFossil,
		HeatingCost:        conf.Household.HeatingCost,
	}
}

// DepreciationInput converts the configuration into the depreciation input.
// The building value is derived from the purchase price via the configured
// building share since land does not depreciate.
func (conf *Configuration) DepreciationInput() taxrules.DepreciationInput {
	return taxrules.DepreciationInput{
		BuildingValue:          conf.Property.PurchasePrice * conf.Property.BuildingValueShare / constants.PercentageMultiplier,
		ConstructionYear:       conf.Property.ConstructionYear,
		AcquisitionMonth:       conf.Property.AcquisitionMonth,
		NewBuild:               conf.Property.NewBuild,
		Heritage:               conf.Property.Heritage,
		Rented:                 !conf.Household.OwnerOccupied,
		HeritageRenovationCost: conf.Property.HeritageRenovationCost,
	}
}
