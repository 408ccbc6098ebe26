package taxrules

import (
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
	"immo-analyzer/pkg/taxtables"
)

// ClosingCosts breaks down the one-off acquisition costs on top of the
// purchase price: regional transfer tax, notary plus land register, and an
// optional broker commission.
type ClosingCosts struct {
	Fault *fault.Fault `json:"fault,omitempty"`

	Region               string  `json:"region"`
	TransferTaxRate      float64 `json:"transferTaxRate"`
	TransferTax          float64 `json:"transferTax"`
	NotaryRate           float64 `json:"notaryRate"`
	Notary               float64 `json:"notary"`
	BrokerRate           float64 `json:"brokerRate"`
	Broker               float64 `json:"broker"`
	TotalRate            float64 `json:"totalRate"`
	Total                float64 `json:"total"`
	TotalAcquisitionCost float64 `json:"totalAcquisitionCost"`
}

// ComputeClosingCosts sums the acquisition side costs. Unknown regions fall
// back to the default transfer-tax rate.
func ComputeClosingCosts(price float64, region string, withBroker bool, tables taxtables.Tables) ClosingCosts {
	if price <= 0 {
		return ClosingCosts{Fault: fault.Invalid("purchase price must be positive, got %.2f", price)}
	}

	transferRate := tables.TransferTaxRate(region, constants.DefaultTransferTaxRate)
	brokerRate := 0.0
	if withBroker {
		brokerRate = constants.BrokerFeeRate
	}

	totalRate := transferRate + constants.NotaryAndRegistrationRate + brokerRate
	total := price * totalRate / constants.PercentageMultiplier

	return ClosingCosts{
		Region:               region,
		TransferTaxRate:      transferRate,
		TransferTax:          mathutil.Round(price * transferRate / constants.PercentageMultiplier),
		NotaryRate:           constants.NotaryAndRegistrationRate,
		Notary:               mathutil.Round(price * constants.NotaryAndRegistrationRate / constants.PercentageMultiplier),
		BrokerRate:           brokerRate,
		Broker:               mathutil.Round(price * brokerRate / constants.PercentageMultiplier),
		TotalRate:            mathutil.RoundPercent(totalRate),
		Total:                mathutil.Round(total),
		TotalAcquisitionCost: mathutil.Round(price + total),
	}
}
