package services

// Default rates in INR. These are the only prices the tool knows about;
// there is no pricing-service integration.
const (
	ratePerKwResidential = 60000
	ratePerKwCommercial  = 55000
	ratePerKwIndustrial  = 50000

	batteryCostSmall  = 45000
	batteryCostMedium = 80000
	batteryCostLarge  = 150000

	monitoringCost = 8000

	// Cap on the residential on-grid subsidy, regardless of capacity.
	subsidyCap = 78000
)

// DefaultPricingTable returns the fixed rate card used for every estimate.
// Callers must treat the returned table as immutable.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		PerKw: map[ProjectType]float64{
			ProjectResidential: ratePerKwResidential,
			ProjectCommercial:  ratePerKwCommercial,
			ProjectIndustrial:  ratePerKwIndustrial,
		},
		Battery: map[BatteryOption]float64{
			BatterySmall:  batteryCostSmall,
			BatteryMedium: batteryCostMedium,
			BatteryLarge:  batteryCostLarge,
		},
		Monitoring: monitoringCost,
		SubsidyCap: subsidyCap,
	}
}
