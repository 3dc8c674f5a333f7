// Package services provides the pricing estimator and quotation
// document generation for solar installation projects.
package services

import "math"

type ProjectType string

const (
	ProjectResidential ProjectType = "residential"
	ProjectCommercial  ProjectType = "commercial"
	ProjectIndustrial  ProjectType = "industrial"
)

type SystemType string

const (
	SystemOnGrid  SystemType = "ongrid"
	SystemOffGrid SystemType = "offgrid"
	SystemHybrid  SystemType = "hybrid"
)

type BatteryOption string

const (
	BatteryNone   BatteryOption = "none"
	BatterySmall  BatteryOption = "small"
	BatteryMedium BatteryOption = "medium"
	BatteryLarge  BatteryOption = "large"
)

// Customer holds the contact details collected in step 2 of the quote form.
// Free text; presence is checked at the form boundary, nothing else.
type Customer struct {
	Name   string
	Mobile string
	Email  string
}

// ProjectConfig is one configuration snapshot of the quote form.
// Timeline and Location are informational only and never priced.
type ProjectConfig struct {
	ProjectType       ProjectType
	SystemType        SystemType
	CapacityKw        float64
	Battery           BatteryOption
	MonitoringEnabled bool
	Customer          Customer
	Timeline          string
	Location          string
}

// PricingTable holds the fixed rates an Estimate is computed from.
// It is always passed into Compute explicitly so tests (or a future
// regional build) can swap it without touching the estimator.
type PricingTable struct {
	PerKw      map[ProjectType]float64
	Battery    map[BatteryOption]float64 // no entry for BatteryNone
	Monitoring float64
	SubsidyCap float64
}

// Estimate is the fully derived pricing record for one ProjectConfig.
// Values are unrounded; formatting is a presentation concern.
type Estimate struct {
	ProjectType       ProjectType
	SystemType        SystemType
	CapacityKw        float64
	Battery           BatteryOption
	MonitoringEnabled bool

	BaseCost       float64
	BatteryCost    float64
	MonitoringCost float64
	Subsidy        float64
	GrossCost      float64
	NetCost        float64

	AnnualGenerationKwh float64
	CO2OffsetTons       float64
}

// Yield and emission constants represent regional averages; the collected
// location field does not adjust them.
const (
	YieldKwhPerKw    = 1200.0
	EmissionKgPerKwh = 0.82
)

// systemMultipliers adjust the per-kW equipment+install cost once,
// multiplicatively, by system type.
var systemMultipliers = map[SystemType]float64{
	SystemOnGrid:  1.00,
	SystemOffGrid: 1.18,
	SystemHybrid:  1.10,
}

type policyKey struct {
	Project ProjectType
	System  SystemType
}

// subsidyRules is a policy table, not a formula: eligibility for new
// project/system combinations is added as new entries, never by widening
// an existing condition.
var subsidyRules = map[policyKey]func(baseCost float64, table PricingTable) float64{
	{ProjectResidential, SystemOnGrid}: func(baseCost float64, table PricingTable) float64 {
		return math.Min(0.20*baseCost, table.SubsidyCap)
	},
}

// Compute derives an Estimate from a configuration and a pricing table.
// It is pure and never fails: unknown enum values price as zero and a
// non-positive capacity simply scales the costs down to zero or below.
// Callers that care reject bad capacity at the form boundary.
func Compute(cfg ProjectConfig, table PricingTable) Estimate {
	baseCost := table.PerKw[cfg.ProjectType] * cfg.CapacityKw
	if mult, ok := systemMultipliers[cfg.SystemType]; ok {
		baseCost *= mult
	}

	var batteryCost float64
	if cfg.Battery != BatteryNone {
		batteryCost = table.Battery[cfg.Battery]
	}

	var monitoringCost float64
	if cfg.MonitoringEnabled {
		monitoringCost = table.Monitoring
	}

	var subsidy float64
	if rule, ok := subsidyRules[policyKey{cfg.ProjectType, cfg.SystemType}]; ok {
		subsidy = rule(baseCost, table)
	}

	grossCost := baseCost + batteryCost + monitoringCost
	netCost := math.Max(0, grossCost-subsidy)

	annualGeneration := cfg.CapacityKw * YieldKwhPerKw

	return Estimate{
		ProjectType:       cfg.ProjectType,
		SystemType:        cfg.SystemType,
		CapacityKw:        cfg.CapacityKw,
		Battery:           cfg.Battery,
		MonitoringEnabled: cfg.MonitoringEnabled,

		BaseCost:       baseCost,
		BatteryCost:    batteryCost,
		MonitoringCost: monitoringCost,
		Subsidy:        subsidy,
		GrossCost:      grossCost,
		NetCost:        netCost,

		AnnualGenerationKwh: annualGeneration,
		CO2OffsetTons:       annualGeneration * EmissionKgPerKwh / 1000,
	}
}
