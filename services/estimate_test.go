package services

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestCompute_WorkedExamples(t *testing.T) {
	table := DefaultPricingTable()

	tests := []struct {
		name           string
		cfg            ProjectConfig
		baseCost       float64
		batteryCost    float64
		monitoringCost float64
		subsidy        float64
		grossCost      float64
		netCost        float64
	}{
		{
			name: "residential ongrid 3kW no extras",
			cfg: ProjectConfig{
				ProjectType: ProjectResidential,
				SystemType:  SystemOnGrid,
				CapacityKw:  3,
				Battery:     BatteryNone,
			},
			baseCost:  180000,
			subsidy:   36000,
			grossCost: 180000,
			netCost:   144000,
		},
		{
			name: "industrial offgrid 10kW large battery with monitoring",
			cfg: ProjectConfig{
				ProjectType:       ProjectIndustrial,
				SystemType:        SystemOffGrid,
				CapacityKw:        10,
				Battery:           BatteryLarge,
				MonitoringEnabled: true,
			},
			baseCost:       590000,
			batteryCost:    150000,
			monitoringCost: 8000,
			subsidy:        0,
			grossCost:      748000,
			netCost:        748000,
		},
		{
			name: "commercial hybrid 5kW medium battery",
			cfg: ProjectConfig{
				ProjectType: ProjectCommercial,
				SystemType:  SystemHybrid,
				CapacityKw:  5,
				Battery:     BatteryMedium,
			},
			baseCost:    302500,
			batteryCost: 80000,
			subsidy:     0,
			grossCost:   382500,
			netCost:     382500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := Compute(tt.cfg, table)

			if !almostEqual(est.BaseCost, tt.baseCost) {
				t.Errorf("BaseCost = %v, want %v", est.BaseCost, tt.baseCost)
			}
			if !almostEqual(est.BatteryCost, tt.batteryCost) {
				t.Errorf("BatteryCost = %v, want %v", est.BatteryCost, tt.batteryCost)
			}
			if !almostEqual(est.MonitoringCost, tt.monitoringCost) {
				t.Errorf("MonitoringCost = %v, want %v", est.MonitoringCost, tt.monitoringCost)
			}
			if !almostEqual(est.Subsidy, tt.subsidy) {
				t.Errorf("Subsidy = %v, want %v", est.Subsidy, tt.subsidy)
			}
			if !almostEqual(est.GrossCost, tt.grossCost) {
				t.Errorf("GrossCost = %v, want %v", est.GrossCost, tt.grossCost)
			}
			if !almostEqual(est.NetCost, tt.netCost) {
				t.Errorf("NetCost = %v, want %v", est.NetCost, tt.netCost)
			}
		})
	}
}

func allEnumCombinations() []ProjectConfig {
	projectTypes := []ProjectType{ProjectResidential, ProjectCommercial, ProjectIndustrial}
	systemTypes := []SystemType{SystemOnGrid, SystemOffGrid, SystemHybrid}
	batteries := []BatteryOption{BatteryNone, BatterySmall, BatteryMedium, BatteryLarge}

	var cfgs []ProjectConfig
	for _, pt := range projectTypes {
		for _, st := range systemTypes {
			for _, b := range batteries {
				for _, mon := range []bool{false, true} {
					cfgs = append(cfgs, ProjectConfig{
						ProjectType:       pt,
						SystemType:        st,
						Battery:           b,
						MonitoringEnabled: mon,
					})
				}
			}
		}
	}
	return cfgs
}

func TestCompute_NetCostInvariant(t *testing.T) {
	table := DefaultPricingTable()

	for _, cfg := range allEnumCombinations() {
		for _, capacity := range []float64{0.5, 1, 3.3, 10, 100} {
			cfg.CapacityKw = capacity
			est := Compute(cfg, table)

			if est.NetCost < 0 {
				t.Errorf("%s/%s/%s cap=%v: NetCost = %v, want >= 0",
					cfg.ProjectType, cfg.SystemType, cfg.Battery, capacity, est.NetCost)
			}
			want := math.Max(0, est.GrossCost-est.Subsidy)
			if est.NetCost != want {
				t.Errorf("%s/%s/%s cap=%v: NetCost = %v, want max(0, gross-subsidy) = %v",
					cfg.ProjectType, cfg.SystemType, cfg.Battery, capacity, est.NetCost, want)
			}
		}
	}
}

func TestCompute_SubsidyOnlyForResidentialOnGrid(t *testing.T) {
	table := DefaultPricingTable()

	for _, cfg := range allEnumCombinations() {
		cfg.CapacityKw = 4
		est := Compute(cfg, table)

		eligible := cfg.ProjectType == ProjectResidential && cfg.SystemType == SystemOnGrid
		if eligible && est.Subsidy <= 0 {
			t.Errorf("%s/%s: expected nonzero subsidy", cfg.ProjectType, cfg.SystemType)
		}
		if !eligible && est.Subsidy != 0 {
			t.Errorf("%s/%s: subsidy = %v, want 0", cfg.ProjectType, cfg.SystemType, est.Subsidy)
		}
	}
}

func TestCompute_SubsidyCap(t *testing.T) {
	table := DefaultPricingTable()

	for _, capacity := range []float64{1, 3, 6.5, 10, 50, 1000} {
		est := Compute(ProjectConfig{
			ProjectType: ProjectResidential,
			SystemType:  SystemOnGrid,
			CapacityKw:  capacity,
			Battery:     BatteryNone,
		}, table)

		if est.Subsidy > table.SubsidyCap {
			t.Errorf("cap=%v: subsidy %v exceeds cap %v", capacity, est.Subsidy, table.SubsidyCap)
		}
		want := math.Min(0.20*est.BaseCost, table.SubsidyCap)
		if est.Subsidy != want {
			t.Errorf("cap=%v: subsidy = %v, want %v", capacity, est.Subsidy, want)
		}
	}

	// 10 kW residential on-grid: 20% of base is 120000, well past the cap.
	est := Compute(ProjectConfig{
		ProjectType: ProjectResidential,
		SystemType:  SystemOnGrid,
		CapacityKw:  10,
		Battery:     BatteryNone,
	}, table)
	if est.Subsidy != table.SubsidyCap {
		t.Errorf("subsidy = %v, want cap %v", est.Subsidy, table.SubsidyCap)
	}
}

func TestCompute_DerivedPhysicalEstimates(t *testing.T) {
	table := DefaultPricingTable()

	for _, capacity := range []float64{0.5, 1, 3, 7.25, 12} {
		est := Compute(ProjectConfig{
			ProjectType: ProjectResidential,
			SystemType:  SystemOnGrid,
			CapacityKw:  capacity,
			Battery:     BatteryNone,
		}, table)

		wantGen := capacity * 1200
		if est.AnnualGenerationKwh != wantGen {
			t.Errorf("cap=%v: generation = %v, want %v", capacity, est.AnnualGenerationKwh, wantGen)
		}
		wantCO2 := wantGen * 0.82 / 1000
		if est.CO2OffsetTons != wantCO2 {
			t.Errorf("cap=%v: co2 = %v, want %v", capacity, est.CO2OffsetTons, wantCO2)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	table := DefaultPricingTable()
	cfg := ProjectConfig{
		ProjectType:       ProjectCommercial,
		SystemType:        SystemHybrid,
		CapacityKw:        7.5,
		Battery:           BatteryMedium,
		MonitoringEnabled: true,
	}

	first := Compute(cfg, table)
	second := Compute(cfg, table)
	if first != second {
		t.Errorf("two computations differ:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestCompute_DegenerateCapacityPassesThrough(t *testing.T) {
	table := DefaultPricingTable()

	est := Compute(ProjectConfig{
		ProjectType: ProjectResidential,
		SystemType:  SystemOnGrid,
		CapacityKw:  0,
		Battery:     BatteryNone,
	}, table)

	if est.BaseCost != 0 || est.GrossCost != 0 || est.NetCost != 0 {
		t.Errorf("zero capacity: got base=%v gross=%v net=%v, want all 0",
			est.BaseCost, est.GrossCost, est.NetCost)
	}
	if est.AnnualGenerationKwh != 0 {
		t.Errorf("zero capacity: generation = %v, want 0", est.AnnualGenerationKwh)
	}
}

func TestCompute_CustomTable(t *testing.T) {
	table := PricingTable{
		PerKw:      map[ProjectType]float64{ProjectResidential: 1000},
		Battery:    map[BatteryOption]float64{BatterySmall: 500},
		Monitoring: 50,
		SubsidyCap: 100,
	}

	est := Compute(ProjectConfig{
		ProjectType:       ProjectResidential,
		SystemType:        SystemOnGrid,
		CapacityKw:        2,
		Battery:           BatterySmall,
		MonitoringEnabled: true,
	}, table)

	if est.BaseCost != 2000 {
		t.Errorf("BaseCost = %v, want 2000", est.BaseCost)
	}
	if est.Subsidy != 100 {
		t.Errorf("Subsidy = %v, want capped 100", est.Subsidy)
	}
	if est.GrossCost != 2550 {
		t.Errorf("GrossCost = %v, want 2550", est.GrossCost)
	}
	if est.NetCost != 2450 {
		t.Errorf("NetCost = %v, want 2450", est.NetCost)
	}
}
