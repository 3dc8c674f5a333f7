package services

import (
	"fmt"
	"strings"
	"time"
)

// CompanyInfo identifies the installer on the quotation document.
type CompanyInfo struct {
	Name         string
	Address      string
	Email        string
	ValidityDays int
}

// QuoteData holds everything the PDF and Excel renderers need, with all
// values already formatted for display. Building it is separated from
// rendering so the formatting rules are testable without producing a file.
type QuoteData struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	QuoteDate      string

	CustomerName   string
	CustomerMobile string
	CustomerEmail  string

	SystemLabel   string
	ProjectLabel  string
	CapacityLabel string

	GrossPrice string
	Subsidy    string // negative adjustment, or placeholder when none applies
	NetPrice   string

	EquipmentCost  string
	BatteryCost    string // placeholder when no battery was picked
	MonitoringCost string // placeholder when monitoring is off

	AnnualGeneration string
	CO2Offset        string

	ValidityNote string
	Disclaimer   string
}

var systemLabels = map[SystemType]string{
	SystemOnGrid:  "On-Grid",
	SystemOffGrid: "Off-Grid",
	SystemHybrid:  "Hybrid",
}

var projectLabels = map[ProjectType]string{
	ProjectResidential: "Residential",
	ProjectCommercial:  "Commercial",
	ProjectIndustrial:  "Industrial",
}

// BuildQuoteData assembles the display-ready quotation content for one
// estimate. quotedAt becomes the document date.
func BuildQuoteData(est Estimate, cust Customer, company CompanyInfo, quotedAt time.Time) QuoteData {
	systemLabel := systemLabels[est.SystemType]
	if systemLabel == "" {
		systemLabel = string(est.SystemType)
	}
	projectLabel := projectLabels[est.ProjectType]
	if projectLabel == "" {
		projectLabel = string(est.ProjectType)
	}

	validity := fmt.Sprintf(
		"© %d %s. This quotation is valid for %d days from the date of issue.",
		quotedAt.Year(), company.Name, company.ValidityDays,
	)

	return QuoteData{
		CompanyName:    company.Name,
		CompanyAddress: company.Address,
		CompanyEmail:   company.Email,
		QuoteDate:      quotedAt.Format("02 Jan 2006"),

		CustomerName:   cust.Name,
		CustomerMobile: cust.Mobile,
		CustomerEmail:  cust.Email,

		SystemLabel:   fmt.Sprintf("%s Solar System (%s)", systemLabel, projectLabel),
		ProjectLabel:  projectLabel,
		CapacityLabel: fmt.Sprintf("%s kW", trimTrailingZeros(est.CapacityKw)),

		GrossPrice: FormatINR(est.GrossCost),
		Subsidy:    FormatAdjustmentINR(est.Subsidy),
		NetPrice:   FormatINR(est.NetCost),

		EquipmentCost:  FormatINR(est.BaseCost),
		BatteryCost:    FormatOptionalINR(est.BatteryCost),
		MonitoringCost: FormatOptionalINR(est.MonitoringCost),

		AnnualGeneration: FormatWholeNumber(est.AnnualGenerationKwh) + " kWh",
		CO2Offset:        fmt.Sprintf("%.2f tonnes", est.CO2OffsetTons),

		ValidityNote: validity,
		Disclaimer:   "This is a preliminary estimate. Final pricing is subject to a site survey.",
	}
}

// QuoteFilename builds the download filename for a quotation document.
// Whitespace runs in the customer name collapse to a single underscore;
// an empty name falls back to "quote".
func QuoteFilename(customerName, ext string) string {
	name := strings.Join(strings.Fields(customerName), "_")
	if name == "" {
		name = "quote"
	}
	return fmt.Sprintf("%s_solar_quote.%s", name, ext)
}

// trimTrailingZeros renders a capacity without noise: 3 -> "3", 5.5 -> "5.5".
func trimTrailingZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
