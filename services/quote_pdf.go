package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders the single-page quotation document using
// maroto/v2 and returns the raw PDF bytes.
func GenerateQuotePDF(data QuoteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteCustomerSection(m, data)
	addQuotePricingSection(m, data)
	addQuoteBreakdownSection(m, data)
	addQuoteSavingsSection(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func quoteSectionLabel(m core.Maroto, label string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(label, props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
}

// quoteAmountRow adds one label/amount line. Amounts are right-aligned so
// they share a common right edge regardless of digit count.
func quoteAmountRow(m core.Maroto, label, amount string, emphasized bool) {
	labelStyle := props.Text{
		Size:  9,
		Align: align.Left,
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Right,
	}
	if emphasized {
		labelStyle.Style = fontstyle.Bold
		labelStyle.Size = 11
		valueStyle.Style = fontstyle.Bold
		valueStyle.Size = 11
		valueStyle.Color = &props.Color{Red: 25, Green: 111, Blue: 61}
	}

	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(text.New(label, labelStyle)),
			col.New(4).Add(text.New(amount, valueStyle)),
		),
	)
}

// addQuoteHeader adds the brand line, document title, date, and a rule.
func addQuoteHeader(m core.Maroto, data QuoteData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  15,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 230, Green: 126, Blue: 34},
				}),
			),
			col.New(6).Add(
				text.New("SOLAR QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(
				text.New(fmt.Sprintf("%s | %s", data.CompanyAddress, data.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Date: %s", data.QuoteDate), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(3).Add(
			line.NewCol(12, props.Line{
				Thickness: 0.4,
				Color:     &props.Color{Red: 33, Green: 37, Blue: 41},
			}),
		),
	)
}

// addQuoteCustomerSection adds the "Quotation Details" block: who the quote
// is for and what system it covers. Mobile and email share one row.
func addQuoteCustomerSection(m core.Maroto, data QuoteData) {
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Left,
	}

	quoteSectionLabel(m, "QUOTATION DETAILS")

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("Customer:", labelStyle)),
			col.New(10).Add(text.New(data.CustomerName, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("Mobile:", labelStyle)),
			col.New(4).Add(text.New(data.CustomerMobile, valueStyle)),
			col.New(2).Add(text.New("Email:", labelStyle)),
			col.New(4).Add(text.New(data.CustomerEmail, valueStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("System:", labelStyle)),
			col.New(6).Add(text.New(data.SystemLabel, valueStyle)),
			col.New(2).Add(text.New("Capacity:", labelStyle)),
			col.New(2).Add(text.New(data.CapacityLabel, props.Text{
				Size:  9,
				Align: align.Right,
			})),
		),
	)
}

// addQuotePricingSection adds gross price, subsidy adjustment, and the
// emphasized net price.
func addQuotePricingSection(m core.Maroto, data QuoteData) {
	quoteSectionLabel(m, "ESTIMATED PRICING")

	quoteAmountRow(m, "Gross System Price", data.GrossPrice, false)
	quoteAmountRow(m, "Government Subsidy", data.Subsidy, false)
	quoteAmountRow(m, "Net Payable", data.NetPrice, true)
}

func addQuoteBreakdownSection(m core.Maroto, data QuoteData) {
	quoteSectionLabel(m, "DETAILED BREAKDOWN")

	quoteAmountRow(m, "Equipment & Installation", data.EquipmentCost, false)
	quoteAmountRow(m, "Battery Storage", data.BatteryCost, false)
	quoteAmountRow(m, "Remote Monitoring", data.MonitoringCost, false)
}

func addQuoteSavingsSection(m core.Maroto, data QuoteData) {
	quoteSectionLabel(m, "ESTIMATED SAVINGS")

	quoteAmountRow(m, "Annual Generation", data.AnnualGeneration, false)
	quoteAmountRow(m, "CO2 Offset per Year", data.CO2Offset, false)
}

func addQuoteFooter(m core.Maroto, data QuoteData) {
	footerStyle := props.Text{
		Size:  7,
		Align: align.Left,
		Color: &props.Color{Red: 140, Green: 140, Blue: 140},
	}

	m.AddRows(row.New(8))
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(text.New(data.ValidityNote, footerStyle)),
		),
	)
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(text.New(data.Disclaimer, footerStyle)),
		),
	)
}
