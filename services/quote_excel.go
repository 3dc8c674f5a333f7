package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates a one-sheet workbook mirroring the PDF
// quotation, for reps who tweak a quote before sending it out.
func GenerateQuoteExcel(data QuoteData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Quotation"

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 26); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Color: "#666666"},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	valueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}

	netStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#196F3D"},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create net style: %w", err)
	}

	// ── Header ──────────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", data.CompanyName+" — Solar Quotation")
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", "B2"); err != nil {
		return nil, fmt.Errorf("merge subtitle: %w", err)
	}
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("%s | %s | %s", data.CompanyAddress, data.CompanyEmail, data.QuoteDate))
	f.SetCellStyle(sheetName, "A2", "B2", subtitleStyle)

	// ── Sections ────────────────────────────────────────────────────────

	rowNum := 4
	section := func(label string) {
		cell := fmt.Sprintf("A%d", rowNum)
		last := fmt.Sprintf("B%d", rowNum)
		f.MergeCell(sheetName, cell, last)
		f.SetCellValue(sheetName, cell, label)
		f.SetCellStyle(sheetName, cell, last, sectionStyle)
		rowNum++
	}
	entry := func(label, value string, style int) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), label)
		valueCell := fmt.Sprintf("B%d", rowNum)
		f.SetCellValue(sheetName, valueCell, value)
		f.SetCellStyle(sheetName, valueCell, valueCell, style)
		rowNum++
	}

	section("Quotation Details")
	entry("Customer", data.CustomerName, valueStyle)
	entry("Mobile", data.CustomerMobile, valueStyle)
	entry("Email", data.CustomerEmail, valueStyle)
	entry("System", data.SystemLabel, valueStyle)
	entry("Capacity", data.CapacityLabel, valueStyle)
	rowNum++

	section("Estimated Pricing")
	entry("Gross System Price", data.GrossPrice, valueStyle)
	entry("Government Subsidy", data.Subsidy, valueStyle)
	entry("Net Payable", data.NetPrice, netStyle)
	rowNum++

	section("Detailed Breakdown")
	entry("Equipment & Installation", data.EquipmentCost, valueStyle)
	entry("Battery Storage", data.BatteryCost, valueStyle)
	entry("Remote Monitoring", data.MonitoringCost, valueStyle)
	rowNum++

	section("Estimated Savings")
	entry("Annual Generation", data.AnnualGeneration, valueStyle)
	entry("CO2 Offset per Year", data.CO2Offset, valueStyle)
	rowNum++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), data.ValidityNote)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), subtitleStyle)
	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), data.Disclaimer)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), subtitleStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
