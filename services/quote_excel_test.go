package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateQuoteExcel(t *testing.T) {
	result, err := GenerateQuoteExcel(sampleQuoteData(t))
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuoteExcel() returned empty bytes")
	}

	// Read the workbook back and check the key cells landed.
	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != "Quotation" {
		t.Errorf("sheet name = %q, want Quotation", got)
	}

	customer, err := f.GetCellValue("Quotation", "B5")
	if err != nil {
		t.Fatalf("read customer cell: %v", err)
	}
	if customer != "Asha Patil" {
		t.Errorf("customer cell = %q, want Asha Patil", customer)
	}
}

func TestGenerateQuoteExcel_PlaceholderCosts(t *testing.T) {
	est := Compute(ProjectConfig{
		ProjectType: ProjectIndustrial,
		SystemType:  SystemOnGrid,
		CapacityKw:  20,
		Battery:     BatteryNone,
	}, DefaultPricingTable())
	data := BuildQuoteData(est, Customer{Name: "Acme Mills"}, testCompany, testQuotedAt)

	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Quotation")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	var sawPlaceholder bool
	for _, row := range rows {
		for _, cell := range row {
			if cell == "0" || cell == "₹0.00" {
				t.Errorf("found a bare zero cost cell, want placeholder %q", PlaceholderDash)
			}
			if cell == PlaceholderDash {
				sawPlaceholder = true
			}
		}
	}
	if !sawPlaceholder {
		t.Error("expected at least one placeholder cell for the skipped battery")
	}
}
