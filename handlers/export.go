package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/config"
	"solarquote/services"
)

const missingEstimateNotice = "Generate an estimate before downloading the quotation."

func companyInfo(cfg *config.Config) services.CompanyInfo {
	return services.CompanyInfo{
		Name:         cfg.CompanyName,
		Address:      cfg.CompanyAddress,
		Email:        cfg.CompanyEmail,
		ValidityDays: cfg.QuoteValidityDays,
	}
}

// parseQuoteConfig re-parses the configuration snapshot posted by the
// review page. Export never trusts a previously computed estimate; it
// recomputes from the snapshot, and an absent or invalid snapshot means
// there is no estimate to export.
func parseQuoteConfig(e *core.RequestEvent) (services.ProjectConfig, error) {
	if err := e.Request.ParseForm(); err != nil {
		return services.ProjectConfig{}, fmt.Errorf("invalid form data: %w", err)
	}

	values := readFormValues(e)
	if errors := validateProjectStep(values); len(errors) > 0 {
		return services.ProjectConfig{}, fmt.Errorf("incomplete configuration: %v", errors)
	}

	return configFromValues(values), nil
}

// HandleQuoteExportPDF recomputes the estimate from the posted snapshot
// and streams the quotation PDF as a download.
func HandleQuoteExportPDF(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectCfg, err := parseQuoteConfig(e)
		if err != nil {
			log.Printf("export_pdf: refusing export: %v", err)
			return RedirectWithToast(e, "/quote", "error", missingEstimateNotice)
		}

		est := services.Compute(projectCfg, services.DefaultPricingTable())
		data := services.BuildQuoteData(est, projectCfg.Customer, companyInfo(cfg), time.Now())

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			msg := "Couldn't generate the quotation PDF. Please try again."
			if e.Request.FormValue("auto") == "1" {
				msg = "Your estimate is ready, but the automatic download failed. Use the Download PDF button to retry."
			}
			return RedirectWithToast(e, "/quote", "error", msg)
		}

		filename := services.QuoteFilename(projectCfg.Customer.Name, "pdf")

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel is the spreadsheet twin of the PDF export.
func HandleQuoteExportExcel(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectCfg, err := parseQuoteConfig(e)
		if err != nil {
			log.Printf("export_excel: refusing export: %v", err)
			return RedirectWithToast(e, "/quote", "error", missingEstimateNotice)
		}

		est := services.Compute(projectCfg, services.DefaultPricingTable())
		data := services.BuildQuoteData(est, projectCfg.Customer, companyInfo(cfg), time.Now())

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return RedirectWithToast(e, "/quote", "error", "Couldn't generate the Excel file. Please try again.")
		}

		filename := services.QuoteFilename(projectCfg.Customer.Name, "xlsx")

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
