package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/config"
	"solarquote/services"
	"solarquote/templates"
)

// HandleQuoteReview validates the full configuration, computes the
// estimate, and renders the review page. With action=download the page
// triggers the PDF export as soon as it has rendered, so the download
// always follows a committed estimate.
func HandleQuoteReview(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return RedirectWithToast(e, "/quote", "error", "Invalid form data")
		}

		values := readFormValues(e)

		// A tampered or stale hidden field sends the user back to step 1.
		if errors := validateProjectStep(values); len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderProjectStep(e, values, errors)
		}
		if errors := validateContactStep(values); len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderContactStep(e, values, errors)
		}

		projectCfg := configFromValues(values)
		est := services.Compute(projectCfg, services.DefaultPricingTable())
		quote := services.BuildQuoteData(est, projectCfg.Customer, companyInfo(cfg), time.Now())

		data := templates.ReviewData{
			Values: values,
			Pricing: templates.PricingSummary{
				SystemLabel:   quote.SystemLabel,
				CapacityLabel: quote.CapacityLabel,

				GrossPrice: quote.GrossPrice,
				Subsidy:    quote.Subsidy,
				NetPrice:   quote.NetPrice,

				EquipmentCost:  quote.EquipmentCost,
				BatteryCost:    quote.BatteryCost,
				MonitoringCost: quote.MonitoringCost,

				AnnualGeneration: quote.AnnualGeneration,
				CO2Offset:        quote.CO2Offset,
			},
			AutoDownload: e.Request.FormValue("action") == "download",
		}

		html, err := templates.ReviewPage(data)
		if err != nil {
			log.Printf("review: failed to render: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.HTML(http.StatusOK, html)
	}
}
