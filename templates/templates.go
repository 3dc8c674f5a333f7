// Package templates renders the quote wizard pages using PocketBase's
// template registry over an embedded filesystem. Each page gets a typed
// data struct so handlers never pass loose maps around.
package templates

import (
	"embed"

	"github.com/pocketbase/pocketbase/tools/template"
)

//go:embed *.html
var htmlFS embed.FS

var registry = template.NewRegistry()

// Option is one choice in a select field.
type Option struct {
	Value string
	Label string
}

// QuoteFormValues carries the raw (string) form state across wizard steps
// via hidden inputs. Nothing is persisted server-side.
type QuoteFormValues struct {
	ProjectType string
	SystemType  string
	CapacityKw  string
	Battery     string
	Monitoring  bool
	Timeline    string
	Location    string

	Name   string
	Mobile string
	Email  string
}

// StepProjectData drives step 1 (project parameters).
type StepProjectData struct {
	Values QuoteFormValues
	Errors map[string]string

	ProjectTypeOptions []Option
	SystemTypeOptions  []Option
	BatteryOptions     []Option
	TimelineOptions    []Option
}

// StepContactData drives step 2 (customer contact).
type StepContactData struct {
	Values QuoteFormValues
	Errors map[string]string
}

// PricingSummary holds the display-ready estimate figures for the review page.
type PricingSummary struct {
	SystemLabel   string
	CapacityLabel string

	GrossPrice string
	Subsidy    string
	NetPrice   string

	EquipmentCost  string
	BatteryCost    string
	MonitoringCost string

	AnnualGeneration string
	CO2Offset        string
}

// ReviewData drives step 3 (review + download). When AutoDownload is set the
// page submits the PDF download form right after rendering, so the export
// request only fires once the estimate has been committed to the page.
type ReviewData struct {
	Values       QuoteFormValues
	Pricing      PricingSummary
	AutoDownload bool
}

func StepProjectPage(data StepProjectData) (string, error) {
	return registry.LoadFS(htmlFS, "layout.html", "step_project.html").Render(data)
}

func StepContactPage(data StepContactData) (string, error) {
	return registry.LoadFS(htmlFS, "layout.html", "step_contact.html").Render(data)
}

func ReviewPage(data ReviewData) (string, error) {
	return registry.LoadFS(htmlFS, "layout.html", "review.html").Render(data)
}
