package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
	"solarquote/templates"
)

var ProjectTypeOptions = []templates.Option{
	{Value: "residential", Label: "Residential"},
	{Value: "commercial", Label: "Commercial"},
	{Value: "industrial", Label: "Industrial"},
}

var SystemTypeOptions = []templates.Option{
	{Value: "ongrid", Label: "On-Grid"},
	{Value: "offgrid", Label: "Off-Grid"},
	{Value: "hybrid", Label: "Hybrid"},
}

var BatteryOptions = []templates.Option{
	{Value: "none", Label: "No Battery"},
	{Value: "small", Label: "Small (5 kWh)"},
	{Value: "medium", Label: "Medium (10 kWh)"},
	{Value: "large", Label: "Large (15 kWh)"},
}

var TimelineOptions = []templates.Option{
	{Value: "immediate", Label: "Within 1 month"},
	{Value: "soon", Label: "1-3 months"},
	{Value: "planning", Label: "3-6 months"},
	{Value: "exploring", Label: "Just exploring"},
}

// readFormValues pulls the full wizard state out of the posted form.
// Later steps carry earlier answers in hidden inputs, so every POST has
// the whole snapshot.
func readFormValues(e *core.RequestEvent) templates.QuoteFormValues {
	r := e.Request
	monitoring := r.FormValue("monitoring")
	return templates.QuoteFormValues{
		ProjectType: strings.TrimSpace(r.FormValue("project_type")),
		SystemType:  strings.TrimSpace(r.FormValue("system_type")),
		CapacityKw:  strings.TrimSpace(r.FormValue("capacity_kw")),
		Battery:     strings.TrimSpace(r.FormValue("battery")),
		Monitoring:  monitoring == "on" || monitoring == "true",
		Timeline:    strings.TrimSpace(r.FormValue("timeline")),
		Location:    strings.TrimSpace(r.FormValue("location")),

		Name:   strings.TrimSpace(r.FormValue("name")),
		Mobile: strings.TrimSpace(r.FormValue("mobile")),
		Email:  strings.TrimSpace(r.FormValue("email")),
	}
}

func validOption(opts []templates.Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// validateProjectStep checks step 1. Capacity must be a positive number:
// the estimator itself would happily price a zero or negative capacity,
// so the form boundary is where degenerate input gets rejected.
func validateProjectStep(v templates.QuoteFormValues) map[string]string {
	errors := make(map[string]string)

	if !validOption(ProjectTypeOptions, v.ProjectType) {
		errors["project_type"] = "Select a project type"
	}
	if !validOption(SystemTypeOptions, v.SystemType) {
		errors["system_type"] = "Select a system type"
	}
	if !validOption(BatteryOptions, v.Battery) {
		errors["battery"] = "Select a battery option"
	}

	capacity, err := strconv.ParseFloat(v.CapacityKw, 64)
	if v.CapacityKw == "" || err != nil {
		errors["capacity_kw"] = "Enter the system capacity in kW"
	} else if capacity <= 0 {
		errors["capacity_kw"] = "Capacity must be greater than zero"
	}

	return errors
}

// validateContactStep checks step 2. Presence only; the fields are free text.
func validateContactStep(v templates.QuoteFormValues) map[string]string {
	errors := make(map[string]string)

	if v.Name == "" {
		errors["name"] = "Name is required"
	}
	if v.Mobile == "" {
		errors["mobile"] = "Mobile number is required"
	}
	if v.Email == "" {
		errors["email"] = "Email is required"
	}

	return errors
}

// configFromValues converts validated form values into the estimator input.
func configFromValues(v templates.QuoteFormValues) services.ProjectConfig {
	capacity, _ := strconv.ParseFloat(v.CapacityKw, 64)
	return services.ProjectConfig{
		ProjectType:       services.ProjectType(v.ProjectType),
		SystemType:        services.SystemType(v.SystemType),
		CapacityKw:        capacity,
		Battery:           services.BatteryOption(v.Battery),
		MonitoringEnabled: v.Monitoring,
		Customer: services.Customer{
			Name:   v.Name,
			Mobile: v.Mobile,
			Email:  v.Email,
		},
		Timeline: v.Timeline,
		Location: v.Location,
	}
}

func renderProjectStep(e *core.RequestEvent, values templates.QuoteFormValues, errors map[string]string) error {
	html, err := templates.StepProjectPage(templates.StepProjectData{
		Values:             values,
		Errors:             errors,
		ProjectTypeOptions: ProjectTypeOptions,
		SystemTypeOptions:  SystemTypeOptions,
		BatteryOptions:     BatteryOptions,
		TimelineOptions:    TimelineOptions,
	})
	if err != nil {
		log.Printf("quote: failed to render project step: %v", err)
		return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return e.HTML(http.StatusOK, html)
}

func renderContactStep(e *core.RequestEvent, values templates.QuoteFormValues, errors map[string]string) error {
	html, err := templates.StepContactPage(templates.StepContactData{
		Values: values,
		Errors: errors,
	})
	if err != nil {
		log.Printf("quote: failed to render contact step: %v", err)
		return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return e.HTML(http.StatusOK, html)
}

// HandleQuoteStart renders step 1 with sensible defaults.
func HandleQuoteStart(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		values := templates.QuoteFormValues{
			ProjectType: "residential",
			SystemType:  "ongrid",
			Battery:     "none",
			Timeline:    "soon",
		}
		return renderProjectStep(e, values, map[string]string{})
	}
}

// HandleQuoteProjectStep validates step 1 and advances to the contact step.
func HandleQuoteProjectStep(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return RedirectWithToast(e, "/quote", "error", "Invalid form data")
		}

		values := readFormValues(e)
		if errors := validateProjectStep(values); len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderProjectStep(e, values, errors)
		}

		return renderContactStep(e, values, map[string]string{})
	}
}
